package main

import (
	"context"
	"log"
	"os"
	"time"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/localstore"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds a small demo workspace: a few folders, labels and notes. Works
// against either persistence adapter, same as the server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	var uowFactory unitofwork.RepositoryFactory
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn != "" {
		db, err := database.NewGormDBFromDSN(dsn)
		if err != nil {
			log.Fatal("Error: Failed to connect to database:", err)
		}
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		path := os.Getenv("LOCAL_STORE_PATH")
		if path == "" {
			path = "notekeep.localstore.json"
		}
		store, err := localstore.Open(path)
		if err != nil {
			log.Fatal("Error: Failed to open local store:", err)
		}
		uowFactory = localstore.NewRepositoryFactory(store)
	}

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	work := entity.Folder{Name: "Work", CreatedAt: now, UpdatedAt: now}
	if err := uow.FolderRepository().Create(ctx, &work); err != nil {
		log.Fatal("Error: seed folder:", err)
	}
	projects := entity.Folder{Name: "Projects", ParentId: &work.Id, CreatedAt: now, UpdatedAt: now}
	if err := uow.FolderRepository().Create(ctx, &projects); err != nil {
		log.Fatal("Error: seed folder:", err)
	}
	personal := entity.Folder{Name: "Personal", CreatedAt: now, UpdatedAt: now}
	if err := uow.FolderRepository().Create(ctx, &personal); err != nil {
		log.Fatal("Error: seed folder:", err)
	}
	color.Green("Seeded folders: Work, Work/Projects, Personal")

	urgent := entity.Label{Name: "urgent", Color: "#e53935", CreatedAt: now}
	if err := uow.LabelRepository().Create(ctx, &urgent); err != nil {
		log.Fatal("Error: seed label:", err)
	}
	ideas := entity.Label{Name: "ideas", Color: "#43a047", CreatedAt: now}
	if err := uow.LabelRepository().Create(ctx, &ideas); err != nil {
		log.Fatal("Error: seed label:", err)
	}
	color.Green("Seeded labels: urgent, ideas")

	notes := []entity.Note{
		{Title: "Quarterly planning", Content: "Draft goals for Q4", FolderId: &work.Id, IsPinned: true, CreatedAt: now, UpdatedAt: now},
		{Title: "Release checklist", Content: "Tag, changelog, announce", FolderId: &projects.Id, CreatedAt: now, UpdatedAt: now},
		{Title: "Grocery list", Content: "Milk, eggs, coffee", FolderId: &personal.Id, CreatedAt: now, UpdatedAt: now},
		{Title: "Someday", Content: "Learn to sail", CreatedAt: now, UpdatedAt: now},
	}
	for i := range notes {
		if err := uow.NoteRepository().Create(ctx, &notes[i]); err != nil {
			log.Fatal("Error: seed note:", err)
		}
	}
	if err := uow.NoteLabelRepository().Add(ctx, notes[0].Id, urgent.Id); err != nil {
		log.Fatal("Error: seed association:", err)
	}
	if err := uow.NoteLabelRepository().Add(ctx, notes[3].Id, ideas.Id); err != nil {
		log.Fatal("Error: seed association:", err)
	}
	color.Green("Seeded %d notes", len(notes))

	color.Cyan("Done.")
}
