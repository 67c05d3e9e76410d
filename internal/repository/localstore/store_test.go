package localstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	store, err := Open(path)
	require.NoError(t, err)
	return store
}

func intPtr(v int) *int { return &v }

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.doc.Notes)
	assert.Empty(t, store.doc.Folders)
}

func TestIdAllocationIsMaxPlusOne(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uow := NewUnitOfWork(store)

	first := &entity.Note{Title: "first"}
	require.NoError(t, uow.NoteRepository().Create(ctx, first))
	assert.Equal(t, 1, first.Id)

	second := &entity.Note{Title: "second"}
	require.NoError(t, uow.NoteRepository().Create(ctx, second))
	assert.Equal(t, 2, second.Id)

	// Deleting the highest id frees it for reallocation, same as the
	// client-side max+1 scheme.
	require.NoError(t, uow.NoteRepository().Delete(ctx, 2))
	third := &entity.Note{Title: "third"}
	require.NoError(t, uow.NoteRepository().Create(ctx, third))
	assert.Equal(t, 2, third.Id)
}

func TestFlushWritesEveryCollectionKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uow := NewUnitOfWork(store)

	require.NoError(t, uow.FolderRepository().Create(ctx, &entity.Folder{Name: "Work"}))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"folders", "notes", "labels", "note_labels", "users"} {
		assert.Contains(t, doc, key)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store, err := Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	uow := NewUnitOfWork(store)
	folderId := 0
	{
		folder := &entity.Folder{Name: "Work", CreatedAt: time.Now(), UpdatedAt: time.Now()}
		require.NoError(t, uow.FolderRepository().Create(ctx, folder))
		folderId = folder.Id
		note := &entity.Note{Title: "hello", FolderId: &folder.Id}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
	}

	reloaded, err := Open(path)
	require.NoError(t, err)
	uow2 := NewUnitOfWork(reloaded)

	note, err := uow2.NoteRepository().FindOne(ctx, specification.ByID{ID: 1})
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "hello", note.Title)
	require.NotNil(t, note.FolderId)
	assert.Equal(t, folderId, *note.FolderId)
}

func TestRollbackRestoresSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	setup := NewUnitOfWork(store)
	require.NoError(t, setup.NoteRepository().Create(ctx, &entity.Note{Title: "keep"}))

	uow := NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "discard"}))
	require.NoError(t, uow.NoteRepository().Delete(ctx, 1))
	require.NoError(t, uow.Rollback())

	check := NewUnitOfWork(store)
	notes, err := check.NoteRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "keep", notes[0].Title)
}

func TestCommitFlushesOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	uow := NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "tx"}))

	// Not flushed while the transaction is open.
	_, err := os.Stat(store.path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, uow.Commit())
	_, err = os.Stat(store.path)
	assert.NoError(t, err)
}

func TestFindAllWithSpecifications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uow := NewUnitOfWork(store)

	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "Plans", FolderId: intPtr(9)}))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "Loose note"}))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "Old", IsTrashed: true}))

	inFolder, err := uow.NoteRepository().FindAll(ctx, specification.ByFolderID{FolderID: 9})
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, "Plans", inFolder[0].Title)

	unfiled, err := uow.NoteRepository().FindAll(ctx, specification.WithoutFolder{}, specification.NotTrashed{})
	require.NoError(t, err)
	require.Len(t, unfiled, 1)
	assert.Equal(t, "Loose note", unfiled[0].Title)

	matched, err := uow.NoteRepository().FindAll(ctx, specification.TitleOrContentContains{Term: "plan"})
	require.NoError(t, err)
	require.Len(t, matched, 1)

	count, err := uow.NoteRepository().Count(ctx, specification.Trashed{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTrashByFolderId(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uow := NewUnitOfWork(store)

	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "a", FolderId: intPtr(3)}))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "b", FolderId: intPtr(3)}))
	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "c"}))

	affected, err := uow.NoteRepository().TrashByFolderId(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	trashed, err := uow.NoteRepository().Count(ctx, specification.Trashed{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), trashed)
}

func TestNoteLabelAssociations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	uow := NewUnitOfWork(store)

	require.NoError(t, uow.NoteRepository().Create(ctx, &entity.Note{Title: "n"}))
	require.NoError(t, uow.LabelRepository().Create(ctx, &entity.Label{Name: "urgent"}))

	require.NoError(t, uow.NoteLabelRepository().Add(ctx, 1, 1))
	// Idempotent re-add
	require.NoError(t, uow.NoteLabelRepository().Add(ctx, 1, 1))

	labels, err := uow.NoteLabelRepository().LabelsForNote(ctx, 1)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, "urgent", labels[0].Name)

	removed, err := uow.NoteLabelRepository().Remove(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uow.NoteLabelRepository().Remove(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, removed)
}
