package contract

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id int) error
	// TrashByFolderId marks every note in the folder trashed in one
	// statement, refreshing updated_at. Used by the folder delete cascade.
	TrashByFolderId(ctx context.Context, folderId int) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
