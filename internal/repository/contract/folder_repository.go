package contract

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
