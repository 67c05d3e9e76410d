package contract

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type LabelRepository interface {
	Create(ctx context.Context, label *entity.Label) error
	Update(ctx context.Context, label *entity.Label) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Label, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Label, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
