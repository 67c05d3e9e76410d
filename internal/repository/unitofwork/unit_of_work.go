package unitofwork

import (
	"context"

	"notekeep-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FolderRepository() contract.FolderRepository
	NoteRepository() contract.NoteRepository
	LabelRepository() contract.LabelRepository
	NoteLabelRepository() contract.NoteLabelRepository
	UserRepository() contract.UserRepository
}
