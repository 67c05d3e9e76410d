package localstore

import (
	"context"
	"fmt"

	"notekeep-be/internal/repository/contract"
	"notekeep-be/internal/repository/unitofwork"
)

// localUnitOfWork implements transactions by snapshotting the whole
// document: Rollback restores the pre-transaction collections wholesale,
// so callers never observe a partial update.
type localUnitOfWork struct {
	store *Store
	snap  *document
}

func NewUnitOfWork(store *Store) unitofwork.UnitOfWork {
	return &localUnitOfWork{store: store}
}

func (u *localUnitOfWork) Begin(ctx context.Context) error {
	if u.snap != nil {
		return fmt.Errorf("transaction already started")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.snap = u.store.snapshot()
	return nil
}

func (u *localUnitOfWork) Commit() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to commit")
	}
	u.snap = nil
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return u.store.flush()
}

func (u *localUnitOfWork) Rollback() error {
	if u.snap == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.doc = *u.snap
	u.snap = nil
	return nil
}

// persist flushes immediately outside a transaction; inside one, the
// flush waits for Commit. Callers hold the store lock.
func (u *localUnitOfWork) persist() error {
	if u.snap != nil {
		return nil
	}
	return u.store.flush()
}

func (u *localUnitOfWork) FolderRepository() contract.FolderRepository {
	return &localFolderRepository{u}
}

func (u *localUnitOfWork) NoteRepository() contract.NoteRepository {
	return &localNoteRepository{u}
}

func (u *localUnitOfWork) LabelRepository() contract.LabelRepository {
	return &localLabelRepository{u}
}

func (u *localUnitOfWork) NoteLabelRepository() contract.NoteLabelRepository {
	return &localNoteLabelRepository{u}
}

func (u *localUnitOfWork) UserRepository() contract.UserRepository {
	return &localUserRepository{u}
}

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory returns a unitofwork.RepositoryFactory backed by
// the JSON file store, interchangeable with the GORM factory.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return NewUnitOfWork(f.store)
}
