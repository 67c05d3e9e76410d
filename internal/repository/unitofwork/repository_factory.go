package unitofwork

import "context"

// RepositoryFactory hands out a unit of work per request. The GORM and
// local store adapters each provide an implementation.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
