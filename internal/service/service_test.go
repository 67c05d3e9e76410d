package service

import (
	"context"
	"path/filepath"
	"testing"

	"notekeep-be/internal/repository/localstore"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/require"
)

// Tests run the services over the JSON store adapter; the behavior under
// test is identical for the GORM adapter, which the integration tests
// cover when a database is available.

type noopPublisher struct{}

func (noopPublisher) PublishChange(ctx context.Context, entity, action string, id int) {}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	return localstore.NewRepositoryFactory(store)
}

func intPtr(v int) *int { return &v }
