package service

import (
	"context"
	"testing"
	"time"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderCreateAndNesting(t *testing.T) {
	factory := newTestFactory(t)
	folders := NewFolderService(factory, noopPublisher{}, time.Minute)
	ctx := context.Background()

	work, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)
	assert.Nil(t, work.ParentId)

	projects, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Projects", ParentId: &work.Id})
	require.NoError(t, err)
	require.NotNil(t, projects.ParentId)
	assert.Equal(t, work.Id, *projects.ParentId)
}

func TestFolderCreateRejectsDanglingParent(t *testing.T) {
	factory := newTestFactory(t)
	folders := NewFolderService(factory, noopPublisher{}, time.Minute)

	_, err := folders.Create(context.Background(), &dto.CreateFolderRequest{Name: "Orphan", ParentId: intPtr(42)})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestFolderUpdateRejectsSelfParent(t *testing.T) {
	factory := newTestFactory(t)
	folders := NewFolderService(factory, noopPublisher{}, time.Minute)
	ctx := context.Background()

	work, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	_, err = folders.Update(ctx, &dto.UpdateFolderRequest{Id: work.Id, Name: "Work", ParentId: &work.Id})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestFolderTreeReflectsMutations(t *testing.T) {
	factory := newTestFactory(t)
	folders := NewFolderService(factory, noopPublisher{}, time.Minute)
	ctx := context.Background()

	work, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	tree, err := folders.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Children)

	// A mutation must invalidate the cached tree.
	_, err = folders.Create(ctx, &dto.CreateFolderRequest{Name: "Projects", ParentId: &work.Id})
	require.NoError(t, err)

	tree, err = folders.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Projects", tree[0].Children[0].Name)
}

func TestFolderDeleteTrashesMemberNotes(t *testing.T) {
	factory := newTestFactory(t)
	pub := noopPublisher{}
	folders := NewFolderService(factory, pub, time.Minute)
	notes := NewNoteService(factory, pub)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Doomed"})
	require.NoError(t, err)

	var memberIds []int
	for _, title := range []string{"a", "b", "c"} {
		n, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: title, FolderId: &folder.Id})
		require.NoError(t, err)
		memberIds = append(memberIds, n.Id)
	}
	outside, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "outside"})
	require.NoError(t, err)

	require.NoError(t, folders.Delete(ctx, folder.Id))

	_, err = folders.Show(ctx, folder.Id)
	require.Error(t, err)

	for _, id := range memberIds {
		n, err := notes.Show(ctx, id)
		require.NoError(t, err)
		assert.True(t, n.IsTrashed)
	}
	kept, err := notes.Show(ctx, outside.Id)
	require.NoError(t, err)
	assert.False(t, kept.IsTrashed)
}

func TestFolderDeleteCascadesToDescendants(t *testing.T) {
	factory := newTestFactory(t)
	pub := noopPublisher{}
	folders := NewFolderService(factory, pub, time.Minute)
	notes := NewNoteService(factory, pub)
	ctx := context.Background()

	root, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Root"})
	require.NoError(t, err)
	child, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Child", ParentId: &root.Id})
	require.NoError(t, err)

	inChild, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "nested", FolderId: &child.Id})
	require.NoError(t, err)

	require.NoError(t, folders.Delete(ctx, root.Id))

	_, err = folders.Show(ctx, child.Id)
	require.Error(t, err)

	n, err := notes.Show(ctx, inChild.Id)
	require.NoError(t, err)
	assert.True(t, n.IsTrashed)
}

func TestFolderDeleteEmptyFolderRemovesOnlyFolder(t *testing.T) {
	factory := newTestFactory(t)
	pub := noopPublisher{}
	folders := NewFolderService(factory, pub, time.Minute)
	notes := NewNoteService(factory, pub)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Empty"})
	require.NoError(t, err)
	other, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "unrelated"})
	require.NoError(t, err)

	require.NoError(t, folders.Delete(ctx, folder.Id))

	all, err := notes.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other.Id, all[0].Id)
	assert.False(t, all[0].IsTrashed)
}

func TestFolderDeleteNotFound(t *testing.T) {
	factory := newTestFactory(t)
	folders := NewFolderService(factory, noopPublisher{}, time.Minute)

	err := folders.Delete(context.Background(), 99)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}
