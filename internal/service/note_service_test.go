package service

import (
	"context"
	"testing"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteFixture(t *testing.T) (INoteService, IFolderService, ILabelService) {
	t.Helper()
	factory := newTestFactory(t)
	pub := noopPublisher{}
	return NewNoteService(factory, pub),
		NewFolderService(factory, pub, 0),
		NewLabelService(factory, pub)
}

func TestNoteCreateAndShow(t *testing.T) {
	notes, folders, _ := newNoteFixture(t)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	created, err := notes.Create(ctx, &dto.CreateNoteRequest{
		Title:    "Plan",
		Content:  "quarterly goals",
		FolderId: &folder.Id,
		IsPinned: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Id)
	assert.True(t, created.IsPinned)
	assert.False(t, created.IsArchived)
	require.NotNil(t, created.FolderId)
	assert.Equal(t, folder.Id, *created.FolderId)

	shown, err := notes.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Title, shown.Title)
}

func TestNoteCreateRejectsDanglingFolder(t *testing.T) {
	notes, _, _ := newNoteFixture(t)

	_, err := notes.Create(context.Background(), &dto.CreateNoteRequest{
		Title:    "Orphan",
		FolderId: intPtr(42),
	})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
}

func TestNoteShowNotFound(t *testing.T) {
	notes, _, _ := newNoteFixture(t)

	_, err := notes.Show(context.Background(), 99)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestNoteUpdateReconcilesLabels(t *testing.T) {
	notes, _, labels := newNoteFixture(t)
	ctx := context.Background()

	urgent, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	later, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "later"})
	require.NoError(t, err)

	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", Labels: []int{urgent.Id}})
	require.NoError(t, err)
	require.Len(t, note.Labels, 1)

	updated, err := notes.Update(ctx, &dto.UpdateNoteRequest{
		Id:     note.Id,
		Title:  "n",
		Labels: []int{later.Id},
	})
	require.NoError(t, err)
	require.Len(t, updated.Labels, 1)
	assert.Equal(t, "later", updated.Labels[0].Name)
}

func TestNoteDuplicateContract(t *testing.T) {
	notes, folders, labels := newNoteFixture(t)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)
	urgent, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)

	original, err := notes.Create(ctx, &dto.CreateNoteRequest{
		Title:    "Plan",
		Content:  "body",
		FolderId: &folder.Id,
		IsPinned: true,
		Labels:   []int{urgent.Id},
	})
	require.NoError(t, err)

	dup, err := notes.Duplicate(ctx, original.Id)
	require.NoError(t, err)

	assert.NotEqual(t, original.Id, dup.Id)
	assert.Equal(t, "Plan (Copy)", dup.Title)
	assert.Equal(t, original.Content, dup.Content)
	assert.Equal(t, *original.FolderId, *dup.FolderId)
	require.Len(t, dup.Labels, 1)
	assert.Equal(t, "urgent", dup.Labels[0].Name)
	// All status flags reset
	assert.False(t, dup.IsPinned)
	assert.False(t, dup.IsArchived)
	assert.False(t, dup.IsTrashed)
}

func TestNoteMoveIsIdempotent(t *testing.T) {
	notes, folders, _ := newNoteFixture(t)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)
	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n"})
	require.NoError(t, err)

	moved, err := notes.Move(ctx, &dto.MoveNoteRequest{Id: note.Id, FolderId: &folder.Id})
	require.NoError(t, err)
	require.NotNil(t, moved.FolderId)

	again, err := notes.Move(ctx, &dto.MoveNoteRequest{Id: note.Id, FolderId: &folder.Id})
	require.NoError(t, err)
	assert.Equal(t, *moved.FolderId, *again.FolderId)
	assert.False(t, again.UpdatedAt.Before(moved.UpdatedAt))
}

func TestNoteDropToAllNotes(t *testing.T) {
	notes, folders, _ := newNoteFixture(t)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	// Ids 1 and 2 are taken so the dragged note gets id 3, matching the
	// canonical drag example.
	for _, title := range []string{"a", "b"} {
		_, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: title})
		require.NoError(t, err)
	}
	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "dragged", FolderId: &folder.Id})
	require.NoError(t, err)
	require.Equal(t, 3, note.Id)

	res, err := notes.Drop(ctx, &dto.DropRequest{SourceId: "note-3", TargetId: "all-notes"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Nil(t, res.FolderId)
	assert.Equal(t, note.Title, res.Title)
	assert.False(t, res.UpdatedAt.Before(note.UpdatedAt))
}

func TestNoteDropFolderSourceIsNoop(t *testing.T) {
	notes, _, _ := newNoteFixture(t)

	res, err := notes.Drop(context.Background(), &dto.DropRequest{SourceId: "folder-2", TargetId: "folder-7"})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestNoteFlagToggles(t *testing.T) {
	notes, _, _ := newNoteFixture(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n"})
	require.NoError(t, err)

	pinned, err := notes.TogglePin(ctx, note.Id)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	unpinned, err := notes.TogglePin(ctx, note.Id)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)

	trashed, err := notes.Trash(ctx, note.Id)
	require.NoError(t, err)
	assert.True(t, trashed.IsTrashed)

	// Trash is not blocked by other flags and restore undoes it.
	restored, err := notes.Restore(ctx, note.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsTrashed)
}

func TestNoteListFiltersAndPartitions(t *testing.T) {
	notes, folders, _ := newNoteFixture(t)
	ctx := context.Background()

	folder, err := folders.Create(ctx, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	_, err = notes.Create(ctx, &dto.CreateNoteRequest{Title: "pinned one", FolderId: &folder.Id, IsPinned: true})
	require.NoError(t, err)
	_, err = notes.Create(ctx, &dto.CreateNoteRequest{Title: "plain one", FolderId: &folder.Id})
	require.NoError(t, err)
	trash, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "trashed one", FolderId: &folder.Id})
	require.NoError(t, err)
	_, err = notes.Trash(ctx, trash.Id)
	require.NoError(t, err)

	res, err := notes.List(ctx, &dto.ListNotesQuery{FolderId: &folder.Id})
	require.NoError(t, err)
	require.Len(t, res.Pinned, 1)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, "pinned one", res.Pinned[0].Title)
	assert.Equal(t, "plain one", res.Notes[0].Title)

	searched, err := notes.List(ctx, &dto.ListNotesQuery{Search: "PLAIN"})
	require.NoError(t, err)
	assert.Len(t, searched.Pinned, 0)
	require.Len(t, searched.Notes, 1)
	assert.Equal(t, "plain one", searched.Notes[0].Title)
}

func TestNoteArchivedView(t *testing.T) {
	notes, _, _ := newNoteFixture(t)
	ctx := context.Background()

	active, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "active", IsPinned: true})
	require.NoError(t, err)
	archived, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "archived", IsPinned: true})
	require.NoError(t, err)
	_, err = notes.ToggleArchive(ctx, archived.Id)
	require.NoError(t, err)

	normal, err := notes.List(ctx, &dto.ListNotesQuery{})
	require.NoError(t, err)
	require.Len(t, normal.Pinned, 1)
	assert.Equal(t, active.Id, normal.Pinned[0].Id)

	// Archived view: no pinned section even for pinned notes.
	arch, err := notes.List(ctx, &dto.ListNotesQuery{Archived: true})
	require.NoError(t, err)
	assert.Len(t, arch.Pinned, 0)
	require.Len(t, arch.Notes, 1)
	assert.Equal(t, archived.Id, arch.Notes[0].Id)
}

func TestNoteDeleteRemovesAssociations(t *testing.T) {
	notes, _, labels := newNoteFixture(t)
	ctx := context.Background()

	urgent, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", Labels: []int{urgent.Id}})
	require.NoError(t, err)

	require.NoError(t, notes.Delete(ctx, note.Id))

	_, err = notes.Show(ctx, note.Id)
	require.Error(t, err)

	// The label itself survives.
	kept, err := labels.Show(ctx, urgent.Id)
	require.NoError(t, err)
	assert.Equal(t, "urgent", kept.Name)
}

func TestNoteLabelAssociationEndsToEnd(t *testing.T) {
	notes, _, labels := newNoteFixture(t)
	ctx := context.Background()

	urgent, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n"})
	require.NoError(t, err)

	require.NoError(t, notes.AddLabel(ctx, note.Id, urgent.Id))
	// Idempotent re-add
	require.NoError(t, notes.AddLabel(ctx, note.Id, urgent.Id))

	attached, err := notes.GetLabels(ctx, note.Id)
	require.NoError(t, err)
	require.Len(t, attached, 1)

	require.NoError(t, notes.RemoveLabel(ctx, note.Id, urgent.Id))

	err = notes.RemoveLabel(ctx, note.Id, urgent.Id)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}
