package service

import (
	"context"
	"testing"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelCreateDefaultsColor(t *testing.T) {
	labels := NewLabelService(newTestFactory(t), noopPublisher{})

	created, err := labels.Create(context.Background(), &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, "#808080", created.Color)

	colored, err := labels.Create(context.Background(), &dto.CreateLabelRequest{Name: "ideas", Color: "#43a047"})
	require.NoError(t, err)
	assert.Equal(t, "#43a047", colored.Color)
}

func TestLabelNameConflict(t *testing.T) {
	labels := NewLabelService(newTestFactory(t), noopPublisher{})
	ctx := context.Background()

	_, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)

	_, err = labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
}

func TestLabelUpdateKeepsOwnName(t *testing.T) {
	labels := NewLabelService(newTestFactory(t), noopPublisher{})
	ctx := context.Background()

	created, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)

	// Renaming to its own name is not a conflict.
	updated, err := labels.Update(ctx, &dto.UpdateLabelRequest{Id: created.Id, Name: "urgent", Color: "#111111"})
	require.NoError(t, err)
	assert.Equal(t, "#111111", updated.Color)
}

func TestLabelDeleteKeepsNotes(t *testing.T) {
	factory := newTestFactory(t)
	pub := noopPublisher{}
	labels := NewLabelService(factory, pub)
	notes := NewNoteService(factory, pub)
	ctx := context.Background()

	urgent, err := labels.Create(ctx, &dto.CreateLabelRequest{Name: "urgent"})
	require.NoError(t, err)
	note, err := notes.Create(ctx, &dto.CreateNoteRequest{Title: "n", Labels: []int{urgent.Id}})
	require.NoError(t, err)

	require.NoError(t, labels.Delete(ctx, urgent.Id))

	// The note survives, just without the label.
	kept, err := notes.Show(ctx, note.Id)
	require.NoError(t, err)
	assert.Empty(t, kept.Labels)
}
