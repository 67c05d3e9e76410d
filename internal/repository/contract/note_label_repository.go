package contract

import (
	"context"

	"notekeep-be/internal/entity"
)

// NoteLabelRepository manages the note-label association table.
type NoteLabelRepository interface {
	// Add is idempotent: re-adding an existing association is a no-op.
	Add(ctx context.Context, noteId, labelId int) error
	// Remove reports whether an association was actually removed.
	Remove(ctx context.Context, noteId, labelId int) (bool, error)
	LabelsForNote(ctx context.Context, noteId int) ([]*entity.Label, error)
	// LabelsForNotes bulk-loads associations for a set of notes.
	LabelsForNotes(ctx context.Context, noteIds []int) (map[int][]*entity.Label, error)
	NoteIdsForLabel(ctx context.Context, labelId int) ([]int, error)
	DeleteByNoteId(ctx context.Context, noteId int) error
	DeleteByLabelId(ctx context.Context, labelId int) error
}
