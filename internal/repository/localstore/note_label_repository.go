package localstore

import (
	"context"

	"notekeep-be/internal/entity"
)

type localNoteLabelRepository struct {
	u *localUnitOfWork
}

func (r *localNoteLabelRepository) Add(ctx context.Context, noteId, labelId int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, nl := range s.doc.NoteLabels {
		if nl.NoteId == noteId && nl.LabelId == labelId {
			return nil // already associated, no-op
		}
	}
	s.doc.NoteLabels = append(s.doc.NoteLabels, &entity.NoteLabel{NoteId: noteId, LabelId: labelId})
	return r.u.persist()
}

func (r *localNoteLabelRepository) Remove(ctx context.Context, noteId, labelId int) (bool, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.NoteLabels[:0]
	removed := false
	for _, nl := range s.doc.NoteLabels {
		if nl.NoteId == noteId && nl.LabelId == labelId {
			removed = true
			continue
		}
		kept = append(kept, nl)
	}
	s.doc.NoteLabels = kept
	if !removed {
		return false, nil
	}
	return true, r.u.persist()
}

func (r *localNoteLabelRepository) LabelsForNote(ctx context.Context, noteId int) ([]*entity.Label, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.Label, 0)
	for _, nl := range s.doc.NoteLabels {
		if nl.NoteId != noteId {
			continue
		}
		for _, l := range s.doc.Labels {
			if l.Id == nl.LabelId {
				result = append(result, cloneLabel(l))
				break
			}
		}
	}
	return result, nil
}

func (r *localNoteLabelRepository) LabelsForNotes(ctx context.Context, noteIds []int) (map[int][]*entity.Label, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int]bool, len(noteIds))
	for _, id := range noteIds {
		wanted[id] = true
	}

	result := make(map[int][]*entity.Label)
	for _, nl := range s.doc.NoteLabels {
		if !wanted[nl.NoteId] {
			continue
		}
		for _, l := range s.doc.Labels {
			if l.Id == nl.LabelId {
				result[nl.NoteId] = append(result[nl.NoteId], cloneLabel(l))
				break
			}
		}
	}
	return result, nil
}

func (r *localNoteLabelRepository) NoteIdsForLabel(ctx context.Context, labelId int) ([]int, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int
	for _, nl := range s.doc.NoteLabels {
		if nl.LabelId == labelId {
			ids = append(ids, nl.NoteId)
		}
	}
	return ids, nil
}

func (r *localNoteLabelRepository) DeleteByNoteId(ctx context.Context, noteId int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.NoteLabels[:0]
	for _, nl := range s.doc.NoteLabels {
		if nl.NoteId != noteId {
			kept = append(kept, nl)
		}
	}
	s.doc.NoteLabels = kept
	return r.u.persist()
}

func (r *localNoteLabelRepository) DeleteByLabelId(ctx context.Context, labelId int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.NoteLabels[:0]
	for _, nl := range s.doc.NoteLabels {
		if nl.LabelId != labelId {
			kept = append(kept, nl)
		}
	}
	s.doc.NoteLabels = kept
	return r.u.persist()
}
