package localstore

import (
	"context"
	"time"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type localNoteRepository struct {
	u *localUnitOfWork
}

func (r *localNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.Id == 0 {
		note.Id = s.nextNoteId()
	}
	stored := cloneNote(note)
	stored.Labels = nil // associations live in the note_labels key
	s.doc.Notes = append(s.doc.Notes, stored)
	return r.u.persist()
}

func (r *localNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneNote(note)
	stored.Labels = nil
	for i, n := range s.doc.Notes {
		if n.Id == note.Id {
			s.doc.Notes[i] = stored
			return r.u.persist()
		}
	}
	s.doc.Notes = append(s.doc.Notes, stored)
	return r.u.persist()
}

func (r *localNoteRepository) Delete(ctx context.Context, id int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Notes[:0]
	for _, n := range s.doc.Notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	s.doc.Notes = kept
	return r.u.persist()
}

func (r *localNoteRepository) TrashByFolderId(ctx context.Context, folderId int) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var affected int64
	for _, n := range s.doc.Notes {
		if n.FolderId != nil && *n.FolderId == folderId {
			n.IsTrashed = true
			n.UpdatedAt = now
			affected++
		}
	}
	return affected, r.u.persist()
}

func (r *localNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.doc.Notes {
		if r.matchesAll(n, specs) {
			return cloneNote(n), nil
		}
	}
	return nil, nil
}

func (r *localNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.Note, 0)
	for _, n := range s.doc.Notes {
		if r.matchesAll(n, specs) {
			result = append(result, cloneNote(n))
		}
	}
	return result, nil
}

func (r *localNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.doc.Notes {
		if r.matchesAll(n, specs) {
			count++
		}
	}
	return count, nil
}

func (r *localNoteRepository) matchesAll(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		if !r.u.noteMatches(n, spec) {
			return false
		}
	}
	return true
}
