package localstore

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type localLabelRepository struct {
	u *localUnitOfWork
}

func (r *localLabelRepository) Create(ctx context.Context, label *entity.Label) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if label.Id == 0 {
		label.Id = s.nextLabelId()
	}
	s.doc.Labels = append(s.doc.Labels, cloneLabel(label))
	return r.u.persist()
}

func (r *localLabelRepository) Update(ctx context.Context, label *entity.Label) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.doc.Labels {
		if l.Id == label.Id {
			s.doc.Labels[i] = cloneLabel(label)
			return r.u.persist()
		}
	}
	s.doc.Labels = append(s.doc.Labels, cloneLabel(label))
	return r.u.persist()
}

func (r *localLabelRepository) Delete(ctx context.Context, id int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Labels[:0]
	for _, l := range s.doc.Labels {
		if l.Id != id {
			kept = append(kept, l)
		}
	}
	s.doc.Labels = kept
	return r.u.persist()
}

func (r *localLabelRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Label, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.doc.Labels {
		if matchesAllLabel(l, specs) {
			return cloneLabel(l), nil
		}
	}
	return nil, nil
}

func (r *localLabelRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Label, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.Label, 0)
	for _, l := range s.doc.Labels {
		if matchesAllLabel(l, specs) {
			result = append(result, cloneLabel(l))
		}
	}
	return result, nil
}

func (r *localLabelRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, l := range s.doc.Labels {
		if matchesAllLabel(l, specs) {
			count++
		}
	}
	return count, nil
}

func matchesAllLabel(l *entity.Label, specs []specification.Specification) bool {
	for _, spec := range specs {
		if !labelMatches(l, spec) {
			return false
		}
	}
	return true
}
