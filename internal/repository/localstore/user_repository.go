package localstore

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type localUserRepository struct {
	u *localUnitOfWork
}

func (r *localUserRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Id == 0 {
		user.Id = s.nextUserId()
	}
	c := *user
	s.doc.Users = append(s.doc.Users, &c)
	return r.u.persist()
}

func (r *localUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.doc.Users {
		if matchesAllUser(u, specs) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *localUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, u := range s.doc.Users {
		if matchesAllUser(u, specs) {
			count++
		}
	}
	return count, nil
}

func matchesAllUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		if !userMatches(u, spec) {
			return false
		}
	}
	return true
}
