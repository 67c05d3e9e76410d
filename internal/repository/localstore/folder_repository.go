package localstore

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

type localFolderRepository struct {
	u *localUnitOfWork
}

func (r *localFolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder.Id == 0 {
		folder.Id = s.nextFolderId()
	}
	s.doc.Folders = append(s.doc.Folders, cloneFolder(folder))
	return r.u.persist()
}

func (r *localFolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.doc.Folders {
		if f.Id == folder.Id {
			s.doc.Folders[i] = cloneFolder(folder)
			return r.u.persist()
		}
	}
	s.doc.Folders = append(s.doc.Folders, cloneFolder(folder))
	return r.u.persist()
}

func (r *localFolderRepository) Delete(ctx context.Context, id int) error {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Folders[:0]
	for _, f := range s.doc.Folders {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	s.doc.Folders = kept
	return r.u.persist()
}

func (r *localFolderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.doc.Folders {
		if matchesAllFolder(f, specs) {
			return cloneFolder(f), nil
		}
	}
	return nil, nil
}

func (r *localFolderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*entity.Folder, 0)
	for _, f := range s.doc.Folders {
		if matchesAllFolder(f, specs) {
			result = append(result, cloneFolder(f))
		}
	}
	return result, nil
}

func (r *localFolderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, f := range s.doc.Folders {
		if matchesAllFolder(f, specs) {
			count++
		}
	}
	return count, nil
}

func matchesAllFolder(f *entity.Folder, specs []specification.Specification) bool {
	for _, spec := range specs {
		if !folderMatches(f, spec) {
			return false
		}
	}
	return true
}
