package mapper

import (
	"notekeep-be/internal/entity"
	"notekeep-be/internal/model"
)

// NoteMapper converts between the persistence model and the domain
// entity. Labels are not a column; the repository layer attaches them
// from the association table after mapping.
type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		FolderId:   n.FolderId,
		IsArchived: n.IsArchived,
		IsTrashed:  n.IsTrashed,
		IsPinned:   n.IsPinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		FolderId:   n.FolderId,
		IsArchived: n.IsArchived,
		IsTrashed:  n.IsTrashed,
		IsPinned:   n.IsPinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
