package mapper

import (
	"notekeep-be/internal/entity"
	"notekeep-be/internal/model"
)

type LabelMapper struct{}

func NewLabelMapper() *LabelMapper {
	return &LabelMapper{}
}

func (m *LabelMapper) ToEntity(l *model.Label) *entity.Label {
	if l == nil {
		return nil
	}
	return &entity.Label{
		Id:        l.Id,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LabelMapper) ToModel(l *entity.Label) *model.Label {
	if l == nil {
		return nil
	}
	return &model.Label{
		Id:        l.Id,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LabelMapper) ToEntities(labels []*model.Label) []*entity.Label {
	entities := make([]*entity.Label, len(labels))
	for i, l := range labels {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
