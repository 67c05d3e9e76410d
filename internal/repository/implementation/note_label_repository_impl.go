package implementation

import (
	"context"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/mapper"
	"notekeep-be/internal/model"
	"notekeep-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteLabelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LabelMapper
}

func NewNoteLabelRepository(db *gorm.DB) contract.NoteLabelRepository {
	return &NoteLabelRepositoryImpl{
		db:     db,
		mapper: mapper.NewLabelMapper(),
	}
}

func (r *NoteLabelRepositoryImpl) Add(ctx context.Context, noteId, labelId int) error {
	m := model.NoteLabel{NoteId: noteId, LabelId: labelId}
	// Conflict ignored: re-adding an existing association is a no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
}

func (r *NoteLabelRepositoryImpl) Remove(ctx context.Context, noteId, labelId int) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("note_id = ? AND label_id = ?", noteId, labelId).
		Delete(&model.NoteLabel{})
	return res.RowsAffected > 0, res.Error
}

func (r *NoteLabelRepositoryImpl) LabelsForNote(ctx context.Context, noteId int) ([]*entity.Label, error) {
	var models []*model.Label
	err := r.db.WithContext(ctx).
		Joins("JOIN note_labels ON note_labels.label_id = labels.id").
		Where("note_labels.note_id = ?", noteId).
		Order("labels.created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteLabelRepositoryImpl) LabelsForNotes(ctx context.Context, noteIds []int) (map[int][]*entity.Label, error) {
	result := make(map[int][]*entity.Label)
	if len(noteIds) == 0 {
		return result, nil
	}

	var rows []struct {
		model.Label
		NoteId int
	}
	err := r.db.WithContext(ctx).Model(&model.Label{}).
		Select("labels.*, note_labels.note_id").
		Joins("JOIN note_labels ON note_labels.label_id = labels.id").
		Where("note_labels.note_id IN ?", noteIds).
		Order("labels.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		result[rows[i].NoteId] = append(result[rows[i].NoteId], r.mapper.ToEntity(&rows[i].Label))
	}
	return result, nil
}

func (r *NoteLabelRepositoryImpl) NoteIdsForLabel(ctx context.Context, labelId int) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).Model(&model.NoteLabel{}).
		Where("label_id = ?", labelId).
		Pluck("note_id", &ids).Error
	return ids, err
}

func (r *NoteLabelRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId int) error {
	return r.db.WithContext(ctx).
		Where("note_id = ?", noteId).
		Delete(&model.NoteLabel{}).Error
}

func (r *NoteLabelRepositoryImpl) DeleteByLabelId(ctx context.Context, labelId int) error {
	return r.db.WithContext(ctx).
		Where("label_id = ?", labelId).
		Delete(&model.NoteLabel{}).Error
}
