package specification

import "gorm.io/gorm"

// ByFolderID matches notes assigned to one folder (exact match, no
// inheritance to subfolders).
type ByFolderID struct {
	FolderID int
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// ByFolderIDs matches notes in any of the given folders.
type ByFolderIDs struct {
	FolderIDs []int
}

func (s ByFolderIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id IN ?", s.FolderIDs)
}

// WithoutFolder matches notes in the "All Notes" bucket.
type WithoutFolder struct{}

func (s WithoutFolder) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id IS NULL")
}

// NotTrashed excludes trashed notes.
type NotTrashed struct{}

func (s NotTrashed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_trashed = ?", false)
}

// Trashed selects only trashed notes.
type Trashed struct{}

func (s Trashed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_trashed = ?", true)
}

// HasLabel matches notes carrying the given label via the association
// table.
type HasLabel struct {
	LabelID int
}

func (s HasLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN note_labels ON note_labels.note_id = notes.id").
		Where("note_labels.label_id = ?", s.LabelID)
}

// TitleOrContentContains is a case-insensitive substring match on
// title or content.
type TitleOrContentContains struct {
	Term string
}

func (s TitleOrContentContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
