package specification

import "gorm.io/gorm"

// ByParentID matches folders with the given parent; nil matches roots.
type ByParentID struct {
	ParentID *int
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", *s.ParentID)
}
