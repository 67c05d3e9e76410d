package scope

import "gorm.io/gorm"

// OrderByCreatedAsc reads collections in creation order, matching the
// insertion order the local store adapter returns.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}
