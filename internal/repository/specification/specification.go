package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications.
// Apply translates the spec to SQL; the localstore adapter instead
// type-switches on the concrete spec structs to match in memory.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
