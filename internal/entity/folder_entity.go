package entity

import "time"

// Folder is a named, optionally nested container for notes.
// ParentId is nil for root folders.
type Folder struct {
	Id        int
	Name      string
	ParentId  *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
