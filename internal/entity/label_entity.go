package entity

import "time"

// Label is a colored tag attachable to any number of notes,
// independent of the folder structure. Names are unique.
type Label struct {
	Id        int
	Name      string
	Color     string
	CreatedAt time.Time
}
