package entity

import "time"

// Note belongs to at most one folder (nil FolderId = the "All Notes"
// bucket) and carries zero or more labels. The three status flags are
// independent booleans; the filter layer decides which combinations
// are visible.
type Note struct {
	Id         int
	Title      string
	Content    string
	FolderId   *int
	IsArchived bool
	IsTrashed  bool
	IsPinned   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Labels     []Label
}

// HasLabel reports whether the note carries the given label.
func (n *Note) HasLabel(labelId int) bool {
	for _, l := range n.Labels {
		if l.Id == labelId {
			return true
		}
	}
	return false
}
