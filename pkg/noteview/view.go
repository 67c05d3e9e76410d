package noteview

import (
	"strings"

	"notekeep-be/internal/entity"
)

// View describes which notes the client wants to see. The zero value is
// the "All Notes" view: everything not trashed and not archived.
type View struct {
	FolderId     *int
	LabelId      *int
	SearchTerm   string
	ShowArchived bool
}

// Visible filters notes for the view. Rules apply in a fixed order:
//
//  1. trashed notes are never visible, in any view
//  2. ShowArchived selects archived notes only; otherwise archived
//     notes are excluded
//  3. a non-empty SearchTerm must match title or content,
//     case-insensitive substring
//  4. FolderId must match, but only outside the archived view
//  5. LabelId must be among the note's labels
func Visible(notes []*entity.Note, view View) []*entity.Note {
	term := strings.ToLower(view.SearchTerm)

	result := make([]*entity.Note, 0, len(notes))
	for _, n := range notes {
		if n.IsTrashed {
			continue
		}
		if n.IsArchived != view.ShowArchived {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Content), term) {
			continue
		}
		if !view.ShowArchived && view.FolderId != nil {
			if n.FolderId == nil || *n.FolderId != *view.FolderId {
				continue
			}
		}
		if view.LabelId != nil && !n.HasLabel(*view.LabelId) {
			continue
		}
		result = append(result, n)
	}
	return result
}

// Partition splits visible notes into a pinned section and the rest.
// The archived view has no pinned section: everything lands in others.
func Partition(notes []*entity.Note, view View) (pinned, others []*entity.Note) {
	pinned = make([]*entity.Note, 0)
	others = make([]*entity.Note, 0)
	for _, n := range notes {
		if n.IsPinned && !view.ShowArchived {
			pinned = append(pinned, n)
		} else {
			others = append(others, n)
		}
	}
	return pinned, others
}
