package localstore

import (
	"strings"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/specification"
)

// The localstore evaluates specifications in memory by switching on the
// concrete spec types. Ordering specs are ignored: collections are kept
// in insertion order, which is creation order. Unknown specs match
// everything rather than failing, mirroring the render-time fallback
// policy of the client.

func (u *localUnitOfWork) noteMatches(n *entity.Note, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return n.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if n.Id == id {
				return true
			}
		}
		return false
	case specification.ByFolderID:
		return n.FolderId != nil && *n.FolderId == s.FolderID
	case specification.ByFolderIDs:
		if n.FolderId == nil {
			return false
		}
		for _, id := range s.FolderIDs {
			if *n.FolderId == id {
				return true
			}
		}
		return false
	case specification.WithoutFolder:
		return n.FolderId == nil
	case specification.NotTrashed:
		return !n.IsTrashed
	case specification.Trashed:
		return n.IsTrashed
	case specification.HasLabel:
		for _, nl := range u.store.doc.NoteLabels {
			if nl.NoteId == n.Id && nl.LabelId == s.LabelID {
				return true
			}
		}
		return false
	case specification.TitleOrContentContains:
		term := strings.ToLower(s.Term)
		return strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term)
	default:
		return true
	}
}

func folderMatches(f *entity.Folder, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return f.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if f.Id == id {
				return true
			}
		}
		return false
	case specification.ByParentID:
		if s.ParentID == nil {
			return f.ParentId == nil
		}
		return f.ParentId != nil && *f.ParentId == *s.ParentID
	default:
		return true
	}
}

func labelMatches(l *entity.Label, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return l.Id == s.ID
	case specification.ByName:
		return l.Name == s.Name
	default:
		return true
	}
}

func userMatches(user *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return user.Id == s.ID
	case specification.ByUsername:
		return user.Username == s.Username
	default:
		return true
	}
}
