package dragdrop

import (
	"strconv"
	"strings"
)

// Kind classifies a drag identifier.
type Kind int

const (
	KindUnknown Kind = iota
	KindNote
	KindFolder
	KindAllNotes
)

// ID is a parsed drag identifier like "note-3", "folder-7" or "all-notes".
type ID struct {
	Kind Kind
	Num  int
}

// Action is the resolved outcome of a drop.
type Action int

const (
	// ActionNone means the drop changes nothing (folder source, unknown
	// or unusable target).
	ActionNone Action = iota
	// ActionMoveToFolder moves the source note into the target folder.
	ActionMoveToFolder
	// ActionMoveToAllNotes clears the source note's folder.
	ActionMoveToAllNotes
)

// ParseID parses a drag identifier string. Anything that is not a
// well-formed note, folder or all-notes id comes back as KindUnknown.
func ParseID(s string) ID {
	if s == "all-notes" {
		return ID{Kind: KindAllNotes}
	}
	if rest, ok := strings.CutPrefix(s, "note-"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			return ID{Kind: KindNote, Num: n}
		}
	}
	if rest, ok := strings.CutPrefix(s, "folder-"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			return ID{Kind: KindFolder, Num: n}
		}
	}
	return ID{Kind: KindUnknown}
}

// Resolve decides what a drop of source onto target does. Only notes can
// be dragged; dropping onto a folder moves the note there, dropping onto
// the All Notes bucket clears its folder, everything else is a no-op.
func Resolve(source, target ID) Action {
	if source.Kind != KindNote {
		return ActionNone
	}
	switch target.Kind {
	case KindFolder:
		return ActionMoveToFolder
	case KindAllNotes:
		return ActionMoveToAllNotes
	default:
		return ActionNone
	}
}
