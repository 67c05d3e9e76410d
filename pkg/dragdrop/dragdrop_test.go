package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{name: "note id", in: "note-3", want: ID{Kind: KindNote, Num: 3}},
		{name: "folder id", in: "folder-7", want: ID{Kind: KindFolder, Num: 7}},
		{name: "all notes bucket", in: "all-notes", want: ID{Kind: KindAllNotes}},
		{name: "garbage", in: "something-else", want: ID{Kind: KindUnknown}},
		{name: "note without number", in: "note-abc", want: ID{Kind: KindUnknown}},
		{name: "empty", in: "", want: ID{Kind: KindUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseID(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   Action
	}{
		{name: "note onto folder moves", source: "note-3", target: "folder-7", want: ActionMoveToFolder},
		{name: "note onto all-notes clears folder", source: "note-3", target: "all-notes", want: ActionMoveToAllNotes},
		{name: "folder onto folder is inert", source: "folder-2", target: "folder-7", want: ActionNone},
		{name: "folder onto all-notes is inert", source: "folder-2", target: "all-notes", want: ActionNone},
		{name: "note onto note is inert", source: "note-3", target: "note-4", want: ActionNone},
		{name: "unknown source is inert", source: "bogus", target: "folder-7", want: ActionNone},
		{name: "unknown target is inert", source: "note-3", target: "bogus", want: ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(ParseID(tt.source), ParseID(tt.target)))
		})
	}
}
