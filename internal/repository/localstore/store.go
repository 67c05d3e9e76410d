package localstore

import (
	"encoding/json"
	"os"
	"sync"

	"notekeep-be/internal/entity"
)

// document mirrors the browser's localStorage layout: top-level keys
// holding JSON-serialized arrays, rewritten in full on every flush.
type document struct {
	Folders    []*entity.Folder    `json:"folders"`
	Notes      []*entity.Note      `json:"notes"`
	Labels     []*entity.Label     `json:"labels"`
	NoteLabels []*entity.NoteLabel `json:"note_labels"`
	Users      []*entity.User      `json:"users"`
}

// Store is the file-backed persistence adapter used when no database
// connection string is configured. Single-writer: a mutex serializes
// all access, matching the one-browser-tab ownership model.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open loads the store file, starting empty when it does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, err
	}
	return s, nil
}

// flush rewrites the whole document. No diffing.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// snapshot deep-copies the current collections for transactional rollback.
func (s *Store) snapshot() *document {
	snap := &document{
		Folders:    make([]*entity.Folder, len(s.doc.Folders)),
		Notes:      make([]*entity.Note, len(s.doc.Notes)),
		Labels:     make([]*entity.Label, len(s.doc.Labels)),
		NoteLabels: make([]*entity.NoteLabel, len(s.doc.NoteLabels)),
		Users:      make([]*entity.User, len(s.doc.Users)),
	}
	for i, f := range s.doc.Folders {
		snap.Folders[i] = cloneFolder(f)
	}
	for i, n := range s.doc.Notes {
		snap.Notes[i] = cloneNote(n)
	}
	for i, l := range s.doc.Labels {
		snap.Labels[i] = cloneLabel(l)
	}
	for i, nl := range s.doc.NoteLabels {
		c := *nl
		snap.NoteLabels[i] = &c
	}
	for i, u := range s.doc.Users {
		c := *u
		snap.Users[i] = &c
	}
	return snap
}

// Id allocation: max(existing ids, 0) + 1. Ids are never reused.

func (s *Store) nextFolderId() int {
	max := 0
	for _, f := range s.doc.Folders {
		if f.Id > max {
			max = f.Id
		}
	}
	return max + 1
}

func (s *Store) nextNoteId() int {
	max := 0
	for _, n := range s.doc.Notes {
		if n.Id > max {
			max = n.Id
		}
	}
	return max + 1
}

func (s *Store) nextLabelId() int {
	max := 0
	for _, l := range s.doc.Labels {
		if l.Id > max {
			max = l.Id
		}
	}
	return max + 1
}

func (s *Store) nextUserId() int {
	max := 0
	for _, u := range s.doc.Users {
		if u.Id > max {
			max = u.Id
		}
	}
	return max + 1
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFolder(f *entity.Folder) *entity.Folder {
	c := *f
	c.ParentId = cloneInt(f.ParentId)
	return &c
}

func cloneNote(n *entity.Note) *entity.Note {
	c := *n
	c.FolderId = cloneInt(n.FolderId)
	c.Labels = append([]entity.Label(nil), n.Labels...)
	return &c
}

func cloneLabel(l *entity.Label) *entity.Label {
	c := *l
	return &c
}
