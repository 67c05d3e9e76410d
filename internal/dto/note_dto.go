package dto

import "time"

type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	FolderId *int   `json:"folderId"`
	IsPinned bool   `json:"isPinned"`
	Labels   []int  `json:"labels" validate:"omitempty,dive,gt=0"`
}

// UpdateNoteRequest carries the full set of writable fields; Labels is
// reconciled against the association table (add missing, remove absent).
type UpdateNoteRequest struct {
	Id         int
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	FolderId   *int   `json:"folderId"`
	IsArchived bool   `json:"isArchived"`
	IsTrashed  bool   `json:"isTrashed"`
	IsPinned   bool   `json:"isPinned"`
	Labels     []int  `json:"labels" validate:"omitempty,dive,gt=0"`
}

// ListNotesQuery mirrors the query params of GET /api/notes. All fields
// optional; the zero value is the default "All Notes" view.
type ListNotesQuery struct {
	FolderId *int
	LabelId  *int
	Search   string
	Archived bool
}

type MoveNoteRequest struct {
	Id       int
	FolderId *int `json:"folderId"`
}

type DropRequest struct {
	SourceId string `json:"sourceId" validate:"required"`
	TargetId string `json:"targetId" validate:"required"`
}

type NoteResponse struct {
	Id         int              `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	FolderId   *int             `json:"folderId"`
	IsArchived bool             `json:"isArchived"`
	IsTrashed  bool             `json:"isTrashed"`
	IsPinned   bool             `json:"isPinned"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Labels     []*LabelResponse `json:"labels"`
}

// NoteListResponse groups the visible set; Pinned is only populated
// outside the archived view.
type NoteListResponse struct {
	Pinned []*NoteResponse `json:"pinned"`
	Notes  []*NoteResponse `json:"notes"`
}
