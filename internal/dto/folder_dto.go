package dto

import "time"

type CreateFolderRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentId *int   `json:"parentId"`
}

type UpdateFolderRequest struct {
	Id       int
	Name     string `json:"name" validate:"required"`
	ParentId *int   `json:"parentId"`
}

type FolderResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	ParentId  *int      `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FolderTreeResponse is one node of the folder hierarchy. Children are
// recomputed per request, never persisted.
type FolderTreeResponse struct {
	Id        int                   `json:"id"`
	Name      string                `json:"name"`
	ParentId  *int                  `json:"parentId"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	Children  []*FolderTreeResponse `json:"children"`
}
