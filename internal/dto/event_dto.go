package dto

// ChangeEvent is published on every successful mutation and fanned out
// to websocket clients so open tabs can refresh their collections.
type ChangeEvent struct {
	Entity string `json:"entity"` // "note" | "folder" | "label"
	Action string `json:"action"` // "created" | "updated" | "deleted"
	Id     int    `json:"id"`
}
