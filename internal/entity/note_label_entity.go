package entity

// NoteLabel is the many-to-many association between notes and labels.
// Composite identity, no lifecycle beyond its two parents.
type NoteLabel struct {
	NoteId  int
	LabelId int
}
