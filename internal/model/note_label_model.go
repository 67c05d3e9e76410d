package model

type NoteLabel struct {
	NoteId  int    `gorm:"primaryKey;autoIncrement:false"`
	LabelId int    `gorm:"primaryKey;autoIncrement:false"`
	Note    *Note  `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
	Label   *Label `gorm:"foreignKey:LabelId;constraint:OnDelete:CASCADE"`
}

func (NoteLabel) TableName() string {
	return "note_labels"
}
