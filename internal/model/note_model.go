package model

import "time"

type Note struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:text;not null"`
	Content    string    `gorm:"type:text;not null"`
	FolderId   *int      `gorm:"index"`
	Folder     *Folder   `gorm:"foreignKey:FolderId;constraint:OnDelete:SET NULL"`
	IsArchived bool      `gorm:"not null;default:false"`
	IsTrashed  bool      `gorm:"not null;default:false"`
	IsPinned   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null"`
}

func (Note) TableName() string {
	return "notes"
}
