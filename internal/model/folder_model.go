package model

import "time"

type Folder struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	ParentId  *int      `gorm:"index"`
	Parent    *Folder   `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (Folder) TableName() string {
	return "folders"
}
