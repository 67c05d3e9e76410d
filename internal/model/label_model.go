package model

import "time"

type Label struct {
	Id        int       `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	Color     string    `gorm:"type:text;not null;default:'#808080'"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
}

func (Label) TableName() string {
	return "labels"
}
