package model

import "time"

type User struct {
	Id           int       `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password;type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string {
	return "users"
}
