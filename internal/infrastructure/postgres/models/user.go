package models

import "time"

type UserModel struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex;not null"`
	Username   string
	FirstName  string
	LastName   string
	IsActive   bool `gorm:"default:true"`
	IsOperator bool `gorm:"default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
