package domain

import "time"

type User struct {
	ID         uint
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	IsActive   bool
	IsOperator bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByTelegramID(telegramID int64) (*User, error)
	UpdateUser(user *User) error
}
