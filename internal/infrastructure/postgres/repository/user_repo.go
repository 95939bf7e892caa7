package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Create(userModel).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (r *DefaultUserRepository) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) UpdateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Save(userModel).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
