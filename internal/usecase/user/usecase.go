package user

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type UserUsecase interface {
	FindOrCreateUser(ctx context.Context, input *FindOrCreateUserInput) (*domain.User, error)
	GetUserByTelegramID(telegramID int64) (*domain.User, error)

	SaveDraft(ctx context.Context, draft *domain.Draft) error
	GetDraft(ctx context.Context, telegramID int64) (*domain.Draft, error)
	ClearDraft(ctx context.Context, telegramID int64) error
}

type FindOrCreateUserInput struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

type DefaultUserUsecase struct {
	UserRepo  domain.UserRepository
	DraftRepo domain.DraftRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, draftRepo domain.DraftRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		UserRepo:  userRepo,
		DraftRepo: draftRepo,
	}
}

func (uc *DefaultUserUsecase) FindOrCreateUser(ctx context.Context, input *FindOrCreateUserInput) (*domain.User, error) {
	user, err := uc.UserRepo.GetUserByTelegramID(input.TelegramID)
	if err == nil {
		// Профиль в телеграме мог измениться — обновляем при каждом контакте
		if user.Username != input.Username || user.FirstName != input.FirstName || user.LastName != input.LastName {
			user.Username = input.Username
			user.FirstName = input.FirstName
			user.LastName = input.LastName
			if err := uc.UserRepo.UpdateUser(user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		TelegramID: input.TelegramID,
		Username:   input.Username,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		IsActive:   true,
	}
	if err := uc.UserRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *DefaultUserUsecase) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	return uc.UserRepo.GetUserByTelegramID(telegramID)
}

func (uc *DefaultUserUsecase) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	return uc.DraftRepo.SaveDraft(ctx, draft)
}

func (uc *DefaultUserUsecase) GetDraft(ctx context.Context, telegramID int64) (*domain.Draft, error) {
	return uc.DraftRepo.GetDraft(ctx, telegramID)
}

func (uc *DefaultUserUsecase) ClearDraft(ctx context.Context, telegramID int64) error {
	return uc.DraftRepo.DeleteDraft(ctx, telegramID)
}
