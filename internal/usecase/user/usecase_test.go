package user

import (
	"context"
	"errors"
	"testing"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetUserByTelegramID(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type MockDraftRepo struct {
	mock.Mock
}

func (m *MockDraftRepo) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftRepo) GetDraft(ctx context.Context, telegramID int64) (*domain.Draft, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftRepo) DeleteDraft(ctx context.Context, telegramID int64) error {
	args := m.Called(ctx, telegramID)
	return args.Error(0)
}

func TestFindOrCreateUser_ReturnsExisting(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := NewDefaultUserUsecase(userRepo, nil)

	existing := &domain.User{ID: 1, TelegramID: 100500, Username: "ivan_m", FirstName: "Ivan"}
	userRepo.On("GetUserByTelegramID", int64(100500)).Return(existing, nil)

	user, err := uc.FindOrCreateUser(context.Background(), &FindOrCreateUserInput{
		TelegramID: 100500,
		Username:   "ivan_m",
		FirstName:  "Ivan",
	})
	require.NoError(t, err)
	assert.Equal(t, existing, user)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything)
}

func TestFindOrCreateUser_RefreshesChangedProfile(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := NewDefaultUserUsecase(userRepo, nil)

	existing := &domain.User{ID: 1, TelegramID: 100500, Username: "ivan_old", FirstName: "Ivan"}
	userRepo.On("GetUserByTelegramID", int64(100500)).Return(existing, nil)
	userRepo.On("UpdateUser", mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 1 && u.Username == "ivan_new" && u.LastName == "Molchanov"
	})).Return(nil)

	user, err := uc.FindOrCreateUser(context.Background(), &FindOrCreateUserInput{
		TelegramID: 100500,
		Username:   "ivan_new",
		FirstName:  "Ivan",
		LastName:   "Molchanov",
	})
	require.NoError(t, err)
	assert.Equal(t, "ivan_new", user.Username)
	assert.Equal(t, "Molchanov", user.LastName)
	userRepo.AssertExpectations(t)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestFindOrCreateUser_CreatesMissing(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := NewDefaultUserUsecase(userRepo, nil)

	userRepo.On("GetUserByTelegramID", int64(100500)).Return(nil, domain.ErrUserNotFound)
	userRepo.On("CreateUser", mock.MatchedBy(func(u *domain.User) bool {
		return u.TelegramID == 100500 && u.IsActive
	})).Return(nil)

	user, err := uc.FindOrCreateUser(context.Background(), &FindOrCreateUserInput{
		TelegramID: 100500,
		Username:   "ivan_m",
		FirstName:  "Ivan",
	})
	require.NoError(t, err)
	assert.Equal(t, "ivan_m", user.Username)
	assert.True(t, user.IsActive)
	userRepo.AssertExpectations(t)
}

func TestFindOrCreateUser_PropagatesStoreError(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := NewDefaultUserUsecase(userRepo, nil)

	storeErr := errors.New("connection reset")
	userRepo.On("GetUserByTelegramID", int64(100500)).Return(nil, storeErr)

	_, err := uc.FindOrCreateUser(context.Background(), &FindOrCreateUserInput{TelegramID: 100500})
	assert.ErrorIs(t, err, storeErr)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestDraftPassthrough(t *testing.T) {
	draftRepo := new(MockDraftRepo)
	uc := NewDefaultUserUsecase(nil, draftRepo)
	ctx := context.Background()

	draft := &domain.Draft{TelegramID: 100500, State: domain.DraftStateEnteringCity}
	draftRepo.On("SaveDraft", ctx, draft).Return(nil)
	draftRepo.On("GetDraft", ctx, int64(100500)).Return(draft, nil)
	draftRepo.On("DeleteDraft", ctx, int64(100500)).Return(nil)

	require.NoError(t, uc.SaveDraft(ctx, draft))

	got, err := uc.GetDraft(ctx, 100500)
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	require.NoError(t, uc.ClearDraft(ctx, 100500))
	draftRepo.AssertExpectations(t)
}

func TestGetDraft_NotFound(t *testing.T) {
	draftRepo := new(MockDraftRepo)
	uc := NewDefaultUserUsecase(nil, draftRepo)

	draftRepo.On("GetDraft", mock.Anything, int64(1)).Return(nil, domain.ErrDraftNotFound)

	_, err := uc.GetDraft(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}
