package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultExchangeRequestRepository struct {
	DB *gorm.DB
}

func NewDefaultExchangeRequestRepository(db *gorm.DB) *DefaultExchangeRequestRepository {
	return &DefaultExchangeRequestRepository{DB: db}
}

func (r *DefaultExchangeRequestRepository) CreateRequest(request *domain.ExchangeRequest) error {
	requestModel := mappers.ToGORMRequest(request)
	if err := r.DB.Create(requestModel).Error; err != nil {
		return fmt.Errorf("failed to create exchange request: %w", err)
	}
	request.ID = requestModel.ID
	request.CreatedAt = requestModel.CreatedAt
	request.UpdatedAt = requestModel.UpdatedAt
	return nil
}

func (r *DefaultExchangeRequestRepository) GetRequestByID(requestID uint) (*domain.ExchangeRequest, error) {
	var requestModel models.ExchangeRequestModel
	if err := r.DB.First(&requestModel, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	return mappers.ToDomainRequest(&requestModel), nil
}

func (r *DefaultExchangeRequestRepository) GetRequestsByStatus(statuses []domain.RequestStatus) ([]*domain.ExchangeRequest, error) {
	var requestModels []models.ExchangeRequestModel
	if err := r.DB.
		Where("status IN ?", statuses).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*domain.ExchangeRequest, len(requestModels))
	for i, requestModel := range requestModels {
		requests[i] = mappers.ToDomainRequest(&requestModel)
	}

	return requests, nil
}

func (r *DefaultExchangeRequestRepository) GetRecentRequests(limit int) ([]*domain.ExchangeRequest, error) {
	var requestModels []models.ExchangeRequestModel
	if err := r.DB.
		Order("created_at DESC").
		Limit(limit).
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*domain.ExchangeRequest, len(requestModels))
	for i, requestModel := range requestModels {
		requests[i] = mappers.ToDomainRequest(&requestModel)
	}

	return requests, nil
}

func (r *DefaultExchangeRequestRepository) FindExpiredBefore(deadline time.Time, statuses []domain.RequestStatus) ([]*domain.ExchangeRequest, error) {
	var requestModels []models.ExchangeRequestModel
	if err := r.DB.
		Where("status IN ?", statuses).
		Where("expires_at < ?", deadline).
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*domain.ExchangeRequest, len(requestModels))
	for i, requestModel := range requestModels {
		requests[i] = mappers.ToDomainRequest(&requestModel)
	}

	return requests, nil
}

// UpdateRequestFields is the single write path of the state machine: the
// status guard rides in the WHERE clause, so a racing writer loses by row
// count rather than by corrupting state.
func (r *DefaultExchangeRequestRepository) UpdateRequestFields(requestID uint, allowed []domain.RequestStatus, fields map[string]interface{}) (bool, error) {
	result := r.DB.Model(&models.ExchangeRequestModel{}).
		Where("id = ? AND status IN ?", requestID, allowed).
		Updates(fields)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update request %d: %w", requestID, result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *DefaultExchangeRequestRepository) UpdateManyStatuses(ids []uint, allowed []domain.RequestStatus, newStatus domain.RequestStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.DB.Model(&models.ExchangeRequestModel{}).
		Where("id IN ? AND status IN ?", ids, allowed).
		Update("status", newStatus)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update request statuses: %w", result.Error)
	}

	return result.RowsAffected, nil
}
