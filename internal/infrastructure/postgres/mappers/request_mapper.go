package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainRequest(model *models.ExchangeRequestModel) *domain.ExchangeRequest {
	return &domain.ExchangeRequest{
		ID:                model.ID,
		UserID:            model.UserID,
		OperationType:     domain.OperationType(model.OperationType),
		Currency:          domain.Currency(model.Currency),
		Amount:            model.Amount,
		City:              model.City,
		Status:            model.Status,
		ExchangeRate:      model.ExchangeRate,
		TotalAmount:       model.TotalAmount,
		OperatorResponse:  model.OperatorResponse,
		OperatorMessageID: model.OperatorMessageID,
		ConfirmedAt:       model.ConfirmedAt,
		BookedAt:          model.BookedAt,
		ExpiresAt:         model.ExpiresAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMRequest(request *domain.ExchangeRequest) *models.ExchangeRequestModel {
	return &models.ExchangeRequestModel{
		ID:                request.ID,
		UserID:            request.UserID,
		OperationType:     string(request.OperationType),
		Currency:          string(request.Currency),
		Amount:            request.Amount,
		City:              request.City,
		Status:            request.Status,
		ExchangeRate:      request.ExchangeRate,
		TotalAmount:       request.TotalAmount,
		OperatorResponse:  request.OperatorResponse,
		OperatorMessageID: request.OperatorMessageID,
		ConfirmedAt:       request.ConfirmedAt,
		BookedAt:          request.BookedAt,
		ExpiresAt:         request.ExpiresAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}
