package request

import (
	"context"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	requestdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/request"
)

func (uc *DefaultExchangeUsecase) CreateRequest(ctx context.Context, input *requestdto.CreateRequestInput) (*domain.ExchangeRequest, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, domain.ErrInvalidInput
	}

	if !input.OperationType.Valid() || !input.Currency.Valid() {
		return nil, domain.ErrInvalidInput
	}

	request := &domain.ExchangeRequest{
		UserID:        input.UserID,
		OperationType: input.OperationType,
		Currency:      input.Currency,
		Amount:        input.Amount,
		City:          city,
		Status:        domain.StatusPending,
	}

	if err := uc.RequestRepo.CreateRequest(request); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsCreatedTotal.WithLabelValues(string(request.OperationType), string(request.Currency)).Inc()
	}

	uc.logStatusChange(ctx, request.ID, "", domain.StatusPending, "user")
	uc.publishEvent(request)

	return request, nil
}
