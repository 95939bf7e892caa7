package request

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	requestdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/request"
	"github.com/shopspring/decimal"
)

// ConfirmRequest records the operator's quote. Rate, total and the offer
// deadline are written exactly once here; quote delivery to the user is
// the caller's concern, the engine only returns the updated snapshot.
func (uc *DefaultExchangeUsecase) ConfirmRequest(ctx context.Context, input *requestdto.ConfirmRequestInput) (*domain.ExchangeRequest, error) {
	if input.ExchangeRate.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}

	snapshot, err := uc.RequestRepo.GetRequestByID(input.RequestID)
	if err != nil {
		return nil, err
	}

	now := uc.Now()
	expiresAt := now.Add(uc.Policy.OfferTTL)
	totalAmount := input.ExchangeRate.Mul(snapshot.Amount)

	fields := map[string]interface{}{
		"status":            domain.StatusConfirmed,
		"exchange_rate":     decimal.NewNullDecimal(input.ExchangeRate),
		"total_amount":      decimal.NewNullDecimal(totalAmount),
		"operator_response": input.OperatorResponse,
		"confirmed_at":      now,
		"expires_at":        expiresAt,
	}

	updated, err := uc.transition(
		ctx,
		input.RequestID,
		[]domain.RequestStatus{domain.StatusPending, domain.StatusProcessing},
		fields,
		input.OperatorName,
	)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsConfirmedTotal.WithLabelValues(string(updated.OperationType), string(updated.Currency)).Inc()
	}

	return updated, nil
}
