package request

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

func (uc *DefaultExchangeUsecase) BookRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error) {
	now := uc.Now()
	fields := map[string]interface{}{
		"status":    domain.StatusBooked,
		"booked_at": now,
	}

	updated, err := uc.transition(
		ctx,
		requestID,
		[]domain.RequestStatus{domain.StatusConfirmed, domain.StatusWaitingClient},
		fields,
		"user",
	)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsBookedTotal.WithLabelValues(string(updated.OperationType), string(updated.Currency)).Inc()
		if updated.ConfirmedAt != nil {
			uc.Metrics.OfferReactionDuration.WithLabelValues(string(updated.OperationType)).
				Observe(now.Sub(*updated.ConfirmedAt).Seconds())
		}
	}

	return updated, nil
}

// MarkWaitingClient parks a quoted request while the user gathers info.
// ExpiresAt is left alone: the wait window is measured off ConfirmedAt
// by the sweeper, not off the stored offer deadline.
func (uc *DefaultExchangeUsecase) MarkWaitingClient(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error) {
	fields := map[string]interface{}{
		"status": domain.StatusWaitingClient,
	}

	return uc.transition(
		ctx,
		requestID,
		[]domain.RequestStatus{domain.StatusConfirmed},
		fields,
		"user",
	)
}
