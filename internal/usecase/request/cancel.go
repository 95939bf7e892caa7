package request

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

// CancelRequest is valid from any non-terminal status and is an
// idempotent no-op on terminal ones, so a double-tap by the operator is
// a success rather than an error.
func (uc *DefaultExchangeUsecase) CancelRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error) {
	snapshot, err := uc.RequestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	if snapshot.Status.Terminal() {
		return snapshot, nil
	}

	fields := map[string]interface{}{
		"status": domain.StatusCancelled,
	}

	updated, err := uc.transition(ctx, requestID, domain.NonTerminalStatuses(), fields, "operator")
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// Кто-то успел закрыть заявку между чтением и записью
			current, getErr := uc.RequestRepo.GetRequestByID(requestID)
			if getErr == nil && current.Status.Terminal() {
				return current, nil
			}
		}
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsCancelledTotal.WithLabelValues(string(updated.OperationType), string(updated.Currency)).Inc()
	}

	return updated, nil
}

func (uc *DefaultExchangeUsecase) CompleteRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error) {
	fields := map[string]interface{}{
		"status": domain.StatusCompleted,
	}

	updated, err := uc.transition(
		ctx,
		requestID,
		[]domain.RequestStatus{domain.StatusBooked},
		fields,
		"operator",
	)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsCompletedTotal.WithLabelValues(string(updated.OperationType), string(updated.Currency)).Inc()
	}

	return updated, nil
}
