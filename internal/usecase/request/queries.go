package request

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

func (uc *DefaultExchangeUsecase) GetRequestByID(requestID uint) (*domain.ExchangeRequest, error) {
	return uc.RequestRepo.GetRequestByID(requestID)
}

// GetActiveRequests returns requests still waiting for an operator quote.
func (uc *DefaultExchangeUsecase) GetActiveRequests() ([]*domain.ExchangeRequest, error) {
	return uc.RequestRepo.GetRequestsByStatus([]domain.RequestStatus{domain.StatusPending, domain.StatusProcessing})
}

// GetConfirmedRequests returns quoted requests whose offer window is live.
func (uc *DefaultExchangeUsecase) GetConfirmedRequests() ([]*domain.ExchangeRequest, error) {
	return uc.RequestRepo.GetRequestsByStatus([]domain.RequestStatus{
		domain.StatusConfirmed,
		domain.StatusBooked,
		domain.StatusWaitingClient,
	})
}

func (uc *DefaultExchangeUsecase) GetRecentRequests(limit int) ([]*domain.ExchangeRequest, error) {
	return uc.RequestRepo.GetRecentRequests(limit)
}
