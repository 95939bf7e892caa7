package request

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

// SetOperatorMessageID remembers the admin-chat message carrying the
// request card, so the bot can edit that message in place on later
// updates instead of posting a new one.
func (uc *DefaultExchangeUsecase) SetOperatorMessageID(ctx context.Context, requestID uint, messageID int64) (*domain.ExchangeRequest, error) {
	if _, err := uc.RequestRepo.GetRequestByID(requestID); err != nil {
		return nil, err
	}

	ok, err := uc.RequestRepo.UpdateRequestFields(
		requestID,
		domain.NonTerminalStatuses(),
		map[string]interface{}{"operator_message_id": messageID},
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	return uc.RequestRepo.GetRequestByID(requestID)
}
