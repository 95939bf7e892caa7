package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type DraftState string

const (
	DraftStateStart             DraftState = "START"
	DraftStateChoosingOperation DraftState = "CHOOSING_OPERATION"
	DraftStateChoosingCurrency  DraftState = "CHOOSING_CURRENCY"
	DraftStateEnteringAmount    DraftState = "ENTERING_AMOUNT"
	DraftStateEnteringCity      DraftState = "ENTERING_CITY"
	DraftStateWaitingOperator   DraftState = "WAITING_OPERATOR"
)

// Draft is the short-lived per-user dialog record: the operation being
// assembled before an exchange request row exists, or the request an
// operator is currently replying to. Keyed by telegram id.
type Draft struct {
	TelegramID    int64           `json:"telegram_id"`
	State         DraftState      `json:"state"`
	OperationType OperationType   `json:"operation_type,omitempty"`
	Currency      Currency        `json:"currency,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	RespondingTo  uint            `json:"responding_to,omitempty"`
}

type DraftRepository interface {
	SaveDraft(ctx context.Context, draft *Draft) error
	GetDraft(ctx context.Context, telegramID int64) (*Draft, error)
	DeleteDraft(ctx context.Context, telegramID int64) error
}
