package requestdto

import (
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type RequestOutput struct {
	ID                uint       `json:"id"`
	UserID            int64      `json:"user_id"`
	OperationType     string     `json:"operation_type"`
	Currency          string     `json:"currency"`
	Amount            string     `json:"amount"`
	City              string     `json:"city"`
	Status            string     `json:"status"`
	ExchangeRate      string     `json:"exchange_rate,omitempty"`
	TotalAmount       string     `json:"total_amount,omitempty"`
	OperatorResponse  string     `json:"operator_response,omitempty"`
	OperatorMessageID int64      `json:"operator_message_id,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	BookedAt          *time.Time `json:"booked_at,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToRequestOutput(request *domain.ExchangeRequest) *RequestOutput {
	out := &RequestOutput{
		ID:                request.ID,
		UserID:            request.UserID,
		OperationType:     string(request.OperationType),
		Currency:          string(request.Currency),
		Amount:            request.Amount.String(),
		City:              request.City,
		Status:            string(request.Status),
		OperatorResponse:  request.OperatorResponse,
		OperatorMessageID: request.OperatorMessageID,
		ConfirmedAt:       request.ConfirmedAt,
		BookedAt:          request.BookedAt,
		ExpiresAt:         request.ExpiresAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}

	if request.ExchangeRate.Valid {
		out.ExchangeRate = request.ExchangeRate.Decimal.String()
	}
	if request.TotalAmount.Valid {
		out.TotalAmount = request.TotalAmount.Decimal.String()
	}

	return out
}
