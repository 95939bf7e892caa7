package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestEvent is published on every lifecycle transition so downstream
// consumers (operator bots, analytics) can follow requests without
// polling the store.
type RequestEvent struct {
	EventID       string          `json:"event_id"`
	RequestID     uint            `json:"request_id"`
	UserID        int64           `json:"user_id"`
	Status        RequestStatus   `json:"status"`
	OperationType OperationType   `json:"operation_type"`
	Currency      Currency        `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	City          string          `json:"city"`
	ExchangeRate  string          `json:"exchange_rate,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type RequestEventPublisher interface {
	PublishRequestEvent(event RequestEvent) error
}
