package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	StatusPending       RequestStatus = "PENDING"
	StatusProcessing    RequestStatus = "PROCESSING"
	StatusConfirmed     RequestStatus = "CONFIRMED"
	StatusBooked        RequestStatus = "BOOKED"
	StatusWaitingClient RequestStatus = "WAITING_CLIENT"
	StatusCompleted     RequestStatus = "COMPLETED"
	StatusCancelled     RequestStatus = "CANCELLED"
	StatusExpired       RequestStatus = "EXPIRED"
)

// Terminal reports whether no further transition is permitted from s.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusExpired:
		return true
	case StatusPending, StatusProcessing, StatusConfirmed, StatusBooked, StatusWaitingClient:
		return false
	default:
		return false
	}
}

// NonTerminalStatuses is the set of statuses a cancel may act on.
func NonTerminalStatuses() []RequestStatus {
	return []RequestStatus{
		StatusPending,
		StatusProcessing,
		StatusConfirmed,
		StatusBooked,
		StatusWaitingClient,
	}
}

type OperationType string

const (
	OperationBuy  OperationType = "buy"
	OperationSell OperationType = "sell"
)

func (op OperationType) Valid() bool {
	return op == OperationBuy || op == OperationSell
}

type Currency string

const (
	CurrencyUSD  Currency = "USD"
	CurrencyEUR  Currency = "EUR"
	CurrencyRUB  Currency = "RUB"
	CurrencyUSDT Currency = "USDT"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyRUB, CurrencyUSDT:
		return true
	}
	return false
}

type ExchangeRequest struct {
	ID                uint
	UserID            int64
	OperationType     OperationType
	Currency          Currency
	Amount            decimal.Decimal
	City              string
	Status            RequestStatus
	ExchangeRate      decimal.NullDecimal
	TotalAmount       decimal.NullDecimal
	OperatorResponse  string
	OperatorMessageID int64
	ConfirmedAt       *time.Time
	BookedAt          *time.Time
	ExpiresAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
