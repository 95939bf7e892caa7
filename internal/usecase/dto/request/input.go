package requestdto

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateRequestInput struct {
	UserID        int64
	OperationType domain.OperationType
	Currency      domain.Currency
	Amount        decimal.Decimal
	City          string
}

type ConfirmRequestInput struct {
	RequestID        uint
	ExchangeRate     decimal.Decimal
	OperatorResponse string
	OperatorName     string
}
