package models

import (
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ExchangeRequestModel struct {
	ID                uint                 `gorm:"primaryKey"`
	UserID            int64                `gorm:"index;not null"`
	OperationType     string               `gorm:"type:varchar(8);not null"`
	Currency          string               `gorm:"type:varchar(8);not null"`
	Amount            decimal.Decimal      `gorm:"type:decimal(15,2);not null"`
	City              string               `gorm:"not null"`
	Status            domain.RequestStatus `gorm:"type:varchar(16);index:idx_status_expires"`
	ExchangeRate      decimal.NullDecimal  `gorm:"type:decimal(10,4)"`
	TotalAmount       decimal.NullDecimal  `gorm:"type:decimal(15,2)"`
	OperatorResponse  string
	OperatorMessageID int64
	ConfirmedAt       *time.Time `gorm:"index"`
	BookedAt          *time.Time
	ExpiresAt         *time.Time `gorm:"index:idx_status_expires"`
	CreatedAt         time.Time  `gorm:"index:idx_created_at"`
	UpdatedAt         time.Time
}
