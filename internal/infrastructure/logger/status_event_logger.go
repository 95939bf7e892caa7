package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RequestStatusEvent is an append-only audit row written on every status
// transition. The lifecycle rows themselves only keep the latest state.
type RequestStatusEvent struct {
	ID        string `gorm:"primaryKey"`
	RequestID uint   `gorm:"index"`
	OldStatus string
	NewStatus string
	Actor     string
	Timestamp time.Time
}

type RequestEventLogger interface {
	LogStatusChange(ctx context.Context, event RequestStatusEvent) error
}

type PGRequestEventLogger struct {
	db *gorm.DB
}

func NewPGRequestEventLogger(db *gorm.DB) *PGRequestEventLogger {
	return &PGRequestEventLogger{db: db}
}

func (l *PGRequestEventLogger) LogStatusChange(ctx context.Context, event RequestStatusEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
