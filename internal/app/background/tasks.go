package background

import (
	"context"
	"log"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/usecase/request"
)

// BackgroundTasks hosts the expiration sweeper. Each tick runs two
// independent passes: offer deadlines and stale WAITING_CLIENT windows.
type BackgroundTasks struct {
	ExchangeUsecase request.ExchangeUsecase
	SweepInterval   time.Duration
}

func NewBackgroundTasks(exchangeUC request.ExchangeUsecase, sweepInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		ExchangeUsecase: exchangeUC,
		SweepInterval:   sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startExpirationSweep(ctx)
}

func (bt *BackgroundTasks) startExpirationSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.ExchangeUsecase.ExpireDueRequests(ctx); err != nil {
				log.Printf("Offer-expiry sweep error: %v\n", err)
			}
			if err := bt.ExchangeUsecase.ExpireStaleWaiting(ctx); err != nil {
				log.Printf("Wait-window sweep error: %v\n", err)
			}
		}
	}
}
