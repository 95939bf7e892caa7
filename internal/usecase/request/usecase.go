package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	requestdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/request"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type ExchangeUsecase interface {
	CreateRequest(ctx context.Context, input *requestdto.CreateRequestInput) (*domain.ExchangeRequest, error)
	ConfirmRequest(ctx context.Context, input *requestdto.ConfirmRequestInput) (*domain.ExchangeRequest, error)
	BookRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error)
	MarkWaitingClient(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error)
	CancelRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error)
	CompleteRequest(ctx context.Context, requestID uint) (*domain.ExchangeRequest, error)
	SetOperatorMessageID(ctx context.Context, requestID uint, messageID int64) (*domain.ExchangeRequest, error)
	ExpireRequests(ctx context.Context, ids []uint) (int64, error)

	GetRequestByID(requestID uint) (*domain.ExchangeRequest, error)
	GetActiveRequests() ([]*domain.ExchangeRequest, error)
	GetConfirmedRequests() ([]*domain.ExchangeRequest, error)
	GetRecentRequests(limit int) ([]*domain.ExchangeRequest, error)

	ExpireDueRequests(ctx context.Context) error
	ExpireStaleWaiting(ctx context.Context) error
}

// LifecyclePolicy is the timing policy of the state machine. ExpireBooked
// controls whether BOOKED requests still fall under the offer-expiry sweep.
type LifecyclePolicy struct {
	OfferTTL      time.Duration
	WaitTTL       time.Duration
	NotifyTimeout time.Duration
	ExpireBooked  bool
}

type DefaultExchangeUsecase struct {
	RequestRepo domain.ExchangeRequestRepository
	Notifier    domain.Notifier
	Publisher   domain.RequestEventPublisher
	EventLog    logger.RequestEventLogger
	Metrics     *metrics.RequestMetrics
	Policy      LifecyclePolicy

	// Now is the injected time source; tests replace it
	Now domain.Clock
}

func NewDefaultExchangeUsecase(
	requestRepo domain.ExchangeRequestRepository,
	notifier domain.Notifier,
	publisher domain.RequestEventPublisher,
	eventLog logger.RequestEventLogger,
	requestMetrics *metrics.RequestMetrics,
	policy LifecyclePolicy) *DefaultExchangeUsecase {

	return &DefaultExchangeUsecase{
		RequestRepo: requestRepo,
		Notifier:    notifier,
		Publisher:   publisher,
		EventLog:    eventLog,
		Metrics:     requestMetrics,
		Policy:      policy,
		Now:         time.Now,
	}
}

// expirableStatuses are the statuses the offer-expiry sweep may touch.
func (uc *DefaultExchangeUsecase) expirableStatuses() []domain.RequestStatus {
	statuses := []domain.RequestStatus{domain.StatusConfirmed, domain.StatusWaitingClient}
	if uc.Policy.ExpireBooked {
		statuses = append(statuses, domain.StatusBooked)
	}
	return statuses
}

func (uc *DefaultExchangeUsecase) publishEvent(request *domain.ExchangeRequest) {
	if uc.Publisher == nil {
		return
	}

	event := domain.RequestEvent{
		EventID:       uuid.NewString(),
		RequestID:     request.ID,
		UserID:        request.UserID,
		Status:        request.Status,
		OperationType: request.OperationType,
		Currency:      request.Currency,
		Amount:        request.Amount,
		City:          request.City,
		OccurredAt:    uc.Now(),
	}
	if request.ExchangeRate.Valid {
		event.ExchangeRate = request.ExchangeRate.Decimal.String()
	}

	go func(event domain.RequestEvent) {
		if err := uc.Publisher.PublishRequestEvent(event); err != nil {
			slog.Error("failed to publish request event", "request_id", event.RequestID, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultExchangeUsecase) logStatusChange(ctx context.Context, requestID uint, oldStatus, newStatus domain.RequestStatus, actor string) {
	if uc.EventLog == nil {
		return
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return
	}

	event := logger.RequestStatusEvent{
		ID:        idGenerator(),
		RequestID: requestID,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		Actor:     actor,
		Timestamp: uc.Now(),
	}
	if err := uc.EventLog.LogStatusChange(ctx, event); err != nil {
		slog.Error("failed to log status change", "request_id", requestID, "error", err.Error())
	}
}

// transition performs a guarded status update and returns the fresh
// snapshot. A guard miss is ErrInvalidTransition: someone else already
// moved the request, which is an expected outcome under races.
func (uc *DefaultExchangeUsecase) transition(
	ctx context.Context,
	requestID uint,
	allowed []domain.RequestStatus,
	fields map[string]interface{},
	actor string,
) (*domain.ExchangeRequest, error) {
	snapshot, err := uc.RequestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	ok, err := uc.RequestRepo.UpdateRequestFields(requestID, allowed, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := uc.RequestRepo.GetRequestByID(requestID)
	if err != nil {
		return nil, err
	}

	uc.logStatusChange(ctx, requestID, snapshot.Status, updated.Status, actor)
	uc.publishEvent(updated)

	return updated, nil
}
