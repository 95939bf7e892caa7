package request

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/telegram"
)

// ExpireRequests moves the batch to EXPIRED. Requests no longer in an
// expirable status are silently skipped, which makes the call safe for
// the sweeper without prior per-item state checks. Every request the
// batch actually moved gets the same audit entry and lifecycle event as
// an interactive transition.
func (uc *DefaultExchangeUsecase) ExpireRequests(ctx context.Context, ids []uint) (int64, error) {
	prior := make(map[uint]domain.RequestStatus, len(ids))
	for _, id := range ids {
		snapshot, err := uc.RequestRepo.GetRequestByID(id)
		if err != nil {
			continue
		}
		prior[id] = snapshot.Status
	}

	count, err := uc.RequestRepo.UpdateManyStatuses(ids, uc.expirableStatuses(), domain.StatusExpired)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	for _, id := range ids {
		oldStatus, seen := prior[id]
		if !seen || oldStatus.Terminal() {
			continue
		}
		updated, err := uc.RequestRepo.GetRequestByID(id)
		if err != nil || updated.Status != domain.StatusExpired {
			continue
		}
		uc.logStatusChange(ctx, id, oldStatus, domain.StatusExpired, "sweeper")
		uc.publishEvent(updated)
	}

	if uc.Metrics != nil {
		uc.Metrics.RequestsExpiredTotal.WithLabelValues("offer").Add(float64(count))
	}

	return count, nil
}

// ExpireDueRequests is the offer-expiry pass: every request whose offer
// deadline elapsed gets a notice and the whole batch is expired in one
// update. A failed notice never blocks the transition.
func (uc *DefaultExchangeUsecase) ExpireDueRequests(ctx context.Context) error {
	now := uc.Now()
	if uc.Metrics != nil {
		timer := uc.Metrics.SweepDuration
		defer func() { timer.Observe(uc.Now().Sub(now).Seconds()) }()
	}

	expired, err := uc.RequestRepo.FindExpiredBefore(now, uc.expirableStatuses())
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	slog.Info("found expired requests", "count", len(expired))

	ids := make([]uint, 0, len(expired))
	for _, req := range expired {
		uc.notifyUser(ctx, req.UserID, telegram.ExpiredNotice(req))
		ids = append(ids, req.ID)
	}

	count, err := uc.ExpireRequests(ctx, ids)
	if err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.SweepBatchSize.Observe(float64(count))
	}

	slog.Info("requests marked as expired", "count", count)
	return nil
}

// ExpireStaleWaiting is the wait-window pass. WAITING_CLIENT has no
// stored deadline; the window is recomputed from ConfirmedAt on every
// tick, so an operator re-confirm restarts the clock.
func (uc *DefaultExchangeUsecase) ExpireStaleWaiting(ctx context.Context) error {
	now := uc.Now()

	waiting, err := uc.RequestRepo.GetRequestsByStatus([]domain.RequestStatus{domain.StatusWaitingClient})
	if err != nil {
		return err
	}

	for _, req := range waiting {
		if req.ConfirmedAt == nil || now.Sub(*req.ConfirmedAt) <= uc.Policy.WaitTTL {
			continue
		}

		uc.notifyUser(ctx, req.UserID, telegram.WaitElapsedNotice(req))

		ok, err := uc.RequestRepo.UpdateRequestFields(
			req.ID,
			[]domain.RequestStatus{domain.StatusWaitingClient},
			map[string]interface{}{"status": domain.StatusExpired},
		)
		if err != nil {
			slog.Error("failed to expire waiting request", "request_id", req.ID, "error", err.Error())
			continue
		}
		if !ok {
			// заявку уже перевели — не наша очередь
			continue
		}

		uc.logStatusChange(ctx, req.ID, domain.StatusWaitingClient, domain.StatusExpired, "sweeper")
		if updated, err := uc.RequestRepo.GetRequestByID(req.ID); err == nil {
			uc.publishEvent(updated)
		}
		if uc.Metrics != nil {
			uc.Metrics.RequestsExpiredTotal.WithLabelValues("wait").Inc()
		}
	}

	return nil
}

// notifyUser is the sweeper's best-effort delivery: bounded timeout,
// логируем и идем дальше.
func (uc *DefaultExchangeUsecase) notifyUser(ctx context.Context, telegramID int64, text string) {
	if uc.Notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, uc.Policy.NotifyTimeout)
	defer cancel()

	if err := uc.Notifier.NotifyUser(notifyCtx, telegramID, text); err != nil {
		slog.Error("failed to notify user", "telegram_id", telegramID, "error", err.Error())
		if uc.Metrics != nil {
			uc.Metrics.NotifyErrorsTotal.WithLabelValues("user").Inc()
		}
	}
}
