package domain

import "context"

// Notifier delivers chat messages. Best-effort: a failed delivery is an
// ErrDeliveryFailed the caller may log and drop, state is never rolled
// back because of it.
type Notifier interface {
	NotifyUser(ctx context.Context, telegramID int64, text string) error
	NotifyOperatorChannel(ctx context.Context, text string) error
}
