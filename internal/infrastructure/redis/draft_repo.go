package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/go-redis/redis/v8"
)

// RedisDraftRepository keeps per-user dialog drafts with a TTL so an
// abandoned dialog disappears on its own instead of living in postgres.
type RedisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) *RedisDraftRepository {
	return &RedisDraftRepository{client: client, ttl: ttl}
}

func draftKey(telegramID int64) string {
	return fmt.Sprintf("exchange:draft:%d", telegramID)
}

func (r *RedisDraftRepository) SaveDraft(ctx context.Context, draft *domain.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := r.client.Set(ctx, draftKey(draft.TelegramID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (r *RedisDraftRepository) GetDraft(ctx context.Context, telegramID int64) (*domain.Draft, error) {
	payload, err := r.client.Get(ctx, draftKey(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft domain.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

func (r *RedisDraftRepository) DeleteDraft(ctx context.Context, telegramID int64) error {
	if err := r.client.Del(ctx, draftKey(telegramID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
