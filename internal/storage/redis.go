package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
)

// redisAnswers stores entries as JSON values with a per-key TTL.
type redisAnswers struct {
	client *redis.Client
	logger *zerolog.Logger
}

func NewRedis(client *redis.Client, logger *zerolog.Logger) Answers {
	return &redisAnswers{
		client: client,
		logger: logger,
	}
}

func (r *redisAnswers) Set(ctx context.Context, key string, entry domain.PendingAnswer, ttl time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal pending answer: %w", err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store pending answer: %w", err)
	}

	r.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("Stored pending answer")

	return nil
}

func (r *redisAnswers) Get(ctx context.Context, key string) (domain.PendingAnswer, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PendingAnswer{}, errors.ErrCacheNotFound
	}

	if err != nil {
		return domain.PendingAnswer{}, fmt.Errorf("load pending answer: %w", err)
	}

	var entry domain.PendingAnswer
	if err := json.Unmarshal(payload, &entry); err != nil {
		return domain.PendingAnswer{}, fmt.Errorf("decode pending answer: %w", err)
	}

	return entry, nil
}

func (r *redisAnswers) Del(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete pending answer: %w", err)
	}

	return nil
}
