// Package app provides the main application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// different operational modes:
//
//   - Webhook mode: HTTPS endpoint receiving updates pushed by Telegram
//   - Bot mode: long-polling client for local runs without a public address
//
// Both modes share the question pipeline and the pending answer store.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/bot"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/config"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/observability"
	"github.com/lueurxax/telegram-quiz-bot/internal/storage"
)

const errBotInit = "bot initialization failed: %w"

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg     *config.Config
	answers storage.Answers
	redis   *redis.Client
	logger  *zerolog.Logger
}

// New wires the pending answer store and returns the application. Without a
// REDIS_URL the store lives in process memory, which is enough for a single
// polling instance but loses pending answers on restart.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.RedisURL == "" {
		logger.Warn().Msg("REDIS_URL not set, storing pending answers in memory")

		a.answers = storage.NewMemory()

		return a, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	a.redis = client
	a.answers = storage.NewRedis(client, logger)

	logger.Info().Str("addr", opts.Addr).Msg("Connected to Redis")

	return a, nil
}

// StartHealthServer starts the health check and metrics server. Readiness
// reflects the Redis connection when one is configured.
func (a *App) StartHealthServer(ctx context.Context) error {
	var store observability.Pinger
	if a.redis != nil {
		store = observability.PingerFunc(func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		})
	}

	srv := observability.NewServer(store, a.cfg.HealthPort, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("health server start: %w", err)
	}

	return nil
}

// RunBot runs the long-polling mode.
func (a *App) RunBot(ctx context.Context) error {
	a.logger.Info().Msg("Starting bot mode")

	b, err := bot.New(a.cfg, a.answers, a.logger)
	if err != nil {
		return fmt.Errorf(errBotInit, err)
	}

	if err := b.Run(ctx); err != nil {
		return fmt.Errorf("bot run: %w", err)
	}

	return nil
}

// RunWebhook runs the webhook mode: registers the endpoint with Telegram and
// serves pushed updates until the context is canceled.
func (a *App) RunWebhook(ctx context.Context) error {
	a.logger.Info().Msg("Starting webhook mode")

	b, err := bot.New(a.cfg, a.answers, a.logger)
	if err != nil {
		return fmt.Errorf(errBotInit, err)
	}

	if a.cfg.WebhookPublicURL != "" {
		if err := b.RegisterWebhook(); err != nil {
			return fmt.Errorf("webhook registration: %w", err)
		}
	} else {
		a.logger.Warn().Msg("WEBHOOK_PUBLIC_URL not set, skipping webhook registration")
	}

	srv := bot.NewWebhookServer(b, a.cfg, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("webhook server: %w", err)
	}

	return nil
}

// Close releases held connections.
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}
