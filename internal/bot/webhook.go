package bot

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/config"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/observability"
)

const (
	headerSecretToken = "X-Telegram-Bot-Api-Secret-Token"

	webhookShutdownTimeout   = 5 * time.Second
	webhookReadHeaderTimeout = 10 * time.Second
)

// WebhookServer receives Telegram updates over HTTPS instead of long polling.
// Telegram authenticates itself with the secret token header it was given at
// registration time.
type WebhookServer struct {
	addr   string
	path   string
	secret string
	logger *zerolog.Logger
	handle func(ctx context.Context, update tgbotapi.Update)
}

// NewWebhookServer builds the update receiver for webhook mode.
func NewWebhookServer(b *Bot, cfg *config.Config, logger *zerolog.Logger) *WebhookServer {
	return &WebhookServer{
		addr:   cfg.WebhookAddr,
		path:   cfg.WebhookPath,
		secret: cfg.WebhookSecret,
		logger: logger,
		handle: b.HandleUpdate,
	}
}

// Start serves the webhook endpoint until the context is canceled.
func (s *WebhookServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc(s.path, s.serveUpdate)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: webhookReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), webhookShutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx) //nolint:contextcheck // shutdown needs its own context after cancellation
	}()

	s.logger.Info().Str("addr", s.addr).Str("path", s.path).Msg("Webhook server starting")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("webhook server error: %w", err)
	}

	return nil
}

func (s *WebhookServer) serveUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		observability.WebhookRequests.WithLabelValues("method_not_allowed").Inc()
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	if s.secret != "" {
		token := r.Header.Get(headerSecretToken)
		if subtle.ConstantTimeCompare([]byte(s.secret), []byte(token)) != 1 {
			observability.WebhookRequests.WithLabelValues("forbidden").Inc()
			s.logger.Warn().Msg("Webhook request with invalid secret token")
			w.WriteHeader(http.StatusForbidden)

			return
		}
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		observability.WebhookRequests.WithLabelValues("bad_request").Inc()
		s.logger.Warn().Err(err).Msg("Webhook request with malformed update")
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	s.handle(r.Context(), update)

	observability.WebhookRequests.WithLabelValues("ok").Inc()
	w.WriteHeader(http.StatusOK)
}

// RegisterWebhook points Telegram at the public endpoint. The call goes
// through MakeRequest because this client version has no secret_token field
// in its webhook config.
func (b *Bot) RegisterWebhook() error {
	params := tgbotapi.Params{
		"url": strings.TrimRight(b.cfg.WebhookPublicURL, "/") + b.cfg.WebhookPath,
	}
	if b.cfg.WebhookSecret != "" {
		params["secret_token"] = b.cfg.WebhookSecret
	}

	resp, err := b.api.MakeRequest("setWebhook", params)
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	if !resp.Ok {
		return fmt.Errorf("set webhook rejected: %s", resp.Description)
	}

	b.logger.Info().Str("url", params["url"]).Msg("Webhook registered")

	return nil
}
