package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/question"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/observability"
	"github.com/lueurxax/telegram-quiz-bot/internal/storage"
)

// handleCallback routes inline keyboard presses.
func (b *Bot) handleCallback(ctx context.Context, logger *zerolog.Logger, query *tgbotapi.CallbackQuery) {
	// Ack first so the client stops the button spinner whatever happens next.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logger.Error().Err(err).Msg("Failed to answer callback query")
	}

	switch {
	case strings.HasPrefix(query.Data, CallbackAnswer):
		b.revealAnswer(ctx, logger, query)
	default:
		logger.Debug().Str("data", query.Data).Msg("Ignoring unknown callback")
	}
}

// revealAnswer consumes the cached answer behind a reveal button. One press
// wins: the entry is deleted on the first hit, later presses see a miss.
func (b *Bot) revealAnswer(ctx context.Context, logger *zerolog.Logger, query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	ref := strings.TrimPrefix(query.Data, CallbackAnswer)
	key := storage.AnswerKey(chatID, ref)

	entry, err := b.answers.Get(ctx, key)

	switch {
	case errors.Is(err, errors.ErrCacheNotFound):
		observability.AnswerReveals.WithLabelValues("expired").Inc()
		logger.Info().Str("ref", ref).Msg("Pending answer expired")
		b.sendPlain(logger, chatID, expiredMessage(ref))

		return
	case err != nil:
		observability.AnswerReveals.WithLabelValues("error").Inc()
		logger.Error().Err(err).Str("ref", ref).Msg("Failed to load pending answer")
		b.sendPlain(logger, chatID, msgAnswerExpired)

		return
	}

	if err = b.answers.Del(ctx, key); err != nil {
		logger.Error().Err(err).Str("ref", ref).Msg("Failed to delete pending answer")
	}

	observability.AnswerReveals.WithLabelValues("revealed").Inc()

	b.removeRevealButton(logger, chatID, entry.MessageID)
	b.sendImages(logger, chatID, entry.Preview)

	if _, err = b.sendMarkdown(logger, chatID, entry.Answer, nil); err != nil {
		logger.Error().Err(err).Str("ref", ref).Msg("Failed to send answer")
	}
}

// expiredMessage builds the reveal-miss reply. ID-scheme references get a
// deep link to the public question page, timestamp references have nothing
// to link to.
func expiredMessage(ref string) string {
	if id, ok := refQuestionID(ref); ok {
		return msgAnswerExpired + "\n" + msgExpiredLink + question.QuestionURL(id)
	}

	return msgAnswerExpired
}
