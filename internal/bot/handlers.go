package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/platform/observability"
)

// HandleUpdate dispatches one Telegram update. Every update gets its own
// correlation ID so log lines from concurrent chats stay attributable.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	correlationID := uuid.New().String()
	logger := b.logger.With().Str("correlation_id", correlationID).Logger()

	switch {
	case update.CallbackQuery != nil:
		observability.UpdatesReceived.WithLabelValues("callback").Inc()
		b.handleCallback(ctx, &logger, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		observability.UpdatesReceived.WithLabelValues("command").Inc()
		b.handleCommand(ctx, &logger, update.Message)
	case update.Message != nil:
		observability.UpdatesReceived.WithLabelValues("message").Inc()
	default:
		observability.UpdatesReceived.WithLabelValues("other").Inc()
	}
}

func (b *Bot) handleCommand(ctx context.Context, logger *zerolog.Logger, msg *tgbotapi.Message) {
	logger.Info().
		Str("command", msg.Command()).
		Int64("chat_id", msg.Chat.ID).
		Msg("Handling command")

	switch msg.Command() {
	case CmdStart:
		b.sendPlain(logger, msg.Chat.ID, msgStart)
	case CmdHelp:
		b.sendPlain(logger, msg.Chat.ID, msgHelp)
	case CmdQuiz:
		b.handleQuiz(ctx, logger, msg)
	default:
		b.sendPlain(logger, msg.Chat.ID, msgUnknownCommand)
	}
}
