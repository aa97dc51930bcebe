package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/question"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/observability"
	"github.com/lueurxax/telegram-quiz-bot/internal/storage"
)

// handleQuiz loads one question and serves it into the chat.
func (b *Bot) handleQuiz(ctx context.Context, logger *zerolog.Logger, msg *tgbotapi.Message) {
	source, tier := parseQuizArgs(msg.CommandArguments(), b.cfg.QuizSource)

	loader, err := question.New(source, tier, b.fetcher, logger)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("Failed to create question loader")
		b.sendPlain(logger, msg.Chat.ID, msgLoadFailed)

		return
	}

	start := time.Now()
	q, err := loader.LoadQuestion(ctx)

	observability.QuestionLoadDuration.WithLabelValues(string(loader.Source())).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.QuestionsLoaded.WithLabelValues(string(loader.Source()), "error").Inc()
		logger.Error().Err(err).
			Str("source", source).
			Str("tier", string(tier)).
			Msg("Failed to load question")
		b.sendPlain(logger, msg.Chat.ID, msgLoadFailed)

		return
	}

	observability.QuestionsLoaded.WithLabelValues(string(loader.Source()), "ok").Inc()

	b.deliverQuestion(ctx, logger, msg.Chat.ID, q)
}

// deliverQuestion sends the question with a reveal button and caches the
// formatted answer under the button's reference.
func (b *Bot) deliverQuestion(ctx context.Context, logger *zerolog.Logger, chatID int64, q *domain.Question) {
	// Telegram rejects empty message text outright.
	if !q.Displayable() {
		logger.Error().Msg("Loaded question has no text")
		b.sendPlain(logger, chatID, msgLoadFailed)

		return
	}

	b.sendImages(logger, chatID, q.QuestionPreview)

	ref := questionRef(q, time.Now())
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BtnShowAnswer, CallbackAnswer+ref),
		),
	)

	sent, err := b.sendMarkdown(logger, chatID, question.FormatQuestion(q), &keyboard)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send question")

		return
	}

	entry := domain.PendingAnswer{
		Answer:    question.FormatAnswer(q),
		Preview:   q.AnswerPreview,
		MessageID: sent.MessageID,
	}

	if err = b.answers.Set(ctx, storage.AnswerKey(chatID, ref), entry, b.cfg.AnswerTTL); err != nil {
		logger.Error().Err(err).Str("ref", ref).Msg("Failed to store pending answer")
	}

	logger.Info().
		Str("ref", ref).
		Int("message_id", sent.MessageID).
		Msg("Question delivered")
}
