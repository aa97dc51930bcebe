// Package bot turns Telegram updates into quiz interactions: commands load
// and deliver questions, inline button presses reveal the cached answers.
// Updates arrive either from the polling loop in Run or from the webhook
// server, both funnel into HandleUpdate.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/fetch"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/config"
	"github.com/lueurxax/telegram-quiz-bot/internal/platform/markup"
	"github.com/lueurxax/telegram-quiz-bot/internal/storage"
)

const pollTimeoutSeconds = 60

// Bot handles Telegram updates in both polling and webhook modes.
type Bot struct {
	cfg     *config.Config
	api     *tgbotapi.BotAPI
	fetcher *fetch.Client
	answers storage.Answers
	logger  *zerolog.Logger
}

// New creates a Bot and authorizes against the Telegram API.
func New(cfg *config.Config, answers storage.Answers, logger *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating bot API: %w", err)
	}

	return &Bot{
		cfg:     cfg,
		api:     api,
		fetcher: fetch.NewClient(cfg.SourceRPS, cfg.SourceTimeout),
		answers: answers,
		logger:  logger,
	}, nil
}

// Run polls Telegram for updates until the context is canceled. Webhook
// deployments skip Run and feed updates through HandleUpdate instead.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("Bot polling for updates")

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("bot run context canceled: %w", ctx.Err())
		case update := <-updates:
			b.HandleUpdate(ctx, update)
		}
	}
}

// sendPlain delivers a service message without any parse mode.
func (b *Bot) sendPlain(logger *zerolog.Logger, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logger.Error().Err(err).Msg("Failed to send message")
	}
}

// sendMarkdown delivers formatted text, falling back to plain text when
// Telegram rejects the MarkdownV2 payload. The keyboard survives the
// fallback so a reveal button is never lost.
func (b *Bot) sendMarkdown(logger *zerolog.Logger, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}

	sent, err := b.api.Send(msg)
	if err == nil {
		return sent, nil
	}

	logger.Warn().Err(err).Msg("MarkdownV2 send failed, falling back to plain text")

	plain := tgbotapi.NewMessage(chatID, markup.Unescape(text))
	if keyboard != nil {
		plain.ReplyMarkup = *keyboard
	}

	return b.api.Send(plain)
}

// sendImages pushes preview images into the chat before the related text.
func (b *Bot) sendImages(logger *zerolog.Logger, chatID int64, urls []string) {
	switch len(urls) {
	case 0:
		return
	case 1:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(urls[0]))
		if _, err := b.api.Send(photo); err != nil {
			logger.Warn().Err(err).Str("url", urls[0]).Msg("Failed to send image")
		}
	default:
		media := make([]interface{}, 0, len(urls))
		for _, u := range urls {
			media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(u)))
		}

		if _, err := b.api.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media)); err != nil {
			logger.Warn().Err(err).Int("images", len(urls)).Msg("Failed to send image group")
		}
	}
}

// removeRevealButton clears the inline keyboard from a served question once
// its answer is out.
func (b *Bot) removeRevealButton(logger *zerolog.Logger, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := b.api.Request(edit); err != nil {
		logger.Debug().Err(err).Int("message_id", messageID).Msg("Failed to remove reveal button")
	}
}
