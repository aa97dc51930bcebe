package question

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/fetch"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/normalize"
)

const (
	chgkDBBaseURL    = "https://db.chgk.info"
	chgkDBRandomPath = "/question/random"

	chgkLabelQuestion = "Вопрос"
	chgkLabelAnswer   = "Ответ:"
	chgkLabelComment  = "Комментарий:"
)

// chgkLabelPattern matches the bold section labels the archive uses to
// delimit question parts. Content runs from a label to the start of the next.
var chgkLabelPattern = regexp.MustCompile(`<strong>([^<]+)</strong>`)

// chgkDB scrapes a random question from the db.chgk.info archive. The page
// arrives in Windows-1251 and is decoded before section scanning.
type chgkDB struct {
	client  *fetch.Client
	logger  *zerolog.Logger
	baseURL string
}

func newChgkDB(client *fetch.Client, logger *zerolog.Logger) *chgkDB {
	return &chgkDB{
		client:  client,
		logger:  logger,
		baseURL: chgkDBBaseURL,
	}
}

func (c *chgkDB) Source() Source { return SourceChgkDB }

func (c *chgkDB) LoadQuestion(ctx context.Context) (*domain.Question, error) {
	raw, err := c.client.Fetch(ctx, c.baseURL+chgkDBRandomPath)
	if err != nil {
		return nil, fmt.Errorf("fetch random question: %w", err)
	}

	page, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode windows-1251: %w", errors.ErrParseFailed, err)
	}

	var questionRaw, answerRaw, commentRaw string

	for _, s := range splitSections(string(page)) {
		label := strings.TrimSpace(s.label)

		switch {
		case strings.HasPrefix(label, chgkLabelQuestion):
			if questionRaw == "" {
				questionRaw = s.content
			}
		case label == chgkLabelAnswer:
			if answerRaw == "" {
				answerRaw = s.content
			}
		case label == chgkLabelComment:
			if commentRaw == "" {
				commentRaw = s.content
			}
		}
	}

	if questionRaw == "" {
		return nil, fmt.Errorf("%w: no question section in page", errors.ErrParseFailed)
	}

	if answerRaw == "" {
		return nil, fmt.Errorf("%w: no answer section in page", errors.ErrParseFailed)
	}

	q := &domain.Question{
		Text:            normalize.Clean(questionRaw, normalize.CleanOptions{RemoveImages: true}),
		Answer:          normalize.Clean(answerRaw, normalize.CleanOptions{StopAtLabel: true}),
		Description:     normalize.Clean(commentRaw, normalize.CleanOptions{StopAtLabel: true}),
		QuestionPreview: normalize.ExtractImages(questionRaw, c.baseURL),
	}

	c.logger.Debug().
		Int("question_len", len(q.Text)).
		Int("images", len(q.QuestionPreview)).
		Bool("has_comment", q.Description != "").
		Msg("Loaded question from archive")

	return q, nil
}

type section struct {
	label   string
	content string
}

// splitSections slices the page into labeled spans. Each span's content ends
// where the next label begins, so trailing sections never leak into the
// preceding field.
func splitSections(page string) []section {
	matches := chgkLabelPattern.FindAllStringSubmatchIndex(page, -1)
	sections := make([]section, 0, len(matches))

	for i, m := range matches {
		end := len(page)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		sections = append(sections, section{
			label:   page[m[2]:m[3]],
			content: page[m[1]:end],
		})
	}

	return sections
}
