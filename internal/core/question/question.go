// Package question loads trivia questions from external sources and formats
// them for chat delivery. Each source is an adapter behind the Loader
// interface; New selects one by its identifier.
package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/fetch"
)

// Source identifies a question source.
type Source string

const (
	// SourceChgkDB is the legacy tag-scraped question archive.
	SourceChgkDB Source = "chgkdb"
	// SourceGotQuestions is the JSON search API with difficulty filtering.
	SourceGotQuestions Source = "gotquestions"
)

// Tier names a difficulty band for sources that support filtering.
type Tier string

const (
	TierRandom Tier = "random"
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// ParseTier maps user input to a known tier. Empty input means no
// preference and maps to TierRandom; anything unrecognized falls back to
// TierMedium rather than failing.
func ParseTier(raw string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierRandom:
		return TierRandom
	case TierEasy:
		return TierEasy
	case TierMedium:
		return TierMedium
	case TierHard:
		return TierHard
	case "":
		return TierRandom
	default:
		return TierMedium
	}
}

// Loader fetches one question from its source.
type Loader interface {
	LoadQuestion(ctx context.Context) (*domain.Question, error)
	Source() Source
}

// New returns the loader for the given source identifier. The tier is only
// meaningful to sources that filter by difficulty; others ignore it.
func New(source string, tier Tier, client *fetch.Client, logger *zerolog.Logger) (Loader, error) {
	switch Source(strings.ToLower(strings.TrimSpace(source))) {
	case SourceChgkDB:
		return newChgkDB(client, logger), nil
	case SourceGotQuestions:
		return newGotQuestions(client, tier, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid sources: %s, %s)",
			errors.ErrUnknownSource, source, SourceChgkDB, SourceGotQuestions)
	}
}
