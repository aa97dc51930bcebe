package question

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/fetch"
)

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()

	return &logger
}

func TestNew(t *testing.T) {
	client := fetch.NewClient(100, 5*time.Second)

	tests := []struct {
		name       string
		source     string
		wantSource Source
	}{
		{
			name:       "legacy archive",
			source:     "chgkdb",
			wantSource: SourceChgkDB,
		},
		{
			name:       "search api",
			source:     "gotquestions",
			wantSource: SourceGotQuestions,
		},
		{
			name:       "identifier is case and space insensitive",
			source:     " GotQuestions ",
			wantSource: SourceGotQuestions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := New(tt.source, TierMedium, client, testLogger())

			require.NoError(t, err)
			require.Equal(t, tt.wantSource, loader.Source())
		})
	}
}

func TestNewUnknownSource(t *testing.T) {
	client := fetch.NewClient(100, 5*time.Second)

	_, err := New("unknown-source", TierMedium, client, testLogger())
	if !errors.Is(err, errors.ErrUnknownSource) {
		t.Fatalf("New() error = %v, want ErrUnknownSource", err)
	}

	// The message names the valid identifiers so misconfiguration is obvious.
	for _, id := range []string{"chgkdb", "gotquestions"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error %q does not mention source %q", err.Error(), id)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		raw  string
		want Tier
	}{
		{raw: "random", want: TierRandom},
		{raw: "easy", want: TierEasy},
		{raw: "medium", want: TierMedium},
		{raw: "hard", want: TierHard},
		{raw: "HARD", want: TierHard},
		{raw: " Easy ", want: TierEasy},
		{raw: "", want: TierRandom},
		{raw: "nightmare", want: TierMedium},
	}

	for _, tt := range tests {
		t.Run("input "+tt.raw, func(t *testing.T) {
			if got := ParseTier(tt.raw); got != tt.want {
				t.Errorf("ParseTier(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
