package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/question"
)

func TestParseQuizArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          string
		defaultSource string
		wantSource    string
		wantTier      question.Tier
	}{
		{
			name:          "no args",
			args:          "",
			defaultSource: "gotquestions",
			wantSource:    "gotquestions",
			wantTier:      question.TierRandom,
		},
		{
			name:          "tier only",
			args:          "easy",
			defaultSource: "gotquestions",
			wantSource:    "gotquestions",
			wantTier:      question.TierEasy,
		},
		{
			name:          "source only",
			args:          "chgkdb",
			defaultSource: "gotquestions",
			wantSource:    "chgkdb",
			wantTier:      question.TierRandom,
		},
		{
			name:          "source then tier",
			args:          "chgkdb hard",
			defaultSource: "gotquestions",
			wantSource:    "chgkdb",
			wantTier:      question.TierHard,
		},
		{
			name:          "tier then source",
			args:          "hard chgkdb",
			defaultSource: "gotquestions",
			wantSource:    "chgkdb",
			wantTier:      question.TierHard,
		},
		{
			name:          "mixed case",
			args:          "GotQuestions Medium",
			defaultSource: "chgkdb",
			wantSource:    "gotquestions",
			wantTier:      question.TierMedium,
		},
		{
			name:          "unknown word becomes medium tier",
			args:          "nightmare",
			defaultSource: "gotquestions",
			wantSource:    "gotquestions",
			wantTier:      question.TierMedium,
		},
		{
			name:          "default source preserved",
			args:          "easy",
			defaultSource: "chgkdb",
			wantSource:    "chgkdb",
			wantTier:      question.TierEasy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, tier := parseQuizArgs(tt.args, tt.defaultSource)

			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}

			if tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", tier, tt.wantTier)
			}
		})
	}
}

func TestQuestionRef(t *testing.T) {
	now := time.Unix(1700000000, 0)

	withID := &domain.Question{ID: 123}
	require.Equal(t, "q123", questionRef(withID, now))

	anonymous := &domain.Question{}
	require.Equal(t, "t1700000000", questionRef(anonymous, now))
}

func TestRefQuestionID(t *testing.T) {
	tests := []struct {
		ref    string
		wantID int64
		wantOK bool
	}{
		{ref: "q123", wantID: 123, wantOK: true},
		{ref: "q1", wantID: 1, wantOK: true},
		{ref: "t1700000000"},
		{ref: "q"},
		{ref: "qabc"},
		{ref: "q-5"},
		{ref: ""},
	}

	for _, tt := range tests {
		id, ok := refQuestionID(tt.ref)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("refQuestionID(%q) = (%d, %v), want (%d, %v)", tt.ref, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
