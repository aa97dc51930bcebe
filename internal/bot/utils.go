package bot

import (
	"strconv"
	"strings"
	"time"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/question"
)

// parseQuizArgs interprets the arguments of /quiz in any order: a recognized
// source identifier selects the source, anything else is read as a tier.
func parseQuizArgs(args, defaultSource string) (string, question.Tier) {
	source := defaultSource
	tier := question.TierRandom

	for _, arg := range strings.Fields(args) {
		normalized := strings.ToLower(arg)
		switch question.Source(normalized) {
		case question.SourceChgkDB, question.SourceGotQuestions:
			source = normalized
		default:
			tier = question.ParseTier(normalized)
		}
	}

	return source, tier
}

// questionRef builds the token that ties a reveal button to its cached
// answer. Sources with stable question IDs produce "q<id>", sources without
// IDs fall back to the delivery timestamp.
func questionRef(q *domain.Question, now time.Time) string {
	if q.ID > 0 {
		return "q" + strconv.FormatInt(q.ID, 10)
	}

	return "t" + strconv.FormatInt(now.Unix(), 10)
}

// refQuestionID extracts the source question ID from an ID-scheme reference.
func refQuestionID(ref string) (int64, bool) {
	raw, ok := strings.CutPrefix(ref, "q")
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
