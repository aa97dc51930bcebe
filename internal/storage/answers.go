// Package storage holds the pending-answer cache behind a small key-value
// interface. Deployments use Redis; tests and single-process runs can use the
// in-memory implementation.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
)

const answerKeyPrefix = "answer"

// Answers stores one entry per outstanding reveal button. Entries expire
// after their TTL and are deleted on first successful retrieval.
type Answers interface {
	Set(ctx context.Context, key string, entry domain.PendingAnswer, ttl time.Duration) error
	Get(ctx context.Context, key string) (domain.PendingAnswer, error)
	Del(ctx context.Context, key string) error
}

// AnswerKey builds the cache key for a chat's pending answer. The ref is
// "q<id>" when the source assigns stable question identifiers, "t<unix>"
// otherwise, which keeps keys traceable in logs and deterministic per
// question where possible.
func AnswerKey(chatID int64, ref string) string {
	return fmt.Sprintf("%s:%d:%s", answerKeyPrefix, chatID, ref)
}
