package storage

import (
	"context"
	"sync"
	"time"

	"github.com/lueurxax/telegram-quiz-bot/internal/core/domain"
	"github.com/lueurxax/telegram-quiz-bot/internal/core/errors"
)

// memoryAnswers is a process-local Answers implementation. Expired entries
// are reported as not found; they are only evicted on overwrite or delete.
type memoryAnswers struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	value     domain.PendingAnswer
	expiresAt time.Time
}

func NewMemory() Answers {
	return &memoryAnswers{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryAnswers) Set(_ context.Context, key string, entry domain.PendingAnswer, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		value:     entry,
		expiresAt: m.now().Add(ttl),
	}

	return nil
}

func (m *memoryAnswers) Get(_ context.Context, key string) (domain.PendingAnswer, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(entry.expiresAt) {
		return domain.PendingAnswer{}, errors.ErrCacheNotFound
	}

	return entry.value, nil
}

func (m *memoryAnswers) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)

	return nil
}
