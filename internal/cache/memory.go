package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/odenirdev/feedpulse/internal/domain"
)

// sweepThreshold bounds how many entries accumulate before a Set pass evicts
// everything expired.
const sweepThreshold = 1024

type memoryEntry struct {
	report    *domain.Report
	expiresAt time.Time
}

// MemoryStore is the single-instance report cache used when no Redis URL is
// configured. Expiry is lazy on Get plus an occasional sweep on Set.
type MemoryStore struct {
	clock   clockwork.Clock
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		clock:   clock,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*domain.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if s.clock.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, false, nil
	}
	return entry.report, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, report *domain.Report, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= sweepThreshold {
		s.sweepLocked()
	}

	s.entries[key] = memoryEntry{
		report:    report,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) sweepLocked() {
	now := s.clock.Now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
