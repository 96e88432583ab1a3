package history

import (
	"sync"

	"CryptoPulse/internal/model"
)

// MemoryStore keeps trade history in process memory. It backs the demo
// binary and serves as the last-resort fallback when neither SQLite nor
// a JSON file is configured.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []model.TradeEntry
	maxEntries int
}

func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &MemoryStore{maxEntries: maxEntries}
}

func (s *MemoryStore) Append(entry model.TradeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
	return nil
}

func (s *MemoryStore) Recent(n int) ([]model.TradeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || len(s.entries) == 0 {
		return nil, nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]model.TradeEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
