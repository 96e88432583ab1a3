package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"CryptoPulse/internal/model"
)

// JSONStore persists trade history as an indented JSON array. Existing
// entries are loaded on startup and the whole file is rewritten on every
// append, trimmed to maxEntries.
type JSONStore struct {
	mu         sync.Mutex
	path       string
	entries    []model.TradeEntry
	maxEntries int
}

func NewJSONStore(path string, maxEntries int) (*JSONStore, error) {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	s := &JSONStore{path: path, maxEntries: maxEntries}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read history: %w", err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return fmt.Errorf("parse history: %w", err)
	}
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
	return nil
}

func (s *JSONStore) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

func (s *JSONStore) Append(entry model.TradeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
	return s.save()
}

func (s *JSONStore) Recent(n int) ([]model.TradeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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

func (s *JSONStore) Close() error { return nil }
