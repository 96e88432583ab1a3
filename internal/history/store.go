package history

import "CryptoPulse/internal/model"

// Store persists pending and resolved trade entries. Recent returns
// entries newest-first.
type Store interface {
	Append(entry model.TradeEntry) error
	Recent(n int) ([]model.TradeEntry, error)
	Close() error
}
