package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CryptoPulse/internal/model"
)

// SQLiteStore persists trade history in a local SQLite database with WAL
// enabled. Writes are serialized through a mutex since the pure-Go driver
// allows a single writer at a time.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trade_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trade_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		direction TEXT,
		confidence REAL,
		amount REAL,
		duration_min INTEGER,
		outcome TEXT NOT NULL,
		profit_loss REAL NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_trade_history_timestamp ON trade_history(timestamp);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(entry model.TradeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`INSERT INTO trade_history (trade_id, timestamp, direction, confidence, amount, duration_min, outcome, profit_loss)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp.Unix(),
		string(entry.Direction),
		entry.Confidence,
		entry.Amount,
		entry.DurationMin,
		string(entry.Outcome),
		entry.ProfitLoss,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first. Ties on the second-level
// timestamp fall back to insertion order.
func (s *SQLiteStore) Recent(n int) ([]model.TradeEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		`SELECT trade_id, timestamp, direction, confidence, amount, duration_min, outcome, profit_loss
		 FROM trade_history ORDER BY timestamp DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []model.TradeEntry
	for rows.Next() {
		var e model.TradeEntry
		var ts int64
		var direction, outcome string
		if err := rows.Scan(&e.ID, &ts, &direction, &e.Confidence, &e.Amount, &e.DurationMin, &outcome, &e.ProfitLoss); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		e.Direction = model.Direction(direction)
		e.Outcome = model.Outcome(outcome)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
