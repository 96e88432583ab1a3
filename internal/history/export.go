package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"CryptoPulse/internal/model"
)

// WriteCSV dumps entries to a CSV file for offline analysis. Entries are
// expected newest-first as returned by Store.Recent; rows are written
// oldest first.
func WriteCSV(path string, entries []model.TradeEntry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"id", "timestamp", "direction", "confidence", "amount", "duration_min", "outcome", "profit_loss"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		record := []string{
			e.ID,
			e.Timestamp.Format(time.RFC3339),
			string(e.Direction),
			strconv.FormatFloat(e.Confidence, 'f', 2, 64),
			strconv.FormatFloat(e.Amount, 'f', 0, 64),
			strconv.Itoa(e.DurationMin),
			string(e.Outcome),
			strconv.FormatFloat(e.ProfitLoss, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}
