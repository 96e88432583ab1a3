package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"CryptoPulse/internal/model"
)

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := NewJSONStore(path, 100)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	base := time.Unix(1700000000, 0)
	s.Append(makeEntry("a", base, model.OutcomeLoss, -200))
	s.Append(makeEntry("b", base.Add(time.Minute), model.OutcomeWin, 170))
	s.Close()

	reopened, err := NewJSONStore(path, 100)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, err := reopened.Recent(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("expected newest-first b,a; got %s,%s", got[0].ID, got[1].ID)
	}
	if got[0].Outcome != model.OutcomeWin || got[0].ProfitLoss != 170 {
		t.Errorf("win entry corrupted: %+v", got[0])
	}
	if got[1].Timestamp.Unix() != base.Unix() {
		t.Errorf("timestamp not preserved: %v", got[1].Timestamp)
	}
}

func TestJSONStore_TrimsOnAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, _ := NewJSONStore(path, 2)
	base := time.Unix(1700000000, 0)
	for i, id := range []string{"a", "b", "c", "d"} {
		s.Append(makeEntry(id, base.Add(time.Duration(i)*time.Minute), model.OutcomePending, 0))
	}
	got, _ := s.Recent(10)
	if len(got) != 2 || got[0].ID != "d" || got[1].ID != "c" {
		t.Fatalf("expected d,c after trim, got %v", got)
	}

	// A tighter cap on reload trims the persisted file too.
	reopened, err := NewJSONStore(path, 1)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, _ = reopened.Recent(10)
	if len(got) != 1 || got[0].ID != "d" {
		t.Fatalf("expected only d after reload with cap 1, got %v", got)
	}
}

func TestJSONStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.json")
	s, err := NewJSONStore(path, 10)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if err := s.Append(makeEntry("a", time.Now(), model.OutcomePending, 0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("history file not written: %v", err)
	}
}
