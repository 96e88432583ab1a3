package history

import (
	"math"
	"testing"
	"time"

	"CryptoPulse/internal/model"
)

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil)
	if st.TotalTrades != 0 || st.WinRate != 0 || st.NetProfit != 0 {
		t.Fatalf("expected zero stats, got %+v", st)
	}
}

func TestComputeStats_Mixed(t *testing.T) {
	base := time.Unix(1700000000, 0)
	entries := []model.TradeEntry{
		makeEntry("w1", base, model.OutcomeWin, 170),
		makeEntry("w2", base, model.OutcomeWin, 255),
		makeEntry("l1", base, model.OutcomeLoss, -200),
		makeEntry("p1", base, model.OutcomePending, 0),
	}
	st := ComputeStats(entries)
	if st.TotalTrades != 4 || st.Wins != 2 || st.Losses != 1 || st.Pending != 1 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if math.Abs(st.WinRate-200.0/3.0) > 1e-9 {
		t.Errorf("win rate: expected %.4f, got %.4f", 200.0/3.0, st.WinRate)
	}
	if st.NetProfit != 225 {
		t.Errorf("net profit: expected 225, got %.2f", st.NetProfit)
	}
	if st.AvgProfit != 75 {
		t.Errorf("avg profit: expected 75, got %.2f", st.AvgProfit)
	}
	if st.LargestWin != 255 || st.LargestLoss != -200 {
		t.Errorf("extremes wrong: win %.2f loss %.2f", st.LargestWin, st.LargestLoss)
	}
}

func TestComputeStats_PendingOnly(t *testing.T) {
	entries := []model.TradeEntry{
		makeEntry("p1", time.Now(), model.OutcomePending, 0),
		makeEntry("p2", time.Now(), model.OutcomePending, 0),
	}
	st := ComputeStats(entries)
	if st.TotalTrades != 2 || st.Pending != 2 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if st.WinRate != 0 || st.AvgProfit != 0 {
		t.Fatalf("pending-only should not produce rates: %+v", st)
	}
}

func TestFilterDay_TimezoneBoundary(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+30*60)
	// 18:20 UTC is 23:50 IST the same day; 18:40 UTC is 00:10 IST the next.
	before := time.Date(2024, 1, 15, 18, 20, 0, 0, time.UTC)
	after := time.Date(2024, 1, 15, 18, 40, 0, 0, time.UTC)
	entries := []model.TradeEntry{
		makeEntry("jan15", before, model.OutcomeLoss, -100),
		makeEntry("jan16", after, model.OutcomeLoss, -150),
	}

	day16 := time.Date(2024, 1, 16, 12, 0, 0, 0, loc)
	got := FilterDay(entries, day16, loc)
	if len(got) != 1 || got[0].ID != "jan16" {
		t.Fatalf("expected only jan16 entry, got %v", got)
	}

	day15 := time.Date(2024, 1, 15, 12, 0, 0, 0, loc)
	got = FilterDay(entries, day15, loc)
	if len(got) != 1 || got[0].ID != "jan15" {
		t.Fatalf("expected only jan15 entry, got %v", got)
	}
}

func TestFilterDay_NoMatches(t *testing.T) {
	loc := time.UTC
	entries := []model.TradeEntry{
		makeEntry("a", time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), model.OutcomeWin, 50),
	}
	got := FilterDay(entries, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), loc)
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
