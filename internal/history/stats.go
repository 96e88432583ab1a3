package history

import (
	"time"

	"CryptoPulse/internal/model"
)

// Stats aggregates trade outcomes for the /stats command and the daily
// summary.
type Stats struct {
	TotalTrades int
	Wins        int
	Losses      int
	Pending     int
	WinRate     float64 // percent of resolved trades won
	NetProfit   float64
	AvgProfit   float64 // mean profit/loss per resolved trade
	LargestWin  float64
	LargestLoss float64
}

// ComputeStats reduces entries into aggregate figures. Pending entries
// count toward the total but are excluded from the win rate and average.
func ComputeStats(entries []model.TradeEntry) Stats {
	var st Stats
	st.TotalTrades = len(entries)
	for _, e := range entries {
		switch e.Outcome {
		case model.OutcomeWin:
			st.Wins++
			if e.ProfitLoss > st.LargestWin {
				st.LargestWin = e.ProfitLoss
			}
		case model.OutcomeLoss:
			st.Losses++
			if e.ProfitLoss < st.LargestLoss {
				st.LargestLoss = e.ProfitLoss
			}
		default:
			st.Pending++
		}
		st.NetProfit += e.ProfitLoss
	}
	resolved := st.Wins + st.Losses
	if resolved > 0 {
		st.WinRate = float64(st.Wins) / float64(resolved) * 100
		st.AvgProfit = st.NetProfit / float64(resolved)
	}
	return st
}

// FilterDay keeps the entries whose timestamp falls on the same calendar
// day as day, evaluated in loc.
func FilterDay(entries []model.TradeEntry, day time.Time, loc *time.Location) []model.TradeEntry {
	y, m, d := day.In(loc).Date()
	var out []model.TradeEntry
	for _, e := range entries {
		ey, em, ed := e.Timestamp.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
