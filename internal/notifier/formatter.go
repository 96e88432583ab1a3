package notifier

import (
	"fmt"
	"strings"
	"time"

	"CryptoPulse/internal/history"
	"CryptoPulse/internal/model"
)

// entryLead is how far ahead of now the quoted entry time sits.
const entryLead = 4 * time.Minute

const clockFormat = "15:04 MST"

// FormatSignal renders the full signal card.
func FormatSignal(sig *model.Signal, a *model.RiskAssessment, loc *time.Location) string {
	entry := time.Now().In(loc).Add(entryLead)
	expiry := entry.Add(time.Duration(sig.DurationMin) * time.Minute)
	entryStr := entry.Format(clockFormat)

	icon := "📈"
	if sig.Direction == model.DirectionDown {
		icon = "📉"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s <b>%s Signal</b>\n\n", icon, sig.Direction, sig.Symbol)
	fmt.Fprintf(&b, "⏰ <b>Entry Time</b>: %s\n", entryStr)
	fmt.Fprintf(&b, "⏱️ <b>Trade Duration</b>: %d minutes\n", sig.DurationMin)
	fmt.Fprintf(&b, "🎯 <b>Expiry Time</b>: %s\n", expiry.Format(clockFormat))
	fmt.Fprintf(&b, "💰 <b>Suggested Amount</b>: ₹%.0f\n", a.SuggestedAmount)
	fmt.Fprintf(&b, "📊 <b>Confidence</b>: %.0f%%\n", sig.Confidence)
	fmt.Fprintf(&b, "📈 <b>Volatility</b>: %s\n", volatilityLabel(sig.Indicators))
	fmt.Fprintf(&b, "⚠️ <b>Risk Level</b>: %s\n\n", a.Level)
	if len(sig.Factors) > 0 {
		b.WriteString("<b>Signal Factors</b>:\n")
		for _, f := range sig.Factors {
			fmt.Fprintf(&b, "• %s: %s (%+.2f)\n", f.Name, f.Commentary, f.Weighted)
		}
		b.WriteString("\n")
	}
	if a.Warning != "" {
		fmt.Fprintf(&b, "⚠️ <b>WARNING</b>: %s\n\n", a.Warning)
	} else {
		b.WriteString("✅ <b>Risk</b>: Acceptable\n\n")
	}
	fmt.Fprintf(&b, "<b>Action</b>: Place %d-minute trade before %s", sig.DurationMin, entryStr)
	return b.String()
}

// FormatHalt renders the stop-trading card shown instead of a signal.
func FormatHalt(a *model.RiskAssessment) string {
	var b strings.Builder
	b.WriteString("🛑 <b>Trading Halted</b>\n\n")
	fmt.Fprintf(&b, "⚠️ %s\n\n", a.Warning)
	fmt.Fprintf(&b, "📉 <b>Loss Streak</b>: %d\n", a.LossStreak)
	fmt.Fprintf(&b, "💸 <b>Today's Losses</b>: ₹%.0f\n\n", a.DailyLoss)
	b.WriteString("Take a break and come back tomorrow.")
	return b.String()
}

// FormatHistory renders recent trades, newest first.
func FormatHistory(entries []model.TradeEntry, loc *time.Location) string {
	if len(entries) == 0 {
		return "📊 No trade history yet."
	}
	var b strings.Builder
	b.WriteString("📈 <b>Recent Trades</b>:\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s | %s | ₹%.0f",
			outcomeIcon(e.Outcome), e.Timestamp.In(loc).Format("02 Jan 15:04"), e.Direction, e.Amount)
		if e.Outcome != model.OutcomePending {
			fmt.Fprintf(&b, " | %+.0f", e.ProfitLoss)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatStats renders aggregate performance.
func FormatStats(st history.Stats) string {
	if st.TotalTrades == 0 {
		return "📊 No trades recorded yet."
	}
	var b strings.Builder
	b.WriteString("📊 <b>Performance</b>\n\n")
	fmt.Fprintf(&b, "Total: %d | Wins: %d | Losses: %d | Pending: %d\n",
		st.TotalTrades, st.Wins, st.Losses, st.Pending)
	fmt.Fprintf(&b, "Win Rate: %.1f%%\n", st.WinRate)
	fmt.Fprintf(&b, "Net P/L: ₹%+.0f (avg %+.0f per resolved trade)\n", st.NetProfit, st.AvgProfit)
	fmt.Fprintf(&b, "Best: ₹%+.0f | Worst: ₹%+.0f", st.LargestWin, st.LargestLoss)
	return b.String()
}

// FormatDailySummary renders the end-of-day report.
func FormatDailySummary(day time.Time, st history.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌙 <b>Daily Summary</b> %s\n\n", day.Format("02 Jan 2006"))
	if st.TotalTrades == 0 {
		b.WriteString("No trades today.")
		return b.String()
	}
	fmt.Fprintf(&b, "Signals: %d | Wins: %d | Losses: %d\n", st.TotalTrades, st.Wins, st.Losses)
	if st.Wins+st.Losses > 0 {
		fmt.Fprintf(&b, "Win Rate: %.1f%%\n", st.WinRate)
	}
	fmt.Fprintf(&b, "Net P/L: ₹%+.0f", st.NetProfit)
	return b.String()
}

// FormatWelcome renders the /start reply.
func FormatWelcome(symbol string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 <b>%s Signal Bot</b>\n\n", symbol)
	fmt.Fprintf(&b, "Welcome! I generate trading signals for %s with risk-managed stake suggestions.\n\n", symbol)
	b.WriteString("<b>Commands</b>:\n")
	b.WriteString(commandList)
	b.WriteString("\n<b>Important</b>: Trading involves risk. Only trade what you can afford to lose.")
	return b.String()
}

// FormatHelp renders the /help reply.
func FormatHelp() string {
	var b strings.Builder
	b.WriteString("📖 <b>How to use this bot</b>\n\n")
	b.WriteString("Each signal includes direction, entry and expiry times, a suggested stake and a confidence score.\n")
	b.WriteString("Report outcomes with /record so stake sizing can react to your results.\n\n")
	b.WriteString("<b>Risk Management</b>:\n")
	b.WriteString("• Stakes scale with confidence and shrink after losses\n")
	b.WriteString("• Trading halts after repeated losses or when the daily loss cap is hit\n\n")
	b.WriteString("<b>Commands</b>:\n")
	b.WriteString(commandList)
	return strings.TrimRight(b.String(), "\n")
}

const commandList = `/signal - Get a single trading signal
/batch - Run a signal batch
/history - View recent trades
/stats - Performance statistics
/record win|loss <amount> - Record a trade outcome
/export - Export history to CSV
/help - Show this help
`

func outcomeIcon(o model.Outcome) string {
	switch o {
	case model.OutcomeWin:
		return "✅"
	case model.OutcomeLoss:
		return "❌"
	default:
		return "⏳"
	}
}

func volatilityLabel(ind *model.IndicatorSet) string {
	if ind == nil {
		return "Unknown"
	}
	switch {
	case ind.Volatility < 0.3:
		return "Low"
	case ind.Volatility < 0.7:
		return "Medium"
	default:
		return "High"
	}
}
