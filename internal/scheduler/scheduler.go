package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/engine"
	"CryptoPulse/internal/history"
	"CryptoPulse/internal/metrics"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/notifier"
)

// Sender delivers rendered messages. *notifier.TelegramNotifier
// satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, attempts int) error
}

const (
	sendAttempts = 3
	historyShown = 5
	recordScan   = 50
	statsWindow  = 500
	exportWindow = 1000
)

// Scheduler owns the cron jobs and the command dispatch. Every bot
// surface funnels into the shared engine.
type Scheduler struct {
	cron         *cron.Cron
	engine       *engine.Engine
	store        history.Store
	sender       Sender
	cfg          *config.Config
	loc          *time.Location
	ctx          context.Context
	log          zerolog.Logger
	exportDir    string
	batchRunning atomic.Bool
}

func NewScheduler(ctx context.Context, eng *engine.Engine, store history.Store, sender Sender, cfg *config.Config, loc *time.Location, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		engine:    eng,
		store:     store,
		sender:    sender,
		cfg:       cfg,
		loc:       loc,
		ctx:       ctx,
		log:       log.With().Str("component", "scheduler").Logger(),
		exportDir: filepath.Join("data", "exports"),
	}
}

// RegisterAll wires the cron jobs. The auto-signal job only runs when an
// expression is configured.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule.SummaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary job: %w", err)
	}
	if spec := s.cfg.Schedule.SignalCron; spec != "" {
		if _, err := s.cron.AddFunc(spec, s.signalTask); err != nil {
			return fmt.Errorf("register signal job: %w", err)
		}
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("cron jobs started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("cron jobs stopped")
}

// HandleCommand dispatches one incoming message and returns the reply.
// Plain chatter gets no reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/start":
		return notifier.FormatWelcome(s.cfg.Market.Symbol)
	case "/help":
		return notifier.FormatHelp()
	case "/signal":
		return s.signalReply()
	case "/batch":
		return s.startBatch()
	case "/history":
		return s.historyReply()
	case "/stats":
		return s.statsReply()
	case "/record":
		return s.recordReply(fields[1:])
	case "/export":
		return s.exportReply()
	default:
		if strings.HasPrefix(fields[0], "/") {
			return "❓ Unknown command. Try /help."
		}
		return ""
	}
}

func (s *Scheduler) signalReply() string {
	res, err := s.engine.Generate()
	if err != nil {
		s.log.Error().Err(err).Msg("signal generation failed")
		return "❌ Signal unavailable right now. Please try again."
	}
	if !res.Assessment.Acceptable {
		return notifier.FormatHalt(res.Assessment)
	}
	return notifier.FormatSignal(res.Signal, res.Assessment, s.loc)
}

func (s *Scheduler) startBatch() string {
	if !s.batchRunning.CompareAndSwap(false, true) {
		return "⏳ A batch is already running."
	}
	metrics.BatchesTotal.Inc()
	go s.batchTask()
	return fmt.Sprintf("🔄 Generating %d signals, one every %ds...",
		s.cfg.Trading.BatchSize, s.cfg.Trading.BatchDelaySeconds)
}

// batchTask sends one signal per delay tick. A risk halt stops the whole
// batch after the halt card is delivered.
func (s *Scheduler) batchTask() {
	defer s.batchRunning.Store(false)
	delay := time.Duration(s.cfg.Trading.BatchDelaySeconds) * time.Second
	for i := 0; i < s.cfg.Trading.BatchSize; i++ {
		if i > 0 {
			select {
			case <-s.ctx.Done():
				s.log.Info().Msg("batch cancelled")
				return
			case <-time.After(delay):
			}
		}
		res, err := s.engine.Generate()
		if err != nil {
			s.log.Warn().Err(err).Int("index", i).Msg("batch signal failed")
			continue
		}
		if !res.Assessment.Acceptable {
			s.trySend(notifier.FormatHalt(res.Assessment))
			s.log.Warn().Msg("risk checks halted the batch")
			return
		}
		s.trySend(notifier.FormatSignal(res.Signal, res.Assessment, s.loc))
	}
	s.log.Info().Int("count", s.cfg.Trading.BatchSize).Msg("batch complete")
}

func (s *Scheduler) historyReply() string {
	entries, err := s.store.Recent(historyShown)
	if err != nil {
		s.log.Error().Err(err).Msg("history read failed")
		return "❌ History unavailable right now."
	}
	return notifier.FormatHistory(entries, s.loc)
}

func (s *Scheduler) statsReply() string {
	entries, err := s.store.Recent(statsWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("history read failed")
		return "❌ History unavailable right now."
	}
	return notifier.FormatStats(history.ComputeStats(entries))
}

// recordReply appends a resolved entry for the most recent pending
// signal. The log is append-only; nothing is edited in place.
func (s *Scheduler) recordReply(args []string) string {
	if len(args) != 2 {
		return "Usage: /record win|loss <amount>"
	}
	var outcome model.Outcome
	switch strings.ToLower(args[0]) {
	case "win":
		outcome = model.OutcomeWin
	case "loss":
		outcome = model.OutcomeLoss
	default:
		return "Usage: /record win|loss <amount>"
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return "❌ Amount must be a positive number."
	}
	pnl := amount
	if outcome == model.OutcomeLoss {
		pnl = -amount
	}

	entry := model.TradeEntry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Outcome:    outcome,
		ProfitLoss: pnl,
	}
	// Carry the signal details over from the trade being resolved.
	if recent, err := s.store.Recent(recordScan); err == nil {
		for _, e := range recent {
			if e.Outcome == model.OutcomePending {
				entry.Direction = e.Direction
				entry.Confidence = e.Confidence
				entry.Amount = e.Amount
				entry.DurationMin = e.DurationMin
				break
			}
		}
	}
	if err := s.store.Append(entry); err != nil {
		s.log.Error().Err(err).Msg("record append failed")
		return "❌ Could not record the trade."
	}
	metrics.TradesTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == model.OutcomeWin {
		return fmt.Sprintf("✅ Recorded win of ₹%.0f.", amount)
	}
	return fmt.Sprintf("📝 Recorded loss of ₹%.0f.", amount)
}

func (s *Scheduler) exportReply() string {
	entries, err := s.store.Recent(exportWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("history read failed")
		return "❌ History unavailable right now."
	}
	if len(entries) == 0 {
		return "📊 Nothing to export yet."
	}
	name := fmt.Sprintf("trades-%s.csv", time.Now().In(s.loc).Format("20060102-150405"))
	path := filepath.Join(s.exportDir, name)
	if err := history.WriteCSV(path, entries); err != nil {
		s.log.Error().Err(err).Msg("export failed")
		return "❌ Export failed."
	}
	return fmt.Sprintf("📁 Exported %d trades to %s", len(entries), path)
}

func (s *Scheduler) summaryTask() {
	entries, err := s.store.Recent(statsWindow)
	if err != nil {
		s.log.Error().Err(err).Msg("summary aborted, history unavailable")
		return
	}
	now := time.Now().In(s.loc)
	today := history.FilterDay(entries, now, s.loc)
	s.trySend(notifier.FormatDailySummary(now, history.ComputeStats(today)))
}

func (s *Scheduler) signalTask() {
	if msg := s.signalReply(); msg != "" {
		s.trySend(msg)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.sender.SendWithRetry(s.ctx, text, sendAttempts); err != nil {
		metrics.SendFailures.Inc()
		s.log.Error().Err(err).Msg("delivery failed")
	}
}
