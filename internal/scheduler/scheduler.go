package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"InvestPlanner/internal/bot"
	"InvestPlanner/internal/model"
	"InvestPlanner/internal/recorder"
)

// Chats is the view of the bot the jobs need.
type Chats interface {
	Summaries() []bot.Summary
}

// SendFunc delivers a reply to a chat.
type SendFunc func(ctx context.Context, chatID int64, r model.Reply) error

// Scheduler runs the periodic jobs: portfolio snapshots and monthly SIP reminders.
type Scheduler struct {
	cron     *cron.Cron
	chats    Chats
	send     SendFunc
	recorder recorder.Recorder
	ctx      context.Context
	log      zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, chats Chats, send SendFunc, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		chats:    chats,
		send:     send,
		recorder: rec,
		ctx:      ctx,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the snapshot and reminder jobs.
func (s *Scheduler) RegisterAll(snapshotCron, reminderCron string) error {
	if _, err := s.cron.AddFunc(snapshotCron, s.RunSnapshotNow); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	if _, err := s.cron.AddFunc(reminderCron, s.RunReminderNow); err != nil {
		return fmt.Errorf("register reminder task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunSnapshotNow journals the valuation of every chat that holds something.
func (s *Scheduler) RunSnapshotNow() {
	recorded := 0
	for _, sum := range s.chats.Summaries() {
		v := sum.Valuation
		if v.Entries == 0 {
			continue
		}
		if err := s.recorder.RecordValuation(&recorder.ValuationEvent{
			ChatID:   sum.ChatID,
			Invested: v.TotalInvested.InexactFloat64(),
			Value:    v.TotalValue.InexactFloat64(),
			Gain:     v.TotalGain.InexactFloat64(),
			Entries:  v.Entries,
		}); err != nil {
			s.log.Error().Err(err).Int64("chat", sum.ChatID).Msg("record valuation")
			continue
		}
		recorded++
	}
	s.log.Info().Int("chats", recorded).Msg("portfolio snapshot done")
}

// RunReminderNow sends the monthly SIP reminder to every chat with a completed plan.
func (s *Scheduler) RunReminderNow() {
	sent := 0
	for _, sum := range s.chats.Summaries() {
		r, ok := bot.Reminder(sum)
		if !ok {
			continue
		}
		if err := s.send(s.ctx, sum.ChatID, r); err != nil {
			s.log.Error().Err(err).Int64("chat", sum.ChatID).Msg("send reminder")
			continue
		}
		sent++
	}
	s.log.Info().Int("chats", sent).Msg("sip reminders sent")
}
