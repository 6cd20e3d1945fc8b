package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestPlanner/internal/bot"
	"InvestPlanner/internal/model"
	"InvestPlanner/internal/recorder"
)

type fakeChats []bot.Summary

func (f fakeChats) Summaries() []bot.Summary { return f }

type valuationRecorder struct {
	recorder.NoopRecorder
	got []recorder.ValuationEvent
}

func (v *valuationRecorder) RecordValuation(e *recorder.ValuationEvent) error {
	v.got = append(v.got, *e)
	return nil
}

func summaries() fakeChats {
	rec := model.Recommendation{Category: "Flexi-Cap Funds", ExpectedReturn: "10-12%"}
	proj := model.Projection{Category: rec.Category, MonthlyContribution: 6000}
	return fakeChats{
		{ChatID: 1, Valuation: model.Valuation{
			TotalInvested: decimal.NewFromInt(1000), TotalValue: decimal.NewFromInt(1070),
			TotalGain: decimal.NewFromInt(70), Entries: 1,
		}},
		{ChatID: 2, Recommendation: &rec, Projection: &proj},
		{ChatID: 3},
	}
}

func TestRunSnapshotNow_SkipsEmptyPortfolios(t *testing.T) {
	rec := &valuationRecorder{}
	s := NewScheduler(context.Background(), summaries(), nil, rec, zerolog.Nop())

	s.RunSnapshotNow()

	require.Len(t, rec.got, 1)
	assert.Equal(t, int64(1), rec.got[0].ChatID)
	assert.Equal(t, 70.0, rec.got[0].Gain)
}

func TestRunReminderNow_OnlyChatsWithPlan(t *testing.T) {
	var sent []int64
	send := func(_ context.Context, chatID int64, r model.Reply) error {
		assert.Equal(t, model.ReplyReminder, r.Kind)
		assert.Equal(t, 6000.0, r.Amount)
		sent = append(sent, chatID)
		return nil
	}
	s := NewScheduler(context.Background(), summaries(), send, recorder.NewNoopRecorder(), zerolog.Nop())

	s.RunReminderNow()
	assert.Equal(t, []int64{2}, sent)
}

func TestRunReminderNow_SendErrorDoesNotStop(t *testing.T) {
	calls := 0
	send := func(context.Context, int64, model.Reply) error {
		calls++
		return errors.New("offline")
	}
	chats := append(summaries(), summaries()[1])
	s := NewScheduler(context.Background(), chats, send, recorder.NewNoopRecorder(), zerolog.Nop())

	s.RunReminderNow()
	assert.Equal(t, 2, calls)
}

func TestRegisterAll(t *testing.T) {
	s := NewScheduler(context.Background(), fakeChats{}, nil, recorder.NewNoopRecorder(), zerolog.Nop())
	require.NoError(t, s.RegisterAll("0 0 21 * * *", "0 0 9 1 * *"))
	assert.Len(t, s.cron.Entries(), 2)

	s = NewScheduler(context.Background(), fakeChats{}, nil, recorder.NewNoopRecorder(), zerolog.Nop())
	assert.Error(t, s.RegisterAll("not a cron", "0 0 9 1 * *"))
}
