package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"InvestPlanner/internal/model"
	"InvestPlanner/internal/notifier"
	"InvestPlanner/internal/scheduler"
)

func newBotCmd(opts *options) *cobra.Command {
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Serve the planner as a Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, false)
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.cfg.ValidateBot(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			a.log.Info().Msg("planner bot starting")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			tn := notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Proxy, a.log)
			send := func(ctx context.Context, chatID int64, r model.Reply) error {
				return tn.SendWithRetry(ctx, chatID, notifier.FormatReply(r), a.cfg.Telegram.MaxRetries)
			}

			d := a.dispatcher()

			sched := scheduler.NewScheduler(ctx, d, send, a.rec, a.log)
			if err := sched.RegisterAll(a.cfg.Schedule.SnapshotCron, a.cfg.Schedule.ReminderCron); err != nil {
				return fmt.Errorf("register cron tasks: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			polling := make(chan struct{})
			go func() {
				defer close(polling)
				tn.StartPolling(ctx, func(ctx context.Context, u notifier.Update) {
					d.Handle(u.ChatID, u.Text, func(r model.Reply) {
						if err := send(ctx, u.ChatID, r); err != nil {
							a.log.Error().Err(err).Int64("chat", u.ChatID).Str("kind", string(r.Kind)).Msg("send reply")
						}
					})
				})
			}()
			a.log.Info().Msg("telegram polling started")

			if runOnStart {
				a.log.Info().Msg("run-on-start enabled, taking a portfolio snapshot now")
				go sched.RunSnapshotNow()
			}

			a.log.Info().Msg("planner bot is running, press Ctrl+C to stop")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			a.log.Info().Msg("shutdown signal received, stopping")
			cancel()
			<-polling
			a.log.Info().Msg("planner bot stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", os.Getenv("RUN_ON_START") == "true", "Take a portfolio snapshot immediately")
	return cmd
}
