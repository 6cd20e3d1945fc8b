package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/bot"
	"InvestPlanner/internal/config"
	"InvestPlanner/internal/conversation"
	"InvestPlanner/internal/portfolio"
	"InvestPlanner/internal/recorder"
)

// app is the wiring shared by the commands.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	engine  *advisor.Engine
	plan    advisor.PlanSettings
	catalog *portfolio.Catalog
	rec     recorder.Recorder
}

// newApp loads configuration and builds the core. interactive commands log warnings only unless
// a level is given explicitly, so the terminal stays readable.
func newApp(opts *options, interactive bool) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	level := cfg.Log.Level
	if interactive && os.Getenv("LOG_LEVEL") == "" {
		level = "warn"
	}
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := newLogger(os.Stderr, level, opts.pretty || cfg.Log.Pretty || interactive)

	a := &app{
		cfg:     cfg,
		log:     log,
		engine:  advisor.NewEngine(),
		catalog: portfolio.DefaultCatalog(),
		plan: advisor.PlanSettings{
			ContributionFraction: cfg.Planner.ContributionFraction,
			HorizonMonths:        cfg.Planner.HorizonMonths,
			FallbackRate:         cfg.Planner.FallbackRate,
		},
	}

	a.rec = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			a.rec = sr
		}
	}
	return a, nil
}

func (a *app) close() {
	if err := a.rec.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close recorder")
	}
}

func (a *app) pacing() conversation.Pacing {
	return conversation.Pacing{
		Think:    a.cfg.Pacing.Think,
		Analyze:  a.cfg.Pacing.Analyze,
		FollowUp: a.cfg.Pacing.FollowUp,
	}
}

func (a *app) dispatcher() *bot.Dispatcher {
	machine := conversation.NewMachine(a.engine, a.plan, a.log)
	opts := bot.Options{
		Pacing: a.pacing(),
		Ledger: portfolio.Settings{
			VolatileLow:  a.cfg.Portfolio.VolatileMin,
			VolatileHigh: a.cfg.Portfolio.VolatileMax,
			FallbackRate: a.cfg.Planner.FallbackRate,
		},
		Rates: bot.SeededRates(a.cfg.Portfolio.Seed),
	}
	return bot.NewDispatcher(machine, a.catalog, opts, a.rec, a.log)
}

// newLogger builds the root logger: JSON lines, or a console writer when pretty.
func newLogger(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
