package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken   string `yaml:"bot_token"`
		MaxRetries int    `yaml:"max_retries"`
	} `yaml:"telegram"`
	Planner struct {
		ContributionFraction float64 `yaml:"contribution_fraction"`
		HorizonMonths        int     `yaml:"horizon_months"`
		FallbackRate         float64 `yaml:"fallback_rate"`
	} `yaml:"planner"`
	Portfolio struct {
		VolatileMin float64 `yaml:"volatile_min"`
		VolatileMax float64 `yaml:"volatile_max"`
		Seed        uint64  `yaml:"seed"` // 0 draws a fresh seed per start
	} `yaml:"portfolio"`
	Pacing struct {
		Think    time.Duration `yaml:"think"`
		Analyze  time.Duration `yaml:"analyze"`
		FollowUp time.Duration `yaml:"follow_up"`
	} `yaml:"pacing"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
		ReminderCron string `yaml:"reminder_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables the journal
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads .env (if present) and the YAML file, then applies environment overrides and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Pacing.Think = -1
	cfg.Pacing.Analyze = -1
	cfg.Pacing.FollowUp = -1
	// Any finite rate, including 0 and negatives, is a valid fallback.
	cfg.Planner.FallbackRate = math.NaN()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CRON_SNAPSHOT"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("CRON_REMINDER"); v != "" {
		cfg.Schedule.ReminderCron = v
	}
	if v := os.Getenv("CONTRIBUTION_FRACTION"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse CONTRIBUTION_FRACTION: %w", err)
		}
		cfg.Planner.ContributionFraction = f
	}
	if v := os.Getenv("HORIZON_MONTHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse HORIZON_MONTHS: %w", err)
		}
		cfg.Planner.HorizonMonths = n
	}
	if v := os.Getenv("PLANNER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse PLANNER_SEED: %w", err)
		}
		cfg.Portfolio.Seed = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Telegram.MaxRetries == 0 {
		cfg.Telegram.MaxRetries = 3
	}
	if cfg.Planner.ContributionFraction == 0 {
		cfg.Planner.ContributionFraction = 0.20
	}
	if cfg.Planner.HorizonMonths == 0 {
		cfg.Planner.HorizonMonths = 60
	}
	if math.IsNaN(cfg.Planner.FallbackRate) {
		cfg.Planner.FallbackRate = 8
	}
	if cfg.Portfolio.VolatileMin == 0 && cfg.Portfolio.VolatileMax == 0 {
		cfg.Portfolio.VolatileMin = -15
		cfg.Portfolio.VolatileMax = 30
	}
	// Negative means unset; an explicit 0 in the file turns a delay off.
	if cfg.Pacing.Think < 0 {
		cfg.Pacing.Think = 600 * time.Millisecond
	}
	if cfg.Pacing.Analyze < 0 {
		cfg.Pacing.Analyze = 1500 * time.Millisecond
	}
	if cfg.Pacing.FollowUp < 0 {
		cfg.Pacing.FollowUp = 800 * time.Millisecond
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 21 * * *"
	}
	if cfg.Schedule.ReminderCron == "" {
		cfg.Schedule.ReminderCron = "0 0 9 1 * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks the planner constants.
func (c *Config) Validate() error {
	if c.Planner.ContributionFraction <= 0 || c.Planner.ContributionFraction > 1 {
		return fmt.Errorf("planner.contribution_fraction must be in (0, 1], got %v", c.Planner.ContributionFraction)
	}
	if c.Planner.HorizonMonths <= 0 {
		return fmt.Errorf("planner.horizon_months must be positive")
	}
	if math.IsNaN(c.Planner.FallbackRate) || math.IsInf(c.Planner.FallbackRate, 0) {
		return fmt.Errorf("planner.fallback_rate must be finite")
	}
	if c.Portfolio.VolatileMin >= c.Portfolio.VolatileMax {
		return fmt.Errorf("portfolio.volatile_min must be below volatile_max")
	}
	if c.Telegram.MaxRetries < 0 {
		return fmt.Errorf("telegram.max_retries must not be negative")
	}
	return nil
}

// ValidateBot additionally requires what the Telegram front end needs.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	return nil
}
