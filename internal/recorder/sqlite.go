package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals planner activity to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{
		db:  db,
		log: log.With().Str("component", "recorder").Logger(),
		now: time.Now,
	}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conversation_turns (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			chat_id    INTEGER,
			session_id TEXT,
			input      TEXT,
			from_step  TEXT,
			to_step    TEXT,
			replies    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON conversation_turns(session_id, timestamp)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			chat_id         INTEGER,
			session_id      TEXT,
			income          REAL,
			income_band     TEXT,
			risk            TEXT,
			goal            TEXT,
			category        TEXT,
			expected_return TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_ts ON recommendations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS purchases (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			chat_id       INTEGER,
			instrument_id TEXT,
			amount        REAL,
			invested      REAL,
			return_rate   REAL,
			top_up        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_chat ON purchases(chat_id, timestamp)`,

		`CREATE TABLE IF NOT EXISTS valuations (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			chat_id   INTEGER,
			invested  REAL,
			value     REAL,
			gain      REAL,
			entries   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuations_chat ON valuations(chat_id, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTurn(evt *TurnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO conversation_turns
		(timestamp, chat_id, session_id, input, from_step, to_step, replies)
		VALUES (?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ChatID, evt.SessionID, evt.Input,
		evt.FromStep, evt.ToStep, evt.Replies,
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordRecommendation(evt *RecommendationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO recommendations
		(timestamp, chat_id, session_id, income, income_band, risk, goal, category, expected_return)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ChatID, evt.SessionID,
		evt.Income, evt.IncomeBand, evt.Risk, evt.Goal,
		evt.Category, evt.ExpectedReturn,
	)
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordPurchase(evt *PurchaseEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO purchases
		(timestamp, chat_id, instrument_id, amount, invested, return_rate, top_up)
		VALUES (?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.ChatID, evt.InstrumentID,
		evt.Amount, evt.Invested, evt.ReturnRate, evt.TopUp,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordValuation(evt *ValuationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO valuations
		(timestamp, chat_id, invested, value, gain, entries)
		VALUES (?,?,?,?,?,?)`,
		r.now().Unix(), evt.ChatID, evt.Invested, evt.Value, evt.Gain, evt.Entries,
	)
	if err != nil {
		return fmt.Errorf("insert valuation: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
