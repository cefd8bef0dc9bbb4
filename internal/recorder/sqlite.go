package recorder

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the simulation journal to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
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

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulations (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			session_id         TEXT NOT NULL,
			level              INTEGER,
			equity             REAL,
			bonds              REAL,
			tech               REAL,
			cash               REAL,
			final_value        INTEGER,
			benchmark_final    INTEGER,
			return_percent     REAL,
			volatility         TEXT,
			growth             TEXT,
			monthly_volatility REAL,
			max_drawdown       REAL,
			path_json          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_session ON simulations(session_id)`,

		`CREATE TABLE IF NOT EXISTS level_completions (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			session_id   TEXT NOT NULL,
			level        INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_session ON level_completions(session_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSimulation(rec *SimulationRecord) error {
	if rec.Outcome == nil {
		return errors.New("simulation record without outcome")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := rec.Outcome
	points, err := json.Marshal(out.Path.Points)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}

	ts := out.SimulatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.Exec(`INSERT INTO simulations
		(timestamp, session_id, level, equity, bonds, tech, cash,
		 final_value, benchmark_final, return_percent, volatility, growth,
		 monthly_volatility, max_drawdown, path_json)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ts.Unix(), rec.SessionID, rec.Level,
		rec.Allocation.Equity, rec.Allocation.Bonds, rec.Allocation.Tech, rec.Allocation.Cash,
		out.Path.FinalValue(), out.Path.BenchmarkFinalValue(), out.Assessment.ReturnPercent,
		string(out.Assessment.Volatility), string(out.Assessment.Growth),
		out.Stats.MonthlyVolatility, out.Stats.MaxDrawdown, string(points),
	)
	return err
}

func (r *SQLiteRecorder) RecordCompletion(evt *CompletionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := evt.CompletedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO level_completions (timestamp, session_id, level) VALUES (?,?,?)`,
		ts.Unix(), evt.SessionID, evt.Level,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
