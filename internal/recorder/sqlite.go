package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the run log to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS spectrum_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			source      TEXT,
			trigger_type TEXT,
			window_size INTEGER,
			samples     INTEGER,
			defined     INTEGER,
			zone        TEXT,
			status      TEXT,
			error_msg   TEXT,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON spectrum_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON spectrum_runs(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(evt *RunEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := evt.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO spectrum_runs
		(timestamp, symbol, source, trigger_type, window_size, samples, defined, zone, status, error_msg, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		ts.Unix(), evt.Symbol, evt.Source, evt.Trigger, evt.Window,
		evt.Samples, evt.Defined, evt.Zone, evt.Status, evt.Error, evt.DurationMS,
	)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, symbol, source, trigger_type, window_size, samples,
		defined, zone, status, error_msg, duration_ms
		FROM spectrum_runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEvent
	for rows.Next() {
		var (
			evt RunEvent
			ts  int64
		)
		if err := rows.Scan(&ts, &evt.Symbol, &evt.Source, &evt.Trigger, &evt.Window, &evt.Samples,
			&evt.Defined, &evt.Zone, &evt.Status, &evt.Error, &evt.DurationMS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		evt.Time = time.Unix(ts, 0)
		runs = append(runs, evt)
	}
	return runs, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
