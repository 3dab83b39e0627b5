// Package history persists tool invocation records in a SQLite database.
// Table tool_runs(id INTEGER PRIMARY KEY, tool, method, path, status_code,
// failed, ran_at). Recording is opt-in via the history config section.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DbFileName is the default filename for the invocation history database.
const DbFileName = "awxtool.db"

// Run is a single recorded tool invocation.
type Run struct {
	ID         int
	Tool       string
	Method     string
	Path       string
	StatusCode int
	Failed     bool
	RanAt      string
}

// Store persists tool runs. Open(dbPath) creates or connects to a SQLite file.
type Store struct {
	DB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	st := &Store{DB: db}
	if err := st.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *Store) EnsureSchema() error {
	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS tool_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tool TEXT NOT NULL,
		method TEXT NOT NULL,
		path TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		ran_at TEXT NOT NULL
	)`)
	return err
}

// Record appends one invocation. statusCode is zero when no response was obtained.
func (s *Store) Record(tool, method, path string, statusCode int, failed bool) error {
	_, err := s.DB.Exec(
		`INSERT INTO tool_runs(tool, method, path, status_code, failed, ran_at) VALUES(?,?,?,?,?,?)`,
		tool, method, path, statusCode, boolToInt(failed), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns the latest runs, newest first, up to limit.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.DB.Query(
		`SELECT id, tool, method, path, status_code, failed, ran_at FROM tool_runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Run
	for rows.Next() {
		var r Run
		var failed int
		if err := rows.Scan(&r.ID, &r.Tool, &r.Method, &r.Path, &r.StatusCode, &failed, &r.RanAt); err != nil {
			return nil, err
		}
		r.Failed = failed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
