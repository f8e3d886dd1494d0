package cases

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/itsmlab/itsmd/internal/plan"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteStore is a file-backed Store. It keeps the same write-once
// contract as MemStore; the file is a lab convenience, not a
// durability promise.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the case database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cases: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cases: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cases: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cases: migration: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS cases (
			case_id           TEXT PRIMARY KEY,
			created_at        TEXT NOT NULL,
			short_description TEXT NOT NULL,
			details           TEXT NOT NULL,
			plan              TEXT NOT NULL
		)
	`)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create inserts a new case row. The insert is conflict-checked: an id
// that already exists is never overwritten, a fresh id is drawn
// instead.
func (s *SQLiteStore) Create(shortDescription, details string, p plan.ResearchPlan) (string, error) {
	planJSON, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("cases: marshal plan: %w", err)
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)

	for {
		id := NewCaseID()
		res, err := s.db.Exec(
			`INSERT INTO cases (case_id, created_at, short_description, details, plan)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(case_id) DO NOTHING`,
			id, createdAt, shortDescription, details, string(planJSON),
		)
		if err != nil {
			return "", fmt.Errorf("cases: insert: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("cases: rows affected: %w", err)
		}
		if n == 1 {
			return id, nil
		}
		// Collision: loop with a new id.
	}
}

// Get looks up a case by id. Unknown ids return ErrNotFound.
func (s *SQLiteStore) Get(caseID string) (*Case, error) {
	row := s.db.QueryRow(
		`SELECT case_id, created_at, short_description, details, plan
		 FROM cases WHERE case_id = ?`,
		strings.TrimSpace(caseID),
	)

	var c Case
	var planJSON string
	err := row.Scan(&c.CaseID, &c.CreatedAt, &c.ShortDescription, &c.Details, &planJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cases: scan: %w", err)
	}

	if err := json.Unmarshal([]byte(planJSON), &c.Plan); err != nil {
		return nil, fmt.Errorf("cases: unmarshal plan for %s: %w", c.CaseID, err)
	}
	return &c, nil
}
