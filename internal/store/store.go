package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Store is the sqlite-backed Store. It is safe for concurrent use: sqlite
// itself serializes writes, and a per-execution mutex from execLock
// (whose map execMu guards) additionally serializes the read-modify-write
// sequences of UpdateExecutionStatus and UpdateExecutionNodeState.
type Store struct {
	db   *sql.DB
	path string

	execMu   sync.Mutex
	execLock map[string]*sync.Mutex
}

// Open creates or opens the sqlite database at path (":memory:" for an
// in-memory database, used by tests) and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStorageError, path, err)
	}
	// sqlite allows exactly one writer; a single shared connection avoids
	// SQLITE_BUSY from this process's own goroutines racing each other.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %s: %v", ErrStorageError, pragma, err)
		}
	}

	s := &Store{db: db, path: path, execLock: make(map[string]*sync.Mutex)}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workflows (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS executions (
			id TEXT PRIMARY KEY,
			workflow_id TEXT NOT NULL,
			status TEXT NOT NULL,
			data TEXT NOT NULL,
			started_at TIMESTAMP NOT NULL,
			completed_at TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_executions_workflow_id ON executions(workflow_id)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			execution_id TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			severity TEXT NOT NULL,
			node_id TEXT,
			message TEXT NOT NULL,
			data TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_execution_id ON logs(execution_id)`,
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_templates_category ON templates(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: creating schema: %v", ErrStorageError, err)
		}
	}
	return nil
}

// lockFor returns the keyed mutex for an execution id, creating it on
// first use. The map itself is protected by execMu; the returned mutex is
// not (callers lock/unlock it directly).
func (s *Store) lockFor(executionID string) *sync.Mutex {
	s.execMu.Lock()
	defer s.execMu.Unlock()
	mu, ok := s.execLock[executionID]
	if !ok {
		mu = &sync.Mutex{}
		s.execLock[executionID] = mu
	}
	return mu
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
