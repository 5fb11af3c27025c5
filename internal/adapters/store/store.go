// Package store persists solved challenges and fix verdicts in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store implements ports.ProgressStore.
// The database is opened on first use so commands that never record anything leave no file behind.
type Store struct {
	path string
	now  func() time.Time

	open func() (*sql.DB, error)
	mu   sync.Mutex
	db   *sql.DB
}

// New creates a Store for the database at path.
func New(path string) *Store {
	s := &Store{path: path, now: time.Now}
	s.open = sync.OnceValues(s.openDB)
	return s
}

func (s *Store) openDB() (*sql.DB, error) {
	if s.path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", s.path)
	}

	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	return db, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return zerr.Wrap(err, "create schema")
	}

	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return zerr.Wrap(err, "set schema version")
		}
		return nil
	case err != nil:
		return zerr.Wrap(err, "read schema version")
	case version != schemaVersion:
		return zerr.With(zerr.New("unsupported schema version"), "version", version)
	default:
		return nil
	}
}

// MarkSolved records key as solved together with a passing verdict.
// Solving an already solved key only adds the verdict.
func (s *Store) MarkSolved(ctx context.Context, key string) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	defer func() { _ = tx.Rollback() }()

	stamp := s.timestamp()
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO solved_challenges(key, solved_at) VALUES(?, ?)", key, stamp,
	); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO fix_verdicts(key, passed, recorded_at) VALUES(?, 1, ?)", key, stamp,
	); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}

	if err := tx.Commit(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// RecordVerdict appends one verdict for key.
func (s *Store) RecordVerdict(ctx context.Context, key string, passed bool) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx,
		"INSERT INTO fix_verdicts(key, passed, recorded_at) VALUES(?, ?, ?)", key, passed, s.timestamp(),
	); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// Report aggregates all recorded verdicts by challenge key.
func (s *Store) Report(ctx context.Context) (domain.AccuracyReport, error) {
	db, err := s.open()
	if err != nil {
		return domain.AccuracyReport{}, err
	}

	rows, err := db.QueryContext(ctx, reportQuery)
	if err != nil {
		return domain.AccuracyReport{}, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	var report domain.AccuracyReport
	for rows.Next() {
		var c domain.ChallengeAccuracy
		if err := rows.Scan(&c.Key, &c.Attempts, &c.Passed, &c.Solved); err != nil {
			return domain.AccuracyReport{}, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
		}
		report.Challenges = append(report.Challenges, c)
		report.Attempts += c.Attempts
		report.Passed += c.Passed
	}
	if err := rows.Err(); err != nil {
		return domain.AccuracyReport{}, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	return report, nil
}

// Close closes the database if it has been opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
