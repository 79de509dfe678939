// Package sqlite implements the quota Store on a SQLite database. The store
// runs every Reserve/Release inside an immediate write transaction, which
// gives the serializable per-identity read-modify-write the contract demands
// while still letting several gateway instances share one database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/promptgate/promptgate/internal/common/clock"
	"github.com/promptgate/promptgate/pkg/models"
	"github.com/promptgate/promptgate/pkg/quota"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	identity        TEXT PRIMARY KEY,
	alias           TEXT NOT NULL DEFAULT '',
	request_limit   INTEGER NOT NULL,
	requests_used   INTEGER NOT NULL DEFAULT 0,
	concurrency_cap INTEGER NOT NULL,
	active_streams  INTEGER NOT NULL DEFAULT 0,
	blocked         INTEGER NOT NULL DEFAULT 0,
	updated_at      TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS usage_log (
	id       TEXT PRIMARY KEY,
	identity TEXT NOT NULL,
	action   TEXT NOT NULL,
	ts       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS usage_log_identity_ts ON usage_log(identity, ts);
`

type Store struct {
	db       *sql.DB
	defaults quota.Defaults
	now      clock.NowFunc
	l        *zap.SugaredLogger
}

const defaultBusyTimeout = 10 * time.Second

// Open prepares the database file (parent directory included), applies the
// schema and returns a ready store. DSN query options may be appended to the
// path (e.g. ?_pragma=busy_timeout(30000)).
func Open(path string, defaults quota.Defaults, now clock.NowFunc, l *zap.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is empty")
	}

	filePath := path
	if i := strings.IndexByte(filePath, '?'); i >= 0 {
		filePath = filePath[:i]
	}
	if filePath != ":memory:" && !strings.HasPrefix(filePath, "file:") {
		if dir := filepath.Dir(filePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "failed to create database directory")
			}
		}
	}

	db, err := sql.Open("sqlite", writeDSN(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	// Concurrent writers on one sqlite file fight over the write lock;
	// a single pooled connection keeps transactions strictly ordered.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite database")
	}
	// WAL is a database-level persistent setting, one Exec is enough.
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply schema")
	}

	if now == nil {
		now = time.Now
	}
	return &Store{db: db, defaults: defaults, now: now, l: l.Sugar()}, nil
}

// writeDSN forces immediate write transactions plus a busy timeout. A
// deferred transaction that loses the write-lock upgrade fails with
// SQLITE_BUSY_SNAPSHOT and cannot be retried by the busy handler; starting
// immediate makes concurrent writers queue on the lock instead.
func writeDSN(path string) string {
	opts := make([]string, 0, 2)
	if !strings.Contains(path, "_txlock=") {
		opts = append(opts, "_txlock=immediate")
	}
	if !strings.Contains(path, "busy_timeout") {
		opts = append(opts, fmt.Sprintf("_pragma=busy_timeout(%d)", defaultBusyTimeout.Milliseconds()))
	}
	if len(opts) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(opts, "&")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Shutdown makes the store usable as a shutdown hook.
func (s *Store) Shutdown(_ context.Context) error {
	return s.Close()
}

func (s *Store) Get(ctx context.Context, identity string) (models.QuotaRecord, error) {
	return scanRecord(s.db.QueryRowContext(ctx, `
	SELECT identity, alias, request_limit, requests_used, concurrency_cap, active_streams, blocked, updated_at
	FROM users WHERE identity = ?`, models.NormalizeIdentity(identity)))
}

func (s *Store) Reserve(ctx context.Context, identity string) (models.QuotaRecord, error) {
	id := models.NormalizeIdentity(identity)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.QuotaRecord{}, errors.Wrap(err, "failed to begin reserve transaction")
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := scanRecord(tx.QueryRowContext(ctx, `
	SELECT identity, alias, request_limit, requests_used, concurrency_cap, active_streams, blocked, updated_at
	FROM users WHERE identity = ?`, id))
	if err != nil {
		return models.QuotaRecord{}, err
	}
	switch {
	case rec.Blocked:
		return models.QuotaRecord{}, quota.ErrBlocked
	case rec.RequestsUsed >= rec.RequestLimit:
		return models.QuotaRecord{}, quota.ErrQuotaExhausted
	case rec.ActiveStreams >= rec.ConcurrencyCap:
		return models.QuotaRecord{}, quota.ErrConcurrencyExceeded
	}

	rec.RequestsUsed++
	rec.ActiveStreams++
	rec.UpdatedAt = s.now().UTC()
	if _, err := tx.ExecContext(ctx, `
	UPDATE users SET requests_used = ?, active_streams = ?, updated_at = ? WHERE identity = ?`,
		rec.RequestsUsed, rec.ActiveStreams, rec.UpdatedAt, id); err != nil {
		return models.QuotaRecord{}, errors.Wrap(err, "failed to persist reservation")
	}
	if err := s.appendUsage(ctx, tx, id, models.UsageReserve); err != nil {
		return models.QuotaRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.QuotaRecord{}, errors.Wrap(err, "failed to commit reservation")
	}
	return rec, nil
}

func (s *Store) Release(ctx context.Context, identity string) error {
	id := models.NormalizeIdentity(identity)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin release transaction")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
	UPDATE users SET active_streams = MAX(active_streams - 1, 0), updated_at = ? WHERE identity = ?`,
		s.now().UTC(), id)
	if err != nil {
		return errors.Wrap(err, "failed to persist release")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to check release result")
	}
	if n == 0 {
		// unknown identity, nothing to release
		return nil
	}
	if err := s.appendUsage(ctx, tx, id, models.UsageRelease); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "failed to commit release")
}

func (s *Store) Register(ctx context.Context, users []models.UserSpec) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin register transaction")
	}
	defer func() { _ = tx.Rollback() }()

	now := s.now().UTC()
	for _, u := range users {
		limit := u.RequestLimit
		if limit <= 0 {
			limit = s.defaults.RequestLimit
		}
		concurrency := u.ConcurrencyCap
		if concurrency <= 0 {
			concurrency = s.defaults.ConcurrencyCap
		}
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (identity, alias, request_limit, requests_used, concurrency_cap, active_streams, blocked, updated_at)
		VALUES (?, ?, ?, 0, ?, 0, 0, ?)
		ON CONFLICT(identity) DO UPDATE SET
			alias = excluded.alias,
			request_limit = excluded.request_limit,
			requests_used = 0,
			concurrency_cap = excluded.concurrency_cap,
			active_streams = 0,
			blocked = 0,
			updated_at = excluded.updated_at`,
			models.NormalizeIdentity(u.Identity), u.Alias, limit, concurrency, now); err != nil {
			return 0, errors.Wrap(err, "failed to upsert user")
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit registration")
	}
	s.l.Infow("registered users", zap.Int("count", len(users)))
	return len(users), nil
}

func (s *Store) Delete(ctx context.Context, identity string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE identity = ?`, models.NormalizeIdentity(identity))
	if err != nil {
		return false, errors.Wrap(err, "failed to delete user")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to check delete result")
	}
	return n > 0, nil
}

func (s *Store) appendUsage(ctx context.Context, tx *sql.Tx, identity string, action models.UsageAction) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO usage_log (id, identity, action, ts) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), identity, string(action), s.now().UTC())
	return errors.Wrap(err, "failed to append usage log entry")
}

func scanRecord(row *sql.Row) (models.QuotaRecord, error) {
	var rec models.QuotaRecord
	err := row.Scan(&rec.Identity, &rec.Alias, &rec.RequestLimit, &rec.RequestsUsed,
		&rec.ConcurrencyCap, &rec.ActiveStreams, &rec.Blocked, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuotaRecord{}, quota.ErrNotRegistered
		}
		return models.QuotaRecord{}, errors.Wrap(err, "failed to load quota record")
	}
	return rec, nil
}
