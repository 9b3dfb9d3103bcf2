package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("database: record not found")

// ErrConflict is returned when an insert violates a uniqueness constraint.
var ErrConflict = errors.New("database: record already exists")

const (
	busyRetryAttempts = 5
	busyRetryDelay    = 10 * time.Millisecond
	busyRetryMaxDelay = 200 * time.Millisecond
)

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return strings.Contains(err.Error(), "database is locked")
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// retryOnBusy runs op, retrying with backoff while SQLite reports writer
// contention. Other errors are returned immediately.
func retryOnBusy(ctx context.Context, op func() error) error {
	return retry.Do(
		op,
		retry.Context(ctx),
		retry.Attempts(busyRetryAttempts),
		retry.Delay(busyRetryDelay),
		retry.MaxDelay(busyRetryMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isSQLiteBusy),
		retry.LastErrorOnly(true),
	)
}

func execWithRetry(ctx context.Context, db *sql.DB, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// inTx runs fn inside a transaction, retrying the whole unit while SQLite is
// busy. Either the full write commits or none of it does.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	return retryOnBusy(ctx, func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}

// Timestamps are stored as RFC3339Nano strings.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
