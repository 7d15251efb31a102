package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultTxTimeout  = 10 * time.Second
	defaultTxAttempts = 3
)

// ErrUnavailable is returned when a transaction could not be committed
// within the bounded retry budget. Callers surface it as a transient
// failure; no partial state is ever left behind.
var ErrUnavailable = errors.New("storage temporarily unavailable")

// TxOptions configures transaction behavior
type TxOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
	Attempts       int
}

// StandardTxOptions returns default transaction options
func StandardTxOptions() *TxOptions {
	return &TxOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        defaultTxTimeout,
		Attempts:       1,
	}
}

// SerializableTxOptions returns options for progression commits: the
// read-modify-write on a player's ledger runs serializable with a
// small retry budget for serialization conflicts.
func SerializableTxOptions() *TxOptions {
	return &TxOptions{
		IsolationLevel: sql.LevelSerializable,
		Timeout:        defaultTxTimeout,
		Attempts:       defaultTxAttempts,
	}
}

// TxRunner executes a function within one database transaction.
// Either every write inside fn lands or none do.
type TxRunner interface {
	WithTransaction(ctx context.Context, opts *TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

type TxManager struct {
	db *bun.DB
}

func NewTxManager(db *bun.DB) *TxManager {
	return &TxManager{db: db}
}

func (tm *TxManager) WithTransaction(ctx context.Context, opts *TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	if opts == nil {
		opts = StandardTxOptions()
	}
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = tm.runOnce(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !isRetryableTxError(lastErr) {
			return lastErr
		}

		slog.Warn("Transaction conflict, retrying",
			slog.String("type", "db"),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (tm *TxManager) runOnce(ctx context.Context, opts *TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := tm.db.BeginTx(timeoutCtx, &sql.TxOptions{
		Isolation: opts.IsolationLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Postgres class 40 errors (serialization_failure, deadlock_detected)
// are safe to retry; the whole fn is re-executed on a fresh snapshot.
func isRetryableTxError(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		code := pgErr.Field('C')
		return code == "40001" || code == "40P01"
	}
	return false
}
