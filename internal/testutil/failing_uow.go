package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/ritmo/internal/db"
)

// ErrStoreDown is the default error returned by FailingDBTX.
var ErrStoreDown = errors.New("store unreachable")

// FailingDBTX is a DBTX whose every call fails, standing in for a record
// store that cannot be reached.
type FailingDBTX struct {
	Err error
}

func (f FailingDBTX) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrStoreDown
}

func (f FailingDBTX) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err()
}

func (f FailingDBTX) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err()
}

// QueryRowContext cannot return an error directly, so it yields a row whose
// Scan fails. The row comes from a closed connection pool.
func (f FailingDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return closedDB().QueryRowContext(ctx, query, args...)
}

// closedDB returns a *sql.DB that is already closed; any query on it fails
// with sql: database is closed.
func closedDB() *sql.DB {
	d, err := db.OpenDB(":memory:")
	if err != nil {
		panic(err)
	}
	d.Close()
	return d
}

// FailOnNthExecUoW injects Err on the Nth ExecContext call inside a
// transaction, counting from 1. Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailingUoW refuses to begin any transaction.
type FailingUoW struct {
	Err error
}

func (u FailingUoW) WithinTx(context.Context, func(ctx context.Context, tx db.DBTX) error) error {
	if u.Err != nil {
		return u.Err
	}
	return ErrStoreDown
}
