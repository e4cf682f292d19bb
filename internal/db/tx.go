package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Acquirer is the part of *pgxpool.Pool used for scoped acquisition.
type Acquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// WithConn acquires a pooled connection, runs fn on it and releases the
// connection on every exit path, including a panic in fn.
func WithConn(ctx context.Context, pool Acquirer, fn func(conn *pgxpool.Conn) error) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}

// WithTx runs fn inside a single transaction on a freshly acquired
// connection. The transaction is committed when fn returns nil and rolled
// back otherwise. Nothing is retried.
func WithTx(ctx context.Context, pool Acquirer, fn func(tx pgx.Tx) error) error {
	return WithConn(ctx, pool, func(conn *pgxpool.Conn) (err error) {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}

		defer func() {
			if err == nil {
				return
			}
			// rollback errors are logged, the original error is kept
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("rollback tx: %s", rbErr)
			}
		}()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		return nil
	})
}
