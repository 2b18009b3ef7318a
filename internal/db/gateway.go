package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Querier is what repositories need from the store. It is satisfied by
// *pgxpool.Pool for one-off statements and by pgx.Tx inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Gateway owns connection acquisition and transaction boundaries.
type Gateway struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewGateway(pool *pgxpool.Pool, log *zap.Logger) *Gateway {
	return &Gateway{pool: pool, log: log}
}

// Querier returns the pool for single-statement reads.
func (g *Gateway) Querier() Querier {
	return g.pool
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.pool.Ping(ctx)
}

// WithTx runs fn inside one read-write transaction on a dedicated
// connection. fn's error, a failed commit or a panic rolls back every
// statement; the connection is released on every path. The returned error is
// classified.
func (g *Gateway) WithTx(ctx context.Context, fn func(q Querier) error) error {
	return g.run(ctx, pgx.TxOptions{}, fn)
}

// WithSnapshot runs fn in a read-only repeatable-read transaction so that
// several reads observe the same snapshot.
func (g *Gateway) WithSnapshot(ctx context.Context, fn func(q Querier) error) error {
	return g.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (g *Gateway) run(ctx context.Context, opts pgx.TxOptions, fn func(q Querier) error) (err error) {
	conn, err := g.pool.Acquire(ctx)
	if err != nil {
		return Classify(fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return Classify(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			g.rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			g.rollback(ctx, tx)
		}
	}()

	if err = fn(tx); err != nil {
		return Classify(err)
	}
	if err = tx.Commit(ctx); err != nil {
		return Classify(fmt.Errorf("commit: %w", err))
	}
	return nil
}

func (g *Gateway) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		g.log.Error("transaction rollback failed", zap.Error(err))
	}
}
