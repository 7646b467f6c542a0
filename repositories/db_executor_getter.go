package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

// Transaction commits when fn returns nil and rolls back on any error or panic.
func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(tx)
	})
	if err != nil {
		return errors.Wrap(err, "error executing transaction")
	}
	return nil
}

func (g ExecutorGetter) GetExecutor() Executor {
	return g.connectionPool
}
