package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/Adityakk9031/FirAgent/repositories"
)

// ExecutorFactoryStub hands out a pgxmock pool, so that tests can assert the SQL a usecase sends.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

// TransactionFactoryStub runs the callback on the stub executor without BEGIN or COMMIT.
type TransactionFactoryStub struct {
	ExecutorFactory ExecutorFactoryStub
}

func NewTransactionFactoryStub(executorFactory ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{ExecutorFactory: executorFactory}
}

func (stub TransactionFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Executor) error,
) error {
	return fn(stub.ExecutorFactory.NewExecutor())
}
