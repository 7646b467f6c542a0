package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Adityakk9031/FirAgent/repositories"
)

type ExecutorFactory struct {
	mock.Mock
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	return args.Get(0).(repositories.Executor)
}

// TransactionFactory runs the callback with TxMock and returns its error, or the configured one.
type TransactionFactory struct {
	mock.Mock
	TxMock *Executor
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}
