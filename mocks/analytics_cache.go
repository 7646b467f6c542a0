package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type AnalyticsCache struct {
	mock.Mock
}

func (c *AnalyticsCache) Get(ctx context.Context, key string) ([]byte, int64, bool, error) {
	args := c.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	generation, _ := args.Get(1).(int64)
	return raw, generation, args.Bool(2), args.Error(3)
}

func (c *AnalyticsCache) Set(ctx context.Context, key string, generation int64, value []byte) error {
	args := c.Called(ctx, key, generation, value)
	return args.Error(0)
}

func (c *AnalyticsCache) Invalidate(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}
