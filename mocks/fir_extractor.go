package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Adityakk9031/FirAgent/models"
)

type FirExtractor struct {
	mock.Mock
}

func (e *FirExtractor) Extract(ctx context.Context, text string) (models.ExtractedFir, error) {
	args := e.Called(ctx, text)
	return args.Get(0).(models.ExtractedFir), args.Error(1)
}

type FirCreator struct {
	mock.Mock
}

func (c *FirCreator) CreateFir(ctx context.Context, input models.CreateFirInput) (models.Fir, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(models.Fir), args.Error(1)
}
