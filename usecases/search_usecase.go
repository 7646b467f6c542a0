package usecases

import (
	"context"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
)

type SearchRepository interface {
	SearchFirs(ctx context.Context, exec repositories.Executor, params models.FirSearchParams) ([]models.Fir, error)
	CountSearchFirs(ctx context.Context, exec repositories.Executor, params models.FirSearchParams) (int, error)
}

type SearchUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      SearchRepository
}

// SearchFirs returns one page of the FIRs matching every predicate of params, and the number of matches
// over all pages.
func (usecase SearchUsecase) SearchFirs(ctx context.Context, params models.FirSearchParams) (models.FirSearchResult, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return models.FirSearchResult{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	items, err := usecase.repository.SearchFirs(ctx, exec, params)
	if err != nil {
		return models.FirSearchResult{}, err
	}
	total, err := usecase.repository.CountSearchFirs(ctx, exec, params)
	if err != nil {
		return models.FirSearchResult{}, err
	}

	return models.FirSearchResult{Items: items, Total: total}, nil
}
