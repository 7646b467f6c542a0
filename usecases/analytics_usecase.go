package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
	"github.com/Adityakk9031/FirAgent/utils"
)

type AnalyticsRepository interface {
	CrimeTypeDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.CrimeTypeCount, error)
	StatusDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.StatusCount, error)
	PriorityDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.PriorityCount, error)
	MonthlyCounts(ctx context.Context, exec repositories.Executor, year int) (map[int]int, error)
	CountFirsCreatedIn(ctx context.Context, exec repositories.Executor, timeRange models.TimeRange) (int, error)
	AverageProcessingDays(ctx context.Context, exec repositories.Executor, timeRange models.TimeRange) (float64, error)
}

type AnalyticsUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      AnalyticsRepository
	cache           repositories.AnalyticsCache
}

func (usecase AnalyticsUsecase) CrimeTypeDistribution(ctx context.Context) ([]models.CrimeTypeCount, error) {
	return cached(ctx, usecase.cache, "crime-types", func() ([]models.CrimeTypeCount, error) {
		return usecase.repository.CrimeTypeDistribution(ctx, usecase.executorFactory.NewExecutor(), nil)
	})
}

func (usecase AnalyticsUsecase) StatusDistribution(ctx context.Context) ([]models.StatusCount, error) {
	return cached(ctx, usecase.cache, "statuses", func() ([]models.StatusCount, error) {
		return usecase.repository.StatusDistribution(ctx, usecase.executorFactory.NewExecutor(), nil)
	})
}

func (usecase AnalyticsUsecase) PriorityDistribution(ctx context.Context) ([]models.PriorityCount, error) {
	return cached(ctx, usecase.cache, "priorities", func() ([]models.PriorityCount, error) {
		return usecase.repository.PriorityDistribution(ctx, usecase.executorFactory.NewExecutor(), nil)
	})
}

// MonthlyStats always has twelve entries, January first, months without FIRs counting zero.
func (usecase AnalyticsUsecase) MonthlyStats(ctx context.Context, year int) ([]models.MonthlyCount, error) {
	if err := models.ValidateAnalyticsYear(year); err != nil {
		return nil, err
	}
	return cached(ctx, usecase.cache, fmt.Sprintf("monthly:%d", year), func() ([]models.MonthlyCount, error) {
		counts, err := usecase.repository.MonthlyCounts(ctx, usecase.executorFactory.NewExecutor(), year)
		if err != nil {
			return nil, err
		}
		return models.ZeroFilledMonths(counts), nil
	})
}

// AnalyticsByTimeRange runs the aggregates of the range concurrently, each on its own pooled connection.
func (usecase AnalyticsUsecase) AnalyticsByTimeRange(ctx context.Context, timeRange models.TimeRange) (models.TimeRangeAnalytics, error) {
	if err := timeRange.Validate(); err != nil {
		return models.TimeRangeAnalytics{}, err
	}
	timeRange = models.TimeRange{Start: timeRange.Start.UTC(), End: timeRange.End.UTC()}

	key := fmt.Sprintf("range:%s:%s", timeRange.Start.Format(time.RFC3339Nano), timeRange.End.Format(time.RFC3339Nano))
	return cached(ctx, usecase.cache, key, func() (models.TimeRangeAnalytics, error) {
		out := models.TimeRangeAnalytics{Start: timeRange.Start, End: timeRange.End}
		exec := usecase.executorFactory.NewExecutor()

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() (err error) {
			out.TotalFirs, err = usecase.repository.CountFirsCreatedIn(groupCtx, exec, timeRange)
			return
		})
		group.Go(func() (err error) {
			out.StatusDistribution, err = usecase.repository.StatusDistribution(groupCtx, exec, &timeRange)
			return
		})
		group.Go(func() (err error) {
			out.PriorityDistribution, err = usecase.repository.PriorityDistribution(groupCtx, exec, &timeRange)
			return
		})
		group.Go(func() (err error) {
			out.CrimeTypeDistribution, err = usecase.repository.CrimeTypeDistribution(groupCtx, exec, &timeRange)
			return
		})
		group.Go(func() (err error) {
			out.AverageProcessingTimeDays, err = usecase.repository.AverageProcessingDays(groupCtx, exec, timeRange)
			return
		})
		if err := group.Wait(); err != nil {
			return models.TimeRangeAnalytics{}, err
		}
		return out, nil
	})
}

// cached serves key from the analytics cache, computing and storing it on a miss. Cache failures are
// logged and fall through to the database.
func cached[T any](ctx context.Context, cache repositories.AnalyticsCache, key string, compute func() (T, error)) (T, error) {
	if cache == nil {
		return compute()
	}
	logger := utils.LoggerFromContext(ctx)

	raw, generation, ok, err := cache.Get(ctx, key)
	readFailed := err != nil
	if readFailed {
		logger.WarnContext(ctx, "analytics cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if ok {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}

	// without a generation the value cannot be tied to the data it was computed from
	if readFailed {
		return value, nil
	}
	if raw, err := json.Marshal(value); err == nil {
		if err := cache.Set(ctx, key, generation, raw); err != nil {
			logger.WarnContext(ctx, "analytics cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return value, nil
}
