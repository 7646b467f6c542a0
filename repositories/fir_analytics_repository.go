package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

type dbCrimeTypeCount struct {
	Crime string `db:"crime"`
	Count int    `db:"count"`
}

type dbStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type dbPriorityCount struct {
	Priority int `db:"priority"`
	Count    int `db:"count"`
}

// The time range is optional on every distribution: nil means the whole table.

func (repo *DbRepository) CrimeTypeDistribution(ctx context.Context, exec Executor, timeRange *models.TimeRange) ([]models.CrimeTypeCount, error) {
	query := NewQueryBuilder().
		Select("crime", "COUNT(*) AS count").
		From(dbmodels.TABLE_FIRS).
		GroupBy("crime").
		OrderBy("count DESC", "crime ASC")

	return SqlToListOfModels(ctx, exec, whereCreatedIn(query, timeRange),
		func(db dbCrimeTypeCount) (models.CrimeTypeCount, error) {
			return models.CrimeTypeCount{Crime: db.Crime, Count: db.Count}, nil
		})
}

func (repo *DbRepository) StatusDistribution(ctx context.Context, exec Executor, timeRange *models.TimeRange) ([]models.StatusCount, error) {
	query := NewQueryBuilder().
		Select("status", "COUNT(*) AS count").
		From(dbmodels.TABLE_FIRS).
		GroupBy("status").
		OrderBy("count DESC", "status ASC")

	return SqlToListOfModels(ctx, exec, whereCreatedIn(query, timeRange),
		func(db dbStatusCount) (models.StatusCount, error) {
			return models.StatusCount{Status: models.FirStatus(db.Status), Count: db.Count}, nil
		})
}

// PriorityDistribution is ordered by priority so that charts keep a fixed axis.
func (repo *DbRepository) PriorityDistribution(ctx context.Context, exec Executor, timeRange *models.TimeRange) ([]models.PriorityCount, error) {
	query := NewQueryBuilder().
		Select("priority", "COUNT(*) AS count").
		From(dbmodels.TABLE_FIRS).
		GroupBy("priority").
		OrderBy("priority ASC")

	return SqlToListOfModels(ctx, exec, whereCreatedIn(query, timeRange),
		func(db dbPriorityCount) (models.PriorityCount, error) {
			return models.PriorityCount{Priority: db.Priority, Count: db.Count}, nil
		})
}

// MonthlyCounts returns the number of FIRs created per UTC month of year. Months without FIRs are absent.
func (repo *DbRepository) MonthlyCounts(ctx context.Context, exec Executor, year int) (map[int]int, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	query := NewQueryBuilder().
		Select("EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month", "COUNT(*) AS count").
		From(dbmodels.TABLE_FIRS).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": start.AddDate(1, 0, 0)}).
		GroupBy("month")

	counts := make(map[int]int, 12)
	err := ForEachRow(ctx, exec, query, func(row pgx.CollectableRow) error {
		var month, count int
		if err := row.Scan(&month, &count); err != nil {
			return err
		}
		counts[month] = count
		return nil
	})
	return counts, err
}

func (repo *DbRepository) CountFirsCreatedIn(ctx context.Context, exec Executor, timeRange models.TimeRange) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_FIRS)

	return ScanScalar[int](ctx, exec, whereCreatedIn(query, &timeRange))
}

// AverageProcessingDays is the mean time from creation to closure of the FIRs closed within the range, 0 when there are none.
func (repo *DbRepository) AverageProcessingDays(ctx context.Context, exec Executor, timeRange models.TimeRange) (float64, error) {
	query := NewQueryBuilder().
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (closed_at - created_at)) / 86400.0), 0)::float8").
		From(dbmodels.TABLE_FIRS).
		Where(squirrel.Eq{"status": models.FirStatusClosed}).
		Where(squirrel.NotEq{"closed_at": nil}).
		Where(squirrel.GtOrEq{"closed_at": timeRange.Start}).
		Where(squirrel.LtOrEq{"closed_at": timeRange.End})

	return ScanScalar[float64](ctx, exec, query)
}

func whereCreatedIn(query squirrel.SelectBuilder, timeRange *models.TimeRange) squirrel.SelectBuilder {
	if timeRange == nil {
		return query
	}
	return query.
		Where(squirrel.GtOrEq{"created_at": timeRange.Start}).
		Where(squirrel.LtOrEq{"created_at": timeRange.End})
}
