package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter ExecutorGetter
	DbRepository   *DbRepository
	AnalyticsCache AnalyticsCache
}

type Option func(*Repositories)

func WithAnalyticsCache(cache AnalyticsCache) Option {
	return func(r *Repositories) {
		r.AnalyticsCache = cache
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	repositories := Repositories{
		ExecutorGetter: NewExecutorGetter(pool),
		DbRepository:   &DbRepository{},
		AnalyticsCache: NewInMemoryAnalyticsCache(DefaultAnalyticsCacheSize, DefaultAnalyticsCacheTtl),
	}

	for _, opt := range opts {
		opt(&repositories)
	}

	return repositories
}

// DbRepository holds every postgres-backed method. It is stateless: the executor is passed on each call.
type DbRepository struct{}
