package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Adityakk9031/FirAgent/mocks"
	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
)

type AnalyticsUsecaseTestSuite struct {
	suite.Suite
	exec            *mocks.Executor
	executorFactory *mocks.ExecutorFactory
	repository      *mocks.DbRepository
	ctx             context.Context
}

func (suite *AnalyticsUsecaseTestSuite) SetupTest() {
	suite.exec = new(mocks.Executor)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.repository = new(mocks.DbRepository)
	suite.ctx = context.Background()
	suite.executorFactory.On("NewExecutor").Return(suite.exec).Maybe()
}

func (suite *AnalyticsUsecaseTestSuite) makeUsecase(cache repositories.AnalyticsCache) AnalyticsUsecase {
	return AnalyticsUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		cache:           cache,
	}
}

func (suite *AnalyticsUsecaseTestSuite) TestMonthlyStats_has_twelve_entries() {
	suite.repository.On("MonthlyCounts", suite.ctx, suite.exec, 2024).Return(map[int]int{1: 4, 3: 2, 12: 1}, nil)

	months, err := suite.makeUsecase(nil).MonthlyStats(suite.ctx, 2024)

	t := suite.T()
	require.NoError(t, err)
	require.Len(t, months, 12)
	total := 0
	for i, m := range months {
		assert.Equal(t, i+1, m.Month)
		total += m.Count
	}
	assert.Equal(t, 7, total)
	assert.Equal(t, 0, months[1].Count)
	suite.repository.AssertExpectations(t)
}

func (suite *AnalyticsUsecaseTestSuite) TestMonthlyStats_rejects_out_of_range_year() {
	_, err := suite.makeUsecase(nil).MonthlyStats(suite.ctx, 10000)

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
	suite.repository.AssertExpectations(suite.T())
}

func (suite *AnalyticsUsecaseTestSuite) TestCrimeTypeDistribution_served_from_cache() {
	cache := repositories.NewInMemoryAnalyticsCache(8, time.Minute)
	raw, err := json.Marshal([]models.CrimeTypeCount{{Crime: "theft", Count: 3}})
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), cache.Set(suite.ctx, "crime-types", 0, raw))

	counts, err := suite.makeUsecase(cache).CrimeTypeDistribution(suite.ctx)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, []models.CrimeTypeCount{{Crime: "theft", Count: 3}}, counts)
	suite.repository.AssertNotCalled(t, "CrimeTypeDistribution", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticsUsecaseTestSuite) TestStatusDistribution_cache_failure_falls_back() {
	cache := new(mocks.AnalyticsCache)
	cache.On("Get", suite.ctx, "statuses").Return(nil, int64(0), false, errors.New("redis down"))
	expected := []models.StatusCount{{Status: models.FirStatusRegistered, Count: 5}}
	suite.repository.On("StatusDistribution", suite.ctx, suite.exec, (*models.TimeRange)(nil)).Return(expected, nil)

	counts, err := suite.makeUsecase(cache).StatusDistribution(suite.ctx)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, expected, counts)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.repository.AssertExpectations(t)
}

func (suite *AnalyticsUsecaseTestSuite) TestPriorityDistribution_stores_under_the_generation_it_read() {
	cache := new(mocks.AnalyticsCache)
	cache.On("Get", suite.ctx, "priorities").Return(nil, int64(7), false, nil)
	cache.On("Set", suite.ctx, "priorities", int64(7), mock.Anything).Return(nil)
	expected := []models.PriorityCount{{Priority: 3, Count: 2}}
	suite.repository.On("PriorityDistribution", suite.ctx, suite.exec, (*models.TimeRange)(nil)).Return(expected, nil)

	counts, err := suite.makeUsecase(cache).PriorityDistribution(suite.ctx)

	t := suite.T()
	assert.NoError(t, err)
	assert.Equal(t, expected, counts)
	cache.AssertExpectations(t)
}

func (suite *AnalyticsUsecaseTestSuite) TestCrimeTypeDistribution_result_computed_across_a_write_is_not_cached() {
	cache := repositories.NewInMemoryAnalyticsCache(8, time.Minute)
	stale := []models.CrimeTypeCount{{Crime: "theft", Count: 1}}
	fresh := []models.CrimeTypeCount{{Crime: "theft", Count: 2}}
	suite.repository.On("CrimeTypeDistribution", suite.ctx, suite.exec, (*models.TimeRange)(nil)).
		Run(func(mock.Arguments) { require.NoError(suite.T(), cache.Invalidate(suite.ctx)) }).
		Return(stale, nil).Once()
	suite.repository.On("CrimeTypeDistribution", suite.ctx, suite.exec, (*models.TimeRange)(nil)).
		Return(fresh, nil).Once()

	usecase := suite.makeUsecase(cache)
	first, err := usecase.CrimeTypeDistribution(suite.ctx)
	require.NoError(suite.T(), err)
	second, err := usecase.CrimeTypeDistribution(suite.ctx)
	require.NoError(suite.T(), err)

	t := suite.T()
	assert.Equal(t, stale, first)
	assert.Equal(t, fresh, second)
	suite.repository.AssertExpectations(t)
}

func (suite *AnalyticsUsecaseTestSuite) TestAnalyticsByTimeRange_without_closed_cases() {
	timeRange := models.TimeRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	suite.repository.On("CountFirsCreatedIn", mock.Anything, suite.exec, timeRange).Return(3, nil)
	suite.repository.On("StatusDistribution", mock.Anything, suite.exec, &timeRange).
		Return([]models.StatusCount{{Status: models.FirStatusRegistered, Count: 3}}, nil)
	suite.repository.On("PriorityDistribution", mock.Anything, suite.exec, &timeRange).
		Return([]models.PriorityCount{{Priority: 2, Count: 3}}, nil)
	suite.repository.On("CrimeTypeDistribution", mock.Anything, suite.exec, &timeRange).
		Return([]models.CrimeTypeCount{{Crime: "theft", Count: 3}}, nil)
	suite.repository.On("AverageProcessingDays", mock.Anything, suite.exec, timeRange).Return(0.0, nil)

	out, err := suite.makeUsecase(nil).AnalyticsByTimeRange(suite.ctx, timeRange)

	t := suite.T()
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalFirs)
	assert.Equal(t, 0.0, out.AverageProcessingTimeDays)
	assert.Len(t, out.StatusDistribution, 1)
	suite.repository.AssertExpectations(t)
}

func (suite *AnalyticsUsecaseTestSuite) TestAnalyticsByTimeRange_rejects_inverted_range() {
	_, err := suite.makeUsecase(nil).AnalyticsByTimeRange(suite.ctx, models.TimeRange{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(suite.T(), err, models.BadParameterError)
}

func (suite *AnalyticsUsecaseTestSuite) TestAnalyticsByTimeRange_propagates_errors() {
	timeRange := models.TimeRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	failure := errors.New("connection reset")
	suite.repository.On("CountFirsCreatedIn", mock.Anything, suite.exec, timeRange).Return(0, failure)
	suite.repository.On("StatusDistribution", mock.Anything, suite.exec, &timeRange).Return([]models.StatusCount{}, nil).Maybe()
	suite.repository.On("PriorityDistribution", mock.Anything, suite.exec, &timeRange).Return([]models.PriorityCount{}, nil).Maybe()
	suite.repository.On("CrimeTypeDistribution", mock.Anything, suite.exec, &timeRange).Return([]models.CrimeTypeCount{}, nil).Maybe()
	suite.repository.On("AverageProcessingDays", mock.Anything, suite.exec, timeRange).Return(0.0, nil).Maybe()

	_, err := suite.makeUsecase(nil).AnalyticsByTimeRange(suite.ctx, timeRange)

	assert.ErrorIs(suite.T(), err, failure)
}

func TestAnalyticsUsecase(t *testing.T) {
	suite.Run(t, new(AnalyticsUsecaseTestSuite))
}
