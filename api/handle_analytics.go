package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleCrimeTypeDistribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewAnalyticsUsecase()
		counts, err := usecase.CrimeTypeDistribution(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"crimeTypes": dto.AdaptCrimeTypeCounts(counts)})
	}
}

func handleStatusDistribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewAnalyticsUsecase()
		counts, err := usecase.StatusDistribution(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"statuses": dto.AdaptStatusCounts(counts)})
	}
}

func handlePriorityDistribution(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewAnalyticsUsecase()
		counts, err := usecase.PriorityDistribution(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"priorities": dto.AdaptPriorityCounts(counts)})
	}
}

func handleMonthlyStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.MonthlyStatsQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewAnalyticsUsecase()
		months, err := usecase.MonthlyStats(ctx, query.Year)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"year": query.Year, "months": dto.AdaptMonthlyCounts(months)})
	}
}

func handleTimeRangeAnalytics(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.TimeRangeQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewAnalyticsUsecase()
		analytics, err := usecase.AnalyticsByTimeRange(ctx, models.TimeRange{Start: query.Start, End: query.End})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptTimeRangeAnalytics(analytics))
	}
}
