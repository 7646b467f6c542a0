package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/Adityakk9031/FirAgent/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(`{"message":"Request timeout","errorCode":"request_timeout"}`),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	bodyLimit := limits.RequestSizeLimiter(conf.MaxBodySize)

	// Extraction calls a language model and gets its own, longer budget.
	llm := r.Group("/extractions", timeoutMiddleware(conf.ExtractionTimeout), bodyLimit)
	llm.POST("", handleExtractFir(uc))
	llm.POST("/register", handleRegisterFirFromText(uc))

	router := r.Group("", timeoutMiddleware(conf.DefaultTimeout))

	router.POST("/firs", bodyLimit, handleCreateFir(uc))
	router.GET("/firs", handleListFirs(uc))
	router.GET("/firs/count", handleGetFirCount(uc))
	router.GET("/firs/:fir_id", handleGetFir(uc))
	router.PATCH("/firs/:fir_id", bodyLimit, handleUpdateFir(uc))
	router.DELETE("/firs/:fir_id", handleDeleteFir(uc))
	router.POST("/firs/:fir_id/status", bodyLimit, handleUpdateFirStatus(uc))
	router.GET("/firs/:fir_id/status-updates", handleListStatusUpdates(uc))
	router.POST("/firs/:fir_id/status-updates", bodyLimit, handleCreateStatusUpdate(uc))
	router.GET("/firs/:fir_id/evidence", handleListFirEvidence(uc))
	router.POST("/firs/:fir_id/evidence", bodyLimit, handleCreateEvidence(uc))
	router.GET("/firs/:fir_id/document", handleGetFirDocument(uc))

	router.GET("/evidence/:evidence_id", handleGetEvidence(uc))

	router.GET("/search/firs", handleSearchFirs(uc))

	router.GET("/analytics/crime-types", handleCrimeTypeDistribution(uc))
	router.GET("/analytics/statuses", handleStatusDistribution(uc))
	router.GET("/analytics/priorities", handlePriorityDistribution(uc))
	router.GET("/analytics/monthly", handleMonthlyStats(uc))
	router.GET("/analytics/time-range", handleTimeRangeAnalytics(uc))

	router.POST("/users", bodyLimit, handleCreateUser(uc))
	router.GET("/users/by-username/:username", handleGetUserByUsername(uc))
	router.GET("/users/by-email/:email", handleGetUserByEmail(uc))
	router.GET("/users/:user_id", handleGetUser(uc))
	router.PATCH("/users/:user_id", bodyLimit, handleUpdateUser(uc))
	router.GET("/users/:user_id/firs", handleListReporterFirs(uc))
	router.GET("/users/:user_id/assigned-firs", handleListOfficerFirs(uc))
	router.GET("/users/:user_id/notifications", handleListUserNotifications(uc))
	router.POST("/users/:user_id/notifications/read-all", handleMarkAllNotificationsAsRead(uc))

	router.POST("/notifications", bodyLimit, handleCreateNotification(uc))
	router.POST("/notifications/:notification_id/read", handleMarkNotificationAsRead(uc))
}
