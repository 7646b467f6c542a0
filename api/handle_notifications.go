package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleListUserNotifications(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.NotificationsQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewNotificationUsecase()
		notifications, err := usecase.ListUserNotifications(ctx, c.Param("user_id"), query.UnreadOnly)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"notifications": dto.AdaptNotificationListDto(notifications)})
	}
}

func handleCreateNotification(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateNotificationBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewNotificationUsecase()
		notification, err := usecase.CreateNotification(ctx, dto.AdaptCreateNotificationInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"notification": dto.AdaptNotificationDto(notification)})
	}
}

func handleMarkNotificationAsRead(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewNotificationUsecase()
		if presentError(ctx, c, usecase.MarkNotificationAsRead(ctx, c.Param("notification_id"))) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleMarkAllNotificationsAsRead(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewNotificationUsecase()
		updated, err := usecase.MarkAllNotificationsAsRead(ctx, c.Param("user_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.MarkedAsRead{Updated: updated})
	}
}
