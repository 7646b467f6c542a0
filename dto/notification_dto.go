package dto

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

type APINotification struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	FirId     *string   `json:"firId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Link      *string   `json:"link"`
}

func AdaptNotificationDto(n models.Notification) APINotification {
	return APINotification{
		Id:        n.Id,
		UserId:    n.UserId,
		FirId:     n.FirId,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		Link:      n.Link,
	}
}

func AdaptNotificationListDto(notifications []models.Notification) []APINotification {
	return pure_utils.Map(notifications, AdaptNotificationDto)
}

type CreateNotificationBody struct {
	UserId  string  `json:"userId" binding:"required,uuid"`
	FirId   *string `json:"firId" binding:"omitempty,fir_id"`
	Title   string  `json:"title" binding:"required"`
	Message string  `json:"message" binding:"required"`
	Type    string  `json:"type" binding:"omitempty,oneof=STATUS_UPDATE ASSIGNMENT INFO"`
	Link    *string `json:"link"`
}

func AdaptCreateNotificationInput(body CreateNotificationBody) models.CreateNotificationInput {
	return models.CreateNotificationInput{
		UserId:  body.UserId,
		FirId:   body.FirId,
		Title:   body.Title,
		Message: body.Message,
		Type:    models.NotificationType(body.Type),
		Link:    pure_utils.NilIfBlank(body.Link),
	}
}

type NotificationsQuery struct {
	UnreadOnly bool `form:"unreadOnly"`
}

type MarkedAsRead struct {
	Updated int `json:"updated"`
}
