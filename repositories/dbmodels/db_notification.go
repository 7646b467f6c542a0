package dbmodels

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

type DBNotification struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	FirId     *string   `db:"fir_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
	Link      *string   `db:"link"`
}

const TABLE_NOTIFICATIONS = "notifications"

var SelectNotificationColumn = utils.ColumnList[DBNotification]()

func AdaptNotification(db DBNotification) (models.Notification, error) {
	return models.Notification{
		Id:        db.Id,
		UserId:    db.UserId,
		FirId:     db.FirId,
		Title:     db.Title,
		Message:   db.Message,
		Type:      models.NotificationType(db.Type),
		IsRead:    db.IsRead,
		CreatedAt: db.CreatedAt.UTC(),
		Link:      db.Link,
	}, nil
}
