package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func (repo *DbRepository) CreateNotification(ctx context.Context, exec Executor, input models.CreateNotificationInput, newId string) error {
	notificationType := input.Type
	if notificationType == "" {
		notificationType = models.NotificationTypeInfo
	}

	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_NOTIFICATIONS).
		Columns(
			"id",
			"user_id",
			"fir_id",
			"title",
			"message",
			"type",
			"link",
		).
		Values(
			newId,
			input.UserId,
			input.FirId,
			input.Title,
			input.Message,
			notificationType,
			input.Link,
		))
	if IsInvalidTextRepresentationError(err) {
		return errors.Wrapf(models.BadParameterError, "notification: %s", err.Error())
	}
	if IsForeignKeyViolationError(err) {
		return errors.Wrapf(models.NotFoundError, "notification target: %s", violatedConstraint(err))
	}
	return err
}

func (repo *DbRepository) GetNotification(ctx context.Context, exec Executor, notificationId string) (models.Notification, error) {
	return SqlToModel(ctx, exec, NewQueryBuilder().
		Select(dbmodels.SelectNotificationColumn...).
		From(dbmodels.TABLE_NOTIFICATIONS).
		Where(squirrel.Eq{"id": notificationId}),
		dbmodels.AdaptNotification)
}

func (repo *DbRepository) ListUserNotifications(ctx context.Context, exec Executor, userId string, unreadOnly bool) ([]models.Notification, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectNotificationColumn...).
		From(dbmodels.TABLE_NOTIFICATIONS).
		Where(squirrel.Eq{"user_id": userId}).
		OrderBy("created_at DESC")
	if unreadOnly {
		query = query.Where(squirrel.Eq{"is_read": false})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptNotification)
}

func (repo *DbRepository) MarkNotificationAsRead(ctx context.Context, exec Executor, notificationId string) error {
	tag, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Update(dbmodels.TABLE_NOTIFICATIONS).
		Set("is_read", true).
		Where(squirrel.Eq{"id": notificationId}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.NotFoundError, "notification %s", notificationId)
	}
	return nil
}

// MarkAllNotificationsAsRead returns how many notifications changed state.
func (repo *DbRepository) MarkAllNotificationsAsRead(ctx context.Context, exec Executor, userId string) (int, error) {
	tag, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Update(dbmodels.TABLE_NOTIFICATIONS).
		Set("is_read", true).
		Where(squirrel.Eq{"user_id": userId, "is_read": false}))
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
