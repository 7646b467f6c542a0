package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, exec repositories.Executor, input models.CreateNotificationInput, newId string) error
	GetNotification(ctx context.Context, exec repositories.Executor, notificationId string) (models.Notification, error)
	ListUserNotifications(ctx context.Context, exec repositories.Executor, userId string, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationAsRead(ctx context.Context, exec repositories.Executor, notificationId string) error
	MarkAllNotificationsAsRead(ctx context.Context, exec repositories.Executor, userId string) (int, error)
}

type NotificationUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      NotificationRepository
}

func (usecase NotificationUsecase) CreateNotification(ctx context.Context, input models.CreateNotificationInput) (models.Notification, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Message = strings.TrimSpace(input.Message)
	if err := input.Validate(); err != nil {
		return models.Notification{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	id := uuid.NewString()
	if err := usecase.repository.CreateNotification(ctx, exec, input, id); err != nil {
		return models.Notification{}, err
	}
	return usecase.repository.GetNotification(ctx, exec, id)
}

// ListUserNotifications returns the newest notifications first.
func (usecase NotificationUsecase) ListUserNotifications(ctx context.Context, userId string, unreadOnly bool) ([]models.Notification, error) {
	if err := uuid.Validate(userId); err != nil {
		return nil, errors.Wrapf(models.ErrUnknownUser, "user %s", userId)
	}
	return usecase.repository.ListUserNotifications(ctx, usecase.executorFactory.NewExecutor(), userId, unreadOnly)
}

func (usecase NotificationUsecase) MarkNotificationAsRead(ctx context.Context, notificationId string) error {
	if err := uuid.Validate(notificationId); err != nil {
		return errors.Wrapf(models.NotFoundError, "notification %s", notificationId)
	}
	return usecase.repository.MarkNotificationAsRead(ctx, usecase.executorFactory.NewExecutor(), notificationId)
}

// MarkAllNotificationsAsRead returns how many notifications were unread.
func (usecase NotificationUsecase) MarkAllNotificationsAsRead(ctx context.Context, userId string) (int, error) {
	if err := uuid.Validate(userId); err != nil {
		return 0, errors.Wrapf(models.ErrUnknownUser, "user %s", userId)
	}
	return usecase.repository.MarkAllNotificationsAsRead(ctx, usecase.executorFactory.NewExecutor(), userId)
}
