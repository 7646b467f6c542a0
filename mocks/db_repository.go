package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
)

// DbRepository mocks every repository interface the usecases declare.
type DbRepository struct {
	mock.Mock
}

func (r *DbRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := r.Called(ctx, exec)
	return args.Error(0)
}

func (r *DbRepository) CreateFir(ctx context.Context, exec repositories.Executor, input models.CreateFirInput, newId string) error {
	args := r.Called(ctx, exec, input, newId)
	return args.Error(0)
}

func (r *DbRepository) GetFirByFirId(ctx context.Context, exec repositories.Executor, firId string, forUpdate bool) (*models.Fir, error) {
	args := r.Called(ctx, exec, firId, forUpdate)
	return args.Get(0).(*models.Fir), args.Error(1)
}

func (r *DbRepository) ListFirs(ctx context.Context, exec repositories.Executor, page models.Page) ([]models.Fir, error) {
	args := r.Called(ctx, exec, page)
	return args.Get(0).([]models.Fir), args.Error(1)
}

func (r *DbRepository) ListFirsByReporter(ctx context.Context, exec repositories.Executor, reporterId string, page models.Page) ([]models.Fir, error) {
	args := r.Called(ctx, exec, reporterId, page)
	return args.Get(0).([]models.Fir), args.Error(1)
}

func (r *DbRepository) ListFirsByOfficer(ctx context.Context, exec repositories.Executor, officerId string, page models.Page) ([]models.Fir, error) {
	args := r.Called(ctx, exec, officerId, page)
	return args.Get(0).([]models.Fir), args.Error(1)
}

func (r *DbRepository) CountFirs(ctx context.Context, exec repositories.Executor) (int, error) {
	args := r.Called(ctx, exec)
	return args.Int(0), args.Error(1)
}

func (r *DbRepository) UpdateFir(ctx context.Context, exec repositories.Executor, firId string, input models.UpdateFirInput) error {
	args := r.Called(ctx, exec, firId, input)
	return args.Error(0)
}

func (r *DbRepository) UpdateFirStatus(ctx context.Context, exec repositories.Executor, firId string,
	status models.FirStatus, closedAt *time.Time,
) error {
	args := r.Called(ctx, exec, firId, status, closedAt)
	return args.Error(0)
}

func (r *DbRepository) TouchFir(ctx context.Context, exec repositories.Executor, firId string) error {
	args := r.Called(ctx, exec, firId)
	return args.Error(0)
}

func (r *DbRepository) DeleteFir(ctx context.Context, exec repositories.Executor, firId string) error {
	args := r.Called(ctx, exec, firId)
	return args.Error(0)
}

func (r *DbRepository) CreateStatusUpdate(ctx context.Context, exec repositories.Executor, input models.CreateStatusUpdateInput, newId string) error {
	args := r.Called(ctx, exec, input, newId)
	return args.Error(0)
}

func (r *DbRepository) ListStatusUpdates(ctx context.Context, exec repositories.Executor, firId string) ([]models.StatusUpdate, error) {
	args := r.Called(ctx, exec, firId)
	return args.Get(0).([]models.StatusUpdate), args.Error(1)
}

func (r *DbRepository) CreateEvidence(ctx context.Context, exec repositories.Executor, input models.CreateEvidenceInput, newId string) error {
	args := r.Called(ctx, exec, input, newId)
	return args.Error(0)
}

func (r *DbRepository) GetEvidence(ctx context.Context, exec repositories.Executor, evidenceId string) (models.Evidence, error) {
	args := r.Called(ctx, exec, evidenceId)
	return args.Get(0).(models.Evidence), args.Error(1)
}

func (r *DbRepository) ListEvidenceByFir(ctx context.Context, exec repositories.Executor, firId string) ([]models.Evidence, error) {
	args := r.Called(ctx, exec, firId)
	return args.Get(0).([]models.Evidence), args.Error(1)
}

func (r *DbRepository) CreateNotification(ctx context.Context, exec repositories.Executor, input models.CreateNotificationInput, newId string) error {
	args := r.Called(ctx, exec, input, newId)
	return args.Error(0)
}

func (r *DbRepository) GetNotification(ctx context.Context, exec repositories.Executor, notificationId string) (models.Notification, error) {
	args := r.Called(ctx, exec, notificationId)
	return args.Get(0).(models.Notification), args.Error(1)
}

func (r *DbRepository) ListUserNotifications(ctx context.Context, exec repositories.Executor, userId string, unreadOnly bool) ([]models.Notification, error) {
	args := r.Called(ctx, exec, userId, unreadOnly)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (r *DbRepository) MarkNotificationAsRead(ctx context.Context, exec repositories.Executor, notificationId string) error {
	args := r.Called(ctx, exec, notificationId)
	return args.Error(0)
}

func (r *DbRepository) MarkAllNotificationsAsRead(ctx context.Context, exec repositories.Executor, userId string) (int, error) {
	args := r.Called(ctx, exec, userId)
	return args.Int(0), args.Error(1)
}

func (r *DbRepository) CreateUser(ctx context.Context, exec repositories.Executor, input models.CreateUserInput, newId string) error {
	args := r.Called(ctx, exec, input, newId)
	return args.Error(0)
}

func (r *DbRepository) GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *DbRepository) GetUserByUsername(ctx context.Context, exec repositories.Executor, username string) (models.User, error) {
	args := r.Called(ctx, exec, username)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *DbRepository) GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error) {
	args := r.Called(ctx, exec, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *DbRepository) UpdateUser(ctx context.Context, exec repositories.Executor, userId string, input models.UpdateUserInput) error {
	args := r.Called(ctx, exec, userId, input)
	return args.Error(0)
}

func (r *DbRepository) SearchFirs(ctx context.Context, exec repositories.Executor, params models.FirSearchParams) ([]models.Fir, error) {
	args := r.Called(ctx, exec, params)
	return args.Get(0).([]models.Fir), args.Error(1)
}

func (r *DbRepository) CountSearchFirs(ctx context.Context, exec repositories.Executor, params models.FirSearchParams) (int, error) {
	args := r.Called(ctx, exec, params)
	return args.Int(0), args.Error(1)
}

func (r *DbRepository) CrimeTypeDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.CrimeTypeCount, error) {
	args := r.Called(ctx, exec, timeRange)
	return args.Get(0).([]models.CrimeTypeCount), args.Error(1)
}

func (r *DbRepository) StatusDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.StatusCount, error) {
	args := r.Called(ctx, exec, timeRange)
	return args.Get(0).([]models.StatusCount), args.Error(1)
}

func (r *DbRepository) PriorityDistribution(ctx context.Context, exec repositories.Executor, timeRange *models.TimeRange) ([]models.PriorityCount, error) {
	args := r.Called(ctx, exec, timeRange)
	return args.Get(0).([]models.PriorityCount), args.Error(1)
}

func (r *DbRepository) MonthlyCounts(ctx context.Context, exec repositories.Executor, year int) (map[int]int, error) {
	args := r.Called(ctx, exec, year)
	return args.Get(0).(map[int]int), args.Error(1)
}

func (r *DbRepository) CountFirsCreatedIn(ctx context.Context, exec repositories.Executor, timeRange models.TimeRange) (int, error) {
	args := r.Called(ctx, exec, timeRange)
	return args.Int(0), args.Error(1)
}

func (r *DbRepository) AverageProcessingDays(ctx context.Context, exec repositories.Executor, timeRange models.TimeRange) (float64, error) {
	args := r.Called(ctx, exec, timeRange)
	return args.Get(0).(float64), args.Error(1)
}
