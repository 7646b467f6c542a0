package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func newMockExecutor(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestCreateFir_unique_violation_is_a_conflict(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}

	mock.ExpectExec(`INSERT INTO firs`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "firs_fir_id_idx"})

	err := repo.CreateFir(ctx, mock, models.CreateFirInput{
		FirId:       "FIR-20240101-123",
		Crime:       "theft",
		IpcSections: []string{"IPC 379"},
		Summary:     "summary",
		Priority:    3,
		Status:      models.FirStatusRegistered,
	}, "4a5b3f8e-8f5e-4a8e-9b1e-6c1d2e3f4a5b")

	assert.ErrorIs(t, err, models.ConflictError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFir_unknown_reporter_is_not_found(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}

	mock.ExpectExec(`INSERT INTO firs`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "firs_reporter_id_fkey"})

	err := repo.CreateFir(ctx, mock, models.CreateFirInput{FirId: "FIR-20240101-123"}, "id")

	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestGetFirByFirId_returns_nil_when_missing(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}

	mock.ExpectQuery(`SELECT .* FROM firs WHERE fir_id = \$1 FOR UPDATE`).
		WithArgs("FIR-20240101-123").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectFirColumn))

	fir, err := repo.GetFirByFirId(ctx, mock, "FIR-20240101-123", true)

	assert.NoError(t, err)
	assert.Nil(t, fir)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFirStatus(t *testing.T) {
	ctx := context.Background()
	repo := DbRepository{}
	closedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("writes status and closure together", func(t *testing.T) {
		mock := newMockExecutor(t)
		mock.ExpectExec(`UPDATE firs SET status = \$1, closed_at = \$2, updated_at = now\(\) WHERE fir_id = \$3`).
			WithArgs(models.FirStatusClosed, &closedAt, "FIR-20240101-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateFirStatus(ctx, mock, "FIR-20240101-123", models.FirStatusClosed, &closedAt)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing fir", func(t *testing.T) {
		mock := newMockExecutor(t)
		mock.ExpectExec(`UPDATE firs`).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateFirStatus(ctx, mock, "FIR-20240101-999", models.FirStatusUnderInvestigation, nil)

		assert.ErrorIs(t, err, models.NotFoundError)
	})
}

func TestCountFirs(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM firs`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountFirs(ctx, mock)

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestListStatusUpdates_is_chronological(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM status_updates WHERE fir_id = \$1 ORDER BY created_at ASC, id ASC`).
		WithArgs("FIR-20240101-123").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectStatusUpdateColumn).
			AddRow("su-1", "FIR-20240101-123", "REGISTERED", "FIR FIR-20240101-123 registered",
				(*string)(nil), created, (*string)(nil), true).
			AddRow("su-2", "FIR-20240101-123", "CLOSED", "Status changed from REGISTERED to CLOSED",
				(*string)(nil), created.Add(time.Hour), (*string)(nil), true))

	updates, err := repo.ListStatusUpdates(ctx, mock, "FIR-20240101-123")

	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, models.FirStatusRegistered, updates[0].Status)
	assert.Equal(t, models.FirStatusClosed, updates[1].Status)
}

func TestMarkAllNotificationsAsRead(t *testing.T) {
	ctx := context.Background()
	mock := newMockExecutor(t)
	repo := DbRepository{}

	mock.ExpectExec(`UPDATE notifications SET is_read = \$1 WHERE is_read = \$2 AND user_id = \$3`).
		WithArgs(true, false, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	count, err := repo.MarkAllNotificationsAsRead(ctx, mock, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
