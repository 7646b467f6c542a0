package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
)

type FirStatusRepository interface {
	GetFirByFirId(ctx context.Context, exec repositories.Executor, firId string, forUpdate bool) (*models.Fir, error)
	UpdateFirStatus(ctx context.Context, exec repositories.Executor, firId string, status models.FirStatus, closedAt *time.Time) error
	TouchFir(ctx context.Context, exec repositories.Executor, firId string) error
	CreateStatusUpdate(ctx context.Context, exec repositories.Executor, input models.CreateStatusUpdateInput, newId string) error
	ListStatusUpdates(ctx context.Context, exec repositories.Executor, firId string) ([]models.StatusUpdate, error)
	CreateNotification(ctx context.Context, exec repositories.Executor, input models.CreateNotificationInput, newId string) error
}

type FirStatusUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         FirStatusRepository
	analyticsCache     analyticsInvalidator
	now                func() time.Time
}

// UpdateFirStatus moves the FIR to a new status. The status, the closure timestamp, the history entry and
// the reporter notification are written in one transaction, with the FIR row locked.
func (usecase FirStatusUsecase) UpdateFirStatus(ctx context.Context, firId string, change models.FirStatusChange) (models.Fir, error) {
	change = change.Normalize()
	if err := change.Validate(); err != nil {
		return models.Fir{}, err
	}

	fir, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Executor,
	) (models.Fir, error) {
		current, err := usecase.repository.GetFirByFirId(ctx, tx, firId, true)
		if err != nil {
			return models.Fir{}, err
		}
		if current == nil {
			return models.Fir{}, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
		}

		closedAt := usecase.closedAt(*current, change.Status)
		if err := usecase.repository.UpdateFirStatus(ctx, tx, firId, change.Status, closedAt); err != nil {
			return models.Fir{}, err
		}
		if err := usecase.repository.CreateStatusUpdate(ctx, tx,
			models.TransitionStatusUpdate(firId, current.Status, change), uuid.NewString()); err != nil {
			return models.Fir{}, err
		}
		if current.ReporterId != nil {
			if err := usecase.repository.CreateNotification(ctx, tx,
				models.StatusChangeNotification(*current, change.Status), uuid.NewString()); err != nil {
				return models.Fir{}, err
			}
		}

		updated, err := usecase.repository.GetFirByFirId(ctx, tx, firId, false)
		if err != nil {
			return models.Fir{}, err
		}
		if updated == nil {
			return models.Fir{}, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
		}
		return *updated, nil
	})
	if err != nil {
		return models.Fir{}, err
	}

	invalidateAnalytics(ctx, usecase.analyticsCache)
	return fir, nil
}

// closedAt keeps the first closure time of a FIR closed again, and clears it when the FIR is reopened.
func (usecase FirStatusUsecase) closedAt(current models.Fir, next models.FirStatus) *time.Time {
	if !next.IsTerminal() {
		return nil
	}
	if current.Status.IsTerminal() && current.ClosedAt != nil {
		return current.ClosedAt
	}
	now := time.Now
	if usecase.now != nil {
		now = usecase.now
	}
	closedAt := now().UTC()
	return &closedAt
}

// AddStatusNote appends a history entry at the current status of the FIR without changing it.
func (usecase FirStatusUsecase) AddStatusNote(ctx context.Context, firId string, note models.FirNote) (models.StatusUpdate, error) {
	if err := note.Validate(); err != nil {
		return models.StatusUpdate{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Executor,
	) (models.StatusUpdate, error) {
		current, err := usecase.repository.GetFirByFirId(ctx, tx, firId, true)
		if err != nil {
			return models.StatusUpdate{}, err
		}
		if current == nil {
			return models.StatusUpdate{}, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
		}

		id := uuid.NewString()
		input := models.CreateStatusUpdateInput{
			FirId:        firId,
			Status:       current.Status,
			Description:  note.Description,
			UpdatedBy:    note.ActorId,
			InternalNote: note.InternalNote,
			IsPublic:     note.IsPublic,
		}
		if err := usecase.repository.CreateStatusUpdate(ctx, tx, input, id); err != nil {
			return models.StatusUpdate{}, err
		}
		if err := usecase.repository.TouchFir(ctx, tx, firId); err != nil {
			return models.StatusUpdate{}, err
		}

		history, err := usecase.repository.ListStatusUpdates(ctx, tx, firId)
		if err != nil {
			return models.StatusUpdate{}, err
		}
		for _, update := range history {
			if update.Id == id {
				return update, nil
			}
		}
		return models.StatusUpdate{}, errors.Newf("status update %s not readable after insert", id)
	})
}

// ListStatusUpdates returns the history of a FIR, oldest first.
func (usecase FirStatusUsecase) ListStatusUpdates(ctx context.Context, firId string) ([]models.StatusUpdate, error) {
	exec := usecase.executorFactory.NewExecutor()
	fir, err := usecase.repository.GetFirByFirId(ctx, exec, firId, false)
	if err != nil {
		return nil, err
	}
	if fir == nil {
		return nil, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return usecase.repository.ListStatusUpdates(ctx, exec, firId)
}
