package usecases

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/TwiN/deepmerge"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
	"github.com/Adityakk9031/FirAgent/utils"
)

var firsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "firagent_firs_created_total",
	Help: "FIRs stored, by origin of their identifier",
}, []string{"origin"})

type FirRepository interface {
	CreateFir(ctx context.Context, exec repositories.Executor, input models.CreateFirInput, newId string) error
	GetFirByFirId(ctx context.Context, exec repositories.Executor, firId string, forUpdate bool) (*models.Fir, error)
	ListFirs(ctx context.Context, exec repositories.Executor, page models.Page) ([]models.Fir, error)
	ListFirsByReporter(ctx context.Context, exec repositories.Executor, reporterId string, page models.Page) ([]models.Fir, error)
	ListFirsByOfficer(ctx context.Context, exec repositories.Executor, officerId string, page models.Page) ([]models.Fir, error)
	CountFirs(ctx context.Context, exec repositories.Executor) (int, error)
	UpdateFir(ctx context.Context, exec repositories.Executor, firId string, input models.UpdateFirInput) error
	DeleteFir(ctx context.Context, exec repositories.Executor, firId string) error
	CreateStatusUpdate(ctx context.Context, exec repositories.Executor, input models.CreateStatusUpdateInput, newId string) error
	CreateNotification(ctx context.Context, exec repositories.Executor, input models.CreateNotificationInput, newId string) error
}

type analyticsInvalidator interface {
	Invalidate(ctx context.Context) error
}

type firIdGenerator interface {
	New() string
}

type FirUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         FirRepository
	analyticsCache     analyticsInvalidator
	idGenerator        firIdGenerator
}

// CreateFir stores the FIR and its genesis status update in one transaction. When the caller did not
// pick the identifier, a colliding generated one is replaced once before the conflict is returned.
func (usecase FirUsecase) CreateFir(ctx context.Context, input models.CreateFirInput) (models.Fir, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return models.Fir{}, err
	}

	generated := input.FirId == ""
	if generated {
		input.FirId = usecase.idGenerator.New()
	}

	fir, err := usecase.createFir(ctx, input)
	if generated && errors.Is(err, models.ConflictError) {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "generated fir id collided, retrying once",
			slog.String("fir_id", input.FirId))
		input.FirId = usecase.idGenerator.New()
		fir, err = usecase.createFir(ctx, input)
	}
	if err != nil {
		return models.Fir{}, err
	}

	origin := "provided"
	if generated {
		origin = "generated"
	}
	firsCreated.WithLabelValues(origin).Inc()
	usecase.invalidateAnalytics(ctx)

	return fir, nil
}

func (usecase FirUsecase) createFir(ctx context.Context, input models.CreateFirInput) (models.Fir, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory, func(
		tx repositories.Executor,
	) (models.Fir, error) {
		if err := usecase.repository.CreateFir(ctx, tx, input, uuid.NewString()); err != nil {
			return models.Fir{}, err
		}
		genesis := models.GenesisStatusUpdate(input.FirId, input.ReporterId)
		if err := usecase.repository.CreateStatusUpdate(ctx, tx, genesis, uuid.NewString()); err != nil {
			return models.Fir{}, err
		}
		if input.OfficerId != nil {
			fir := models.Fir{FirId: input.FirId, Crime: input.Crime}
			if err := usecase.repository.CreateNotification(ctx, tx,
				models.AssignmentNotification(fir, *input.OfficerId), uuid.NewString()); err != nil {
				return models.Fir{}, err
			}
		}

		fir, err := usecase.repository.GetFirByFirId(ctx, tx, input.FirId, false)
		if err != nil {
			return models.Fir{}, err
		}
		if fir == nil {
			return models.Fir{}, errors.Newf("fir %s not readable after insert", input.FirId)
		}
		return *fir, nil
	})
}

// GetFir returns nil without error when no FIR has this identifier.
func (usecase FirUsecase) GetFir(ctx context.Context, firId string) (*models.Fir, error) {
	return usecase.repository.GetFirByFirId(ctx, usecase.executorFactory.NewExecutor(), firId, false)
}

func (usecase FirUsecase) ListFirs(ctx context.Context, page models.Page) ([]models.Fir, error) {
	page = page.WithDefaults()
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return usecase.repository.ListFirs(ctx, usecase.executorFactory.NewExecutor(), page)
}

func (usecase FirUsecase) ListFirsByReporter(ctx context.Context, reporterId string, page models.Page) ([]models.Fir, error) {
	if err := uuid.Validate(reporterId); err != nil {
		return nil, errors.Wrapf(models.ErrUnknownUser, "user %s", reporterId)
	}
	page = page.WithDefaults()
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return usecase.repository.ListFirsByReporter(ctx, usecase.executorFactory.NewExecutor(), reporterId, page)
}

func (usecase FirUsecase) ListFirsByOfficer(ctx context.Context, officerId string, page models.Page) ([]models.Fir, error) {
	if err := uuid.Validate(officerId); err != nil {
		return nil, errors.Wrapf(models.ErrUnknownUser, "user %s", officerId)
	}
	page = page.WithDefaults()
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return usecase.repository.ListFirsByOfficer(ctx, usecase.executorFactory.NewExecutor(), officerId, page)
}

func (usecase FirUsecase) GetFirCount(ctx context.Context) (int, error) {
	return usecase.repository.CountFirs(ctx, usecase.executorFactory.NewExecutor())
}

// UpdateFir applies a partial update. Metadata is merged into the stored document rather than replacing it,
// and assigning a new officer notifies them.
func (usecase FirUsecase) UpdateFir(ctx context.Context, firId string, input models.UpdateFirInput) (models.Fir, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
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
		if input.IsEmpty() {
			return *current, nil
		}

		if input.Metadata != nil {
			merged, err := mergeMetadata(current.Metadata, input.Metadata)
			if err != nil {
				return models.Fir{}, err
			}
			input.Metadata = merged
		}

		if err := usecase.repository.UpdateFir(ctx, tx, firId, input); err != nil {
			return models.Fir{}, err
		}
		if input.AssignsOfficer(current.OfficerId) {
			if err := usecase.repository.CreateNotification(ctx, tx,
				models.AssignmentNotification(*current, input.OfficerId.String), uuid.NewString()); err != nil {
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

	usecase.invalidateAnalytics(ctx)
	return fir, nil
}

func (usecase FirUsecase) DeleteFir(ctx context.Context, firId string) error {
	if err := usecase.repository.DeleteFir(ctx, usecase.executorFactory.NewExecutor(), firId); err != nil {
		return err
	}
	usecase.invalidateAnalytics(ctx)
	return nil
}

func (usecase FirUsecase) invalidateAnalytics(ctx context.Context) {
	invalidateAnalytics(ctx, usecase.analyticsCache)
}

// invalidateAnalytics drops cached aggregates after a write, a failure only makes them stale until their TTL.
func invalidateAnalytics(ctx context.Context, cache analyticsInvalidator) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "could not invalidate analytics cache",
			slog.String("error", err.Error()))
	}
}

// mergeMetadata deep merges patch into current, values of patch winning on conflicting keys.
func mergeMetadata(current, patch map[string]any) (map[string]any, error) {
	if len(current) == 0 {
		return patch, nil
	}
	dst, err := json.Marshal(current)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal stored metadata")
	}
	src, err := json.Marshal(patch)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal metadata patch")
	}
	merged, err := deepmerge.JSON(dst, src, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return nil, errors.Wrap(models.BadParameterError, err.Error())
	}

	out := map[string]any{}
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal merged metadata")
	}
	return out, nil
}
