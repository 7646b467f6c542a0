package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func (repo *DbRepository) CreateFir(ctx context.Context, exec Executor, input models.CreateFirInput, newId string) error {
	var closedAt any
	if input.Status.IsTerminal() {
		closedAt = squirrel.Expr("now()")
	}

	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_FIRS).
		Columns(
			"id",
			"fir_id",
			"reporter_id",
			"officer_id",
			"crime",
			"ipc_sections",
			"summary",
			"priority",
			"incident_date_time",
			"location",
			"latitude",
			"longitude",
			"district",
			"state",
			"suspects",
			"victims",
			"witnesses",
			"status",
			"tags",
			"is_anonymous",
			"closed_at",
			"metadata",
		).
		Values(
			newId,
			input.FirId,
			input.ReporterId,
			input.OfficerId,
			input.Crime,
			input.IpcSections,
			input.Summary,
			input.Priority,
			input.IncidentDateTime,
			input.Location,
			input.Latitude,
			input.Longitude,
			input.District,
			input.State,
			nonNil(input.Suspects),
			nonNil(input.Victims),
			nonNil(input.Witnesses),
			input.Status,
			nonNil(input.Tags),
			input.IsAnonymous,
			closedAt,
			input.Metadata,
		))

	return translateWriteError(err, input.FirId)
}

func (repo *DbRepository) GetFirByFirId(ctx context.Context, exec Executor, firId string, forUpdate bool) (*models.Fir, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFirColumn...).
		From(dbmodels.TABLE_FIRS).
		Where(squirrel.Eq{"fir_id": firId})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptFir)
}

func (repo *DbRepository) ListFirs(ctx context.Context, exec Executor, page models.Page) ([]models.Fir, error) {
	return repo.listFirsWhere(ctx, exec, nil, page)
}

func (repo *DbRepository) ListFirsByReporter(ctx context.Context, exec Executor, reporterId string, page models.Page) ([]models.Fir, error) {
	return repo.listFirsWhere(ctx, exec, squirrel.Eq{"reporter_id": reporterId}, page)
}

func (repo *DbRepository) ListFirsByOfficer(ctx context.Context, exec Executor, officerId string, page models.Page) ([]models.Fir, error) {
	return repo.listFirsWhere(ctx, exec, squirrel.Eq{"officer_id": officerId}, page)
}

func (repo *DbRepository) listFirsWhere(ctx context.Context, exec Executor, where squirrel.Sqlizer, page models.Page) ([]models.Fir, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFirColumn...).
		From(dbmodels.TABLE_FIRS).
		OrderBy("created_at DESC", "fir_id DESC").
		Limit(uint64(page.Limit)).
		Offset(page.Offset())
	if where != nil {
		query = query.Where(where)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptFir)
}

func (repo *DbRepository) CountFirs(ctx context.Context, exec Executor) (int, error) {
	return ScanScalar[int](ctx, exec, NewQueryBuilder().Select("COUNT(*)").From(dbmodels.TABLE_FIRS))
}

// UpdateFir writes the non-empty fields of input. Metadata, when set, replaces the stored document.
func (repo *DbRepository) UpdateFir(ctx context.Context, exec Executor, firId string, input models.UpdateFirInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_FIRS).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"fir_id": firId})

	if input.OfficerId.Valid {
		query = query.Set("officer_id", emptyAsNull(input.OfficerId.String))
	}
	if input.Crime != nil {
		query = query.Set("crime", *input.Crime)
	}
	if input.IpcSections != nil {
		query = query.Set("ipc_sections", *input.IpcSections)
	}
	if input.Summary != nil {
		query = query.Set("summary", *input.Summary)
	}
	if input.Priority != nil {
		query = query.Set("priority", *input.Priority)
	}
	if input.IncidentDateTime.Valid {
		query = query.Set("incident_date_time", emptyAsNull(input.IncidentDateTime.String))
	}
	if input.Location.Valid {
		query = query.Set("location", emptyAsNull(input.Location.String))
	}
	if input.Latitude.Valid {
		query = query.Set("latitude", input.Latitude.Float64)
	}
	if input.Longitude.Valid {
		query = query.Set("longitude", input.Longitude.Float64)
	}
	if input.District.Valid {
		query = query.Set("district", emptyAsNull(input.District.String))
	}
	if input.State.Valid {
		query = query.Set("state", emptyAsNull(input.State.String))
	}
	if input.Suspects != nil {
		query = query.Set("suspects", nonNil(*input.Suspects))
	}
	if input.Victims != nil {
		query = query.Set("victims", nonNil(*input.Victims))
	}
	if input.Witnesses != nil {
		query = query.Set("witnesses", nonNil(*input.Witnesses))
	}
	if input.Tags != nil {
		query = query.Set("tags", nonNil(*input.Tags))
	}
	if input.IsAnonymous != nil {
		query = query.Set("is_anonymous", *input.IsAnonymous)
	}
	if input.Metadata != nil {
		query = query.Set("metadata", input.Metadata)
	}

	tag, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return translateWriteError(err, firId)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return nil
}

// UpdateFirStatus sets the status and the closure timestamp together, closedAt must be nil unless status is CLOSED.
func (repo *DbRepository) UpdateFirStatus(
	ctx context.Context,
	exec Executor,
	firId string,
	status models.FirStatus,
	closedAt *time.Time,
) error {
	tag, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Update(dbmodels.TABLE_FIRS).
		Set("status", status).
		Set("closed_at", closedAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"fir_id": firId}))
	if err != nil {
		return translateWriteError(err, firId)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return nil
}

// TouchFir bumps updated_at, used when history is appended without changing the FIR itself.
func (repo *DbRepository) TouchFir(ctx context.Context, exec Executor, firId string) error {
	tag, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Update(dbmodels.TABLE_FIRS).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"fir_id": firId}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return nil
}

// DeleteFir removes the FIR; status updates and evidence go with it through ON DELETE CASCADE.
func (repo *DbRepository) DeleteFir(ctx context.Context, exec Executor, firId string) error {
	tag, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Delete(dbmodels.TABLE_FIRS).
		Where(squirrel.Eq{"fir_id": firId}))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return nil
}

// translateWriteError maps constraint violations to the domain errors the API knows how to render.
func translateWriteError(err error, firId string) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolationError(err):
		return errors.Wrapf(models.ErrFirIdAlreadyExists, "fir %s", firId)
	case IsForeignKeyViolationError(err):
		return errors.Wrapf(models.ErrUnknownUser, "fir %s references a missing user (%s)", firId, violatedConstraint(err))
	case IsCheckViolationError(err):
		return errors.Wrapf(models.BadParameterError, "fir %s violates %s", firId, violatedConstraint(err))
	case IsInvalidTextRepresentationError(err):
		return errors.Wrapf(models.BadParameterError, "fir %s: %s", firId, err.Error())
	default:
		return err
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func emptyAsNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
