package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func (repo *DbRepository) CreateStatusUpdate(ctx context.Context, exec Executor, input models.CreateStatusUpdateInput, newId string) error {
	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_STATUS_UPDATES).
		Columns(
			"id",
			"fir_id",
			"status",
			"description",
			"updated_by",
			"internal_note",
			"is_public",
		).
		Values(
			newId,
			input.FirId,
			input.Status,
			input.Description,
			input.UpdatedBy,
			input.InternalNote,
			input.IsPublic,
		))
	if IsInvalidTextRepresentationError(err) {
		return errors.Wrapf(models.BadParameterError, "status update for fir %s: %s", input.FirId, err.Error())
	}
	if IsForeignKeyViolationError(err) {
		return errors.Wrapf(models.NotFoundError, "status update for fir %s: %s", input.FirId, violatedConstraint(err))
	}
	return err
}

// ListStatusUpdates returns the history of a FIR oldest first.
func (repo *DbRepository) ListStatusUpdates(ctx context.Context, exec Executor, firId string) ([]models.StatusUpdate, error) {
	return SqlToListOfModels(ctx, exec, NewQueryBuilder().
		Select(dbmodels.SelectStatusUpdateColumn...).
		From(dbmodels.TABLE_STATUS_UPDATES).
		Where(squirrel.Eq{"fir_id": firId}).
		OrderBy("created_at ASC", "id ASC"),
		dbmodels.AdaptStatusUpdate)
}
