package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func (repo *DbRepository) CreateEvidence(ctx context.Context, exec Executor, input models.CreateEvidenceInput, newId string) error {
	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_EVIDENCE).
		Columns(
			"id",
			"fir_id",
			"url",
			"type",
			"original_name",
			"size_bytes",
			"description",
			"uploaded_by",
			"tags",
			"metadata",
		).
		Values(
			newId,
			input.FirId,
			input.Url,
			input.Type,
			input.OriginalName,
			input.SizeBytes,
			input.Description,
			input.UploadedBy,
			nonNil(input.Tags),
			input.Metadata,
		))
	if IsInvalidTextRepresentationError(err) {
		return errors.Wrapf(models.BadParameterError, "evidence: %s", err.Error())
	}
	if IsForeignKeyViolationError(err) {
		return errors.Wrapf(models.NotFoundError, "evidence for fir %s: %s", input.FirId, violatedConstraint(err))
	}
	return err
}

func (repo *DbRepository) GetEvidence(ctx context.Context, exec Executor, evidenceId string) (models.Evidence, error) {
	return SqlToModel(ctx, exec, NewQueryBuilder().
		Select(dbmodels.SelectEvidenceColumn...).
		From(dbmodels.TABLE_EVIDENCE).
		Where(squirrel.Eq{"id": evidenceId}),
		dbmodels.AdaptEvidence)
}

func (repo *DbRepository) ListEvidenceByFir(ctx context.Context, exec Executor, firId string) ([]models.Evidence, error) {
	return SqlToListOfModels(ctx, exec, NewQueryBuilder().
		Select(dbmodels.SelectEvidenceColumn...).
		From(dbmodels.TABLE_EVIDENCE).
		Where(squirrel.Eq{"fir_id": firId}).
		OrderBy("uploaded_at DESC"),
		dbmodels.AdaptEvidence)
}
