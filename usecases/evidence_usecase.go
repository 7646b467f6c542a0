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

type EvidenceRepository interface {
	GetFirByFirId(ctx context.Context, exec repositories.Executor, firId string, forUpdate bool) (*models.Fir, error)
	CreateEvidence(ctx context.Context, exec repositories.Executor, input models.CreateEvidenceInput, newId string) error
	GetEvidence(ctx context.Context, exec repositories.Executor, evidenceId string) (models.Evidence, error)
	ListEvidenceByFir(ctx context.Context, exec repositories.Executor, firId string) ([]models.Evidence, error)
}

type EvidenceUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      EvidenceRepository
}

// CreateEvidence records metadata about an artifact stored elsewhere.
func (usecase EvidenceUsecase) CreateEvidence(ctx context.Context, input models.CreateEvidenceInput) (models.Evidence, error) {
	input.Url = strings.TrimSpace(input.Url)
	input.Type = strings.TrimSpace(input.Type)
	input.Tags = models.NormalizeTags(input.Tags)
	if err := input.Validate(); err != nil {
		return models.Evidence{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	id := uuid.NewString()
	if err := usecase.repository.CreateEvidence(ctx, exec, input, id); err != nil {
		return models.Evidence{}, err
	}
	return usecase.repository.GetEvidence(ctx, exec, id)
}

func (usecase EvidenceUsecase) GetEvidence(ctx context.Context, evidenceId string) (models.Evidence, error) {
	if err := uuid.Validate(evidenceId); err != nil {
		return models.Evidence{}, errors.Wrapf(models.NotFoundError, "evidence %s", evidenceId)
	}
	return usecase.repository.GetEvidence(ctx, usecase.executorFactory.NewExecutor(), evidenceId)
}

func (usecase EvidenceUsecase) ListEvidenceByFir(ctx context.Context, firId string) ([]models.Evidence, error) {
	exec := usecase.executorFactory.NewExecutor()
	fir, err := usecase.repository.GetFirByFirId(ctx, exec, firId, false)
	if err != nil {
		return nil, err
	}
	if fir == nil {
		return nil, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}
	return usecase.repository.ListEvidenceByFir(ctx, exec, firId)
}
