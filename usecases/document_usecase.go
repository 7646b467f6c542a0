package usecases

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
)

type DocumentRepository interface {
	GetFirByFirId(ctx context.Context, exec repositories.Executor, firId string, forUpdate bool) (*models.Fir, error)
	ListStatusUpdates(ctx context.Context, exec repositories.Executor, firId string) ([]models.StatusUpdate, error)
}

type firRenderer interface {
	RenderFir(w io.Writer, fir models.Fir, history []models.StatusUpdate) error
}

type DocumentUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      DocumentRepository
	renderer        firRenderer
}

// WriteFirDocument renders the FIR and its public history as a PDF into w.
func (usecase DocumentUsecase) WriteFirDocument(ctx context.Context, firId string, w io.Writer) error {
	exec := usecase.executorFactory.NewExecutor()
	fir, err := usecase.repository.GetFirByFirId(ctx, exec, firId, false)
	if err != nil {
		return err
	}
	if fir == nil {
		return errors.Wrapf(models.ErrUnknownFir, "fir %s", firId)
	}

	history, err := usecase.repository.ListStatusUpdates(ctx, exec, firId)
	if err != nil {
		return err
	}

	if err := usecase.renderer.RenderFir(w, *fir, history); err != nil {
		return errors.Wrapf(err, "could not render document for fir %s", firId)
	}
	return nil
}
