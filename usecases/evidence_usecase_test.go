package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Adityakk9031/FirAgent/mocks"
	"github.com/Adityakk9031/FirAgent/models"
)

func TestEvidenceUsecase(t *testing.T) {
	ctx := context.Background()
	firId := "FIR-20240501-101"
	uploaderId := "7c1f5a0e-5d8e-4bb4-9f4e-2b0e8c9a4d11"

	newUsecase := func() (EvidenceUsecase, *mocks.Executor, *mocks.DbRepository) {
		exec := new(mocks.Executor)
		executorFactory := new(mocks.ExecutorFactory)
		executorFactory.On("NewExecutor").Return(exec)
		repository := new(mocks.DbRepository)
		return EvidenceUsecase{executorFactory: executorFactory, repository: repository}, exec, repository
	}

	t.Run("create normalizes the input and reads the row back", func(t *testing.T) {
		usecase, exec, repository := newUsecase()
		expected := models.CreateEvidenceInput{
			FirId:      firId,
			Url:        "s3://evidence/cctv.mp4",
			Type:       "video",
			UploadedBy: &uploaderId,
			Tags:       []string{"cctv", "entrance"},
		}
		var storedId string
		repository.On("CreateEvidence", ctx, exec, expected, mock.Anything).
			Run(func(args mock.Arguments) { storedId = args.String(3) }).
			Return(nil)
		repository.On("GetEvidence", ctx, exec, mock.Anything).
			Return(models.Evidence{Id: "stored", FirId: firId, Tags: expected.Tags}, nil)

		evidence, err := usecase.CreateEvidence(ctx, models.CreateEvidenceInput{
			FirId:      firId,
			Url:        "  s3://evidence/cctv.mp4 ",
			Type:       " video ",
			UploadedBy: &uploaderId,
			Tags:       []string{"Entrance", "cctv", " CCTV "},
		})

		assert.NoError(t, err)
		assert.Equal(t, firId, evidence.FirId)
		assert.NotEmpty(t, storedId)
		repository.AssertCalled(t, "GetEvidence", ctx, exec, storedId)
		repository.AssertExpectations(t)
	})

	t.Run("create validates before writing", func(t *testing.T) {
		usecase, _, repository := newUsecase()
		_, err := usecase.CreateEvidence(ctx, models.CreateEvidenceInput{FirId: firId, Url: " ", SizeBytes: -1})

		var fieldErrors models.FieldValidationError
		assert.True(t, errors.As(err, &fieldErrors))
		assert.Contains(t, fieldErrors, "url")
		assert.Contains(t, fieldErrors, "type")
		assert.Contains(t, fieldErrors, "sizeBytes")
		repository.AssertNotCalled(t, "CreateEvidence", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("create on an unknown fir is not found", func(t *testing.T) {
		usecase, exec, repository := newUsecase()
		repository.On("CreateEvidence", ctx, exec, mock.Anything, mock.Anything).
			Return(errors.Wrap(models.NotFoundError, "evidence for fir FIR-20240501-999: evidence_fir_id_fkey"))

		_, err := usecase.CreateEvidence(ctx, models.CreateEvidenceInput{
			FirId: "FIR-20240501-999",
			Url:   "s3://evidence/photo.jpg",
			Type:  "image",
		})

		assert.ErrorIs(t, err, models.NotFoundError)
		repository.AssertNotCalled(t, "GetEvidence", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("list on an unknown fir is not found", func(t *testing.T) {
		usecase, exec, repository := newUsecase()
		repository.On("GetFirByFirId", ctx, exec, "FIR-20240501-999", false).Return((*models.Fir)(nil), nil)

		_, err := usecase.ListEvidenceByFir(ctx, "FIR-20240501-999")

		assert.ErrorIs(t, err, models.ErrUnknownFir)
		repository.AssertNotCalled(t, "ListEvidenceByFir", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed evidence id is not found", func(t *testing.T) {
		usecase, _, repository := newUsecase()
		_, err := usecase.GetEvidence(ctx, "evidence-1")

		assert.ErrorIs(t, err, models.NotFoundError)
		repository.AssertNotCalled(t, "GetEvidence", mock.Anything, mock.Anything, mock.Anything)
	})
}
