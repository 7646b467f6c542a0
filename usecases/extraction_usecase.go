package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
)

type firExtractor interface {
	Extract(ctx context.Context, text string) (models.ExtractedFir, error)
}

type firCreator interface {
	CreateFir(ctx context.Context, input models.CreateFirInput) (models.Fir, error)
}

type ExtractionUsecase struct {
	extractor  firExtractor
	firUsecase firCreator
}

// Extract returns the structured reading of text with a provisional FIR id. Nothing is stored.
func (usecase ExtractionUsecase) Extract(ctx context.Context, text string) (models.ExtractedFir, error) {
	if usecase.extractor == nil {
		return models.ExtractedFir{}, errors.Wrap(models.ErrExtractionFailed, "no language model is configured")
	}
	return usecase.extractor.Extract(ctx, text)
}

// RegisterFromText extracts the FIR fields from text and stores the FIR. No FIR is created when
// the extraction fails.
func (usecase ExtractionUsecase) RegisterFromText(ctx context.Context, text string, reporterId *string) (models.Fir, error) {
	extracted, err := usecase.Extract(ctx, text)
	if err != nil {
		return models.Fir{}, err
	}

	input := extracted.ToCreateFirInput()
	input.ReporterId = reporterId
	input.IsAnonymous = reporterId == nil
	return usecase.firUsecase.CreateFir(ctx, input)
}
