// Package extraction turns a free text incident description into structured FIR fields
// with a language model, retrying until the answer passes validation.
package extraction

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

const (
	DefaultAttempts   = 3
	DefaultRetryDelay = time.Second
)

type Completer interface {
	Complete(ctx context.Context, instructions, input string) (string, error)
}

type idGenerator interface {
	New() string
}

type Pipeline struct {
	completer    Completer
	idGenerator  idGenerator
	limiter      *rate.Limiter
	instructions string
	guidance     []string
	attempts     uint
	retryDelay   time.Duration
}

type Option func(*Pipeline)

func WithRetryDelay(delay time.Duration) Option {
	return func(p *Pipeline) {
		p.retryDelay = delay
	}
}

// WithRateLimit caps the number of model calls per minute across every request of the process.
func WithRateLimit(requestsPerMinute int) Option {
	return func(p *Pipeline) {
		if requestsPerMinute > 0 {
			p.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
		}
	}
}

func WithGuidance(guidance []string) Option {
	return func(p *Pipeline) {
		p.guidance = guidance
	}
}

func NewPipeline(completer Completer, idGenerator idGenerator, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		completer:   completer,
		idGenerator: idGenerator,
		limiter:     rate.NewLimiter(rate.Inf, 1),
		attempts:    DefaultAttempts,
		retryDelay:  DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(p)
	}

	instructions, err := buildInstructions(p.guidance)
	if err != nil {
		return nil, err
	}
	p.instructions = instructions

	return p, nil
}

// Extract asks the model for the structured fields of text. Unparsable or invalid answers and provider
// errors are retried with a fixed delay; once the attempts are spent the error is an
// *models.ExtractionFailedError carrying the original text. The returned FirId is not persisted.
func (p *Pipeline) Extract(ctx context.Context, text string) (models.ExtractedFir, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ExtractedFir{}, models.FieldValidationError{"text": "is required"}
	}

	logger := utils.LoggerFromContext(ctx)
	start := time.Now()
	defer func() { extractionDuration.Observe(time.Since(start).Seconds()) }()

	attempt := 0
	extracted, err := retry.DoWithData(
		func() (models.ExtractedFir, error) {
			attempt++
			if err := p.limiter.Wait(ctx); err != nil {
				return models.ExtractedFir{}, retry.Unrecoverable(err)
			}

			raw, err := p.completer.Complete(ctx, p.instructions, text)
			if err != nil {
				extractionAttempts.WithLabelValues("provider_error").Inc()
				logger.WarnContext(ctx, "extraction provider call failed",
					slog.Int("attempt", attempt), slog.String("error", err.Error()))
				return models.ExtractedFir{}, err
			}

			result, err := parseExtraction(raw)
			if err != nil {
				extractionAttempts.WithLabelValues("invalid_output").Inc()
				logger.WarnContext(ctx, "extraction output rejected",
					slog.Int("attempt", attempt), slog.String("error", err.Error()))
				return models.ExtractedFir{}, err
			}

			extractionAttempts.WithLabelValues("success").Inc()
			return result, nil
		},
		retry.Attempts(p.attempts),
		retry.Delay(p.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			extractionResults.WithLabelValues("abandoned").Inc()
			return models.ExtractedFir{}, errors.Wrap(ctxErr, "extraction abandoned by caller")
		}
		extractionResults.WithLabelValues("failed").Inc()
		return models.ExtractedFir{}, &models.ExtractionFailedError{
			OriginalText: text,
			Attempts:     attempt,
			LastError:    err,
		}
	}

	extractionResults.WithLabelValues("success").Inc()
	extracted.FirId = p.idGenerator.New()
	return extracted, nil
}
