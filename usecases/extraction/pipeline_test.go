package extraction

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/models"
)

const validAnswer = `{"crime":"theft","ipcSections":["IPC 379"],"summary":"Phone stolen.","priority":3}`

type scriptedCompleter struct {
	answers []string
	errs    []error
	calls   int
	inputs  []string
}

func (c *scriptedCompleter) Complete(ctx context.Context, instructions, input string) (string, error) {
	i := c.calls
	c.calls++
	c.inputs = append(c.inputs, input)
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.answers) {
		return c.answers[i], nil
	}
	return c.answers[len(c.answers)-1], nil
}

type fixedIdGenerator string

func (g fixedIdGenerator) New() string { return string(g) }

func newTestPipeline(t *testing.T, completer Completer) *Pipeline {
	t.Helper()
	pipeline, err := NewPipeline(completer, fixedIdGenerator("FIR-20240501-321"), WithRetryDelay(time.Millisecond))
	require.NoError(t, err)
	return pipeline
}

func TestExtract_success_attaches_provisional_fir_id(t *testing.T) {
	completer := &scriptedCompleter{answers: []string{"```json\n" + validAnswer + "\n```"}}

	extracted, err := newTestPipeline(t, completer).Extract(context.Background(), "  someone stole my phone ")

	require.NoError(t, err)
	assert.Equal(t, 1, completer.calls)
	assert.Equal(t, []string{"someone stole my phone"}, completer.inputs)
	assert.Equal(t, "theft", extracted.Crime)
	assert.Equal(t, "FIR-20240501-321", extracted.FirId)
}

func TestExtract_retries_until_valid(t *testing.T) {
	completer := &scriptedCompleter{
		answers: []string{"no idea", validAnswer},
	}

	extracted, err := newTestPipeline(t, completer).Extract(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, 2, completer.calls)
	assert.Equal(t, 3, extracted.Priority)
}

func TestExtract_provider_errors_share_the_retry_budget(t *testing.T) {
	completer := &scriptedCompleter{
		errs:    []error{errors.New("503 from provider"), nil},
		answers: []string{"", validAnswer},
	}

	_, err := newTestPipeline(t, completer).Extract(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, 2, completer.calls)
}

func TestExtract_fails_after_three_attempts_without_json(t *testing.T) {
	completer := &scriptedCompleter{answers: []string{"I cannot find anything to extract."}}

	_, err := newTestPipeline(t, completer).Extract(context.Background(), "my bicycle is gone")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrExtractionFailed)
	assert.Equal(t, DefaultAttempts, completer.calls)

	var failed *models.ExtractionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "my bicycle is gone", failed.OriginalText)
	assert.Equal(t, 3, failed.Attempts)
}

func TestExtract_rejects_empty_text_without_calling_the_model(t *testing.T) {
	completer := &scriptedCompleter{answers: []string{validAnswer}}

	_, err := newTestPipeline(t, completer).Extract(context.Background(), " \n ")

	assert.ErrorIs(t, err, models.BadParameterError)
	assert.Equal(t, 0, completer.calls)
}

func TestExtract_waits_the_retry_delay(t *testing.T) {
	completer := &scriptedCompleter{answers: []string{"nope"}}
	pipeline, err := NewPipeline(completer, fixedIdGenerator("FIR-20240501-321"), WithRetryDelay(20*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = pipeline.Extract(context.Background(), "text")

	assert.ErrorIs(t, err, models.ErrExtractionFailed)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestExtract_caller_cancellation(t *testing.T) {
	completer := &scriptedCompleter{answers: []string{"nope"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPipeline(t, completer).Extract(ctx, "text")

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, models.ErrExtractionFailed)
}
