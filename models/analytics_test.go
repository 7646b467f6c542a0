package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroFilledMonths(t *testing.T) {
	months := ZeroFilledMonths(map[int]int{2: 4, 11: 1})

	assert.Len(t, months, 12)
	total := 0
	for i, m := range months {
		assert.Equal(t, i+1, m.Month)
		total += m.Count
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 0, months[0].Count)
	assert.Equal(t, 4, months[1].Count)
}

func TestValidateAnalyticsYear(t *testing.T) {
	assert.NoError(t, ValidateAnalyticsYear(2024))
	assert.ErrorIs(t, ValidateAnalyticsYear(1969), BadParameterError)
}

func TestTimeRange_Validate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, TimeRange{Start: start, End: start}.Validate())
	assert.ErrorIs(t, TimeRange{Start: start.AddDate(0, 1, 0), End: start}.Validate(), BadParameterError)
	assert.ErrorIs(t, TimeRange{}.Validate(), BadParameterError)
}
