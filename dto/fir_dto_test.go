package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/models"
)

func TestUpdateFirBody_distinguishes_absent_and_cleared(t *testing.T) {
	var body UpdateFirBody
	require.NoError(t, json.Unmarshal([]byte(`{"location": "", "priority": 4}`), &body))

	input := AdaptUpdateFirInput(body)
	assert.True(t, input.Location.Valid)
	assert.Equal(t, "", input.Location.String)
	assert.False(t, input.District.Valid)
	assert.Equal(t, 4, *input.Priority)
	assert.Nil(t, input.Crime)
}

func TestAdaptFirDto_serializes_camel_case(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	raw, err := json.Marshal(AdaptFirDto(models.Fir{
		FirId:     "FIR-20240501-101",
		Crime:     "theft",
		Status:    models.FirStatusRegistered,
		CreatedAt: created,
	}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "FIR-20240501-101", decoded["firId"])
	assert.Equal(t, "2024-05-01T09:30:00Z", decoded["createdAt"])
	assert.Equal(t, []any{}, decoded["ipcSections"])
	assert.Nil(t, decoded["closedAt"])
}

func TestAdaptFirSearchParams(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	params := AdaptFirSearchParams(SearchFirsQuery{
		Statuses:    []string{"CLOSED", "REGISTERED"},
		CreatedFrom: from,
		Limit:       5,
	})

	assert.Equal(t, []models.FirStatus{models.FirStatusClosed, models.FirStatusRegistered}, params.Statuses)
	assert.Equal(t, &from, params.CreatedFrom)
	assert.Nil(t, params.CreatedTo)
	assert.Equal(t, 5, params.Page.Limit)
}
