package document

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/models"
)

func TestRenderFir(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	closed := created.Add(72 * time.Hour)
	location := "MG Road, Pune"
	fir := models.Fir{
		FirId:       "FIR-20240501-482",
		Crime:       "theft",
		IpcSections: []string{"IPC 379", "IPC 411"},
		Summary:     "Mobile phone stolen from a parked scooter.\nThe complainant saw two men leaving.",
		Priority:    3,
		Location:    &location,
		Status:      models.FirStatusClosed,
		Suspects:    []string{"two unidentified men"},
		CreatedAt:   created,
		UpdatedAt:   closed,
		ClosedAt:    &closed,
	}
	history := []models.StatusUpdate{
		{Status: models.FirStatusRegistered, Description: models.GenesisDescription(fir.FirId), CreatedAt: created, IsPublic: true},
		{Status: models.FirStatusClosed, Description: "Phone recovered", CreatedAt: closed, IsPublic: true},
		{Status: models.FirStatusClosed, Description: "internal", CreatedAt: closed, IsPublic: false},
	}

	var buf bytes.Buffer
	err := NewRenderer("Shivajinagar Police Station").RenderFir(&buf, fir, history)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderFir_minimal_record_and_non_latin_text(t *testing.T) {
	fir := models.Fir{
		FirId:       "FIR-20240501-100",
		Crime:       "चोरी",
		IpcSections: []string{"IPC 379"},
		Summary:     "मोबाइल फोन चोरी हो गया",
		Priority:    1,
		Status:      models.FirStatusRegistered,
	}

	var buf bytes.Buffer
	err := NewRenderer("").RenderFir(&buf, fir, nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}
