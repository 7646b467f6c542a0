package models

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/utils"
)

func validCreateFirInput() CreateFirInput {
	return CreateFirInput{
		Crime:       "theft",
		IpcSections: []string{"IPC 379"},
		Summary:     "Phone stolen at the bus stop",
		Priority:    3,
	}
}

func TestCreateFirInput_Normalize(t *testing.T) {
	input := validCreateFirInput()
	input.Crime = "  theft "
	input.Tags = []string{"Night", "night ", "", "metro"}

	normalized := input.Normalize()

	assert.Equal(t, "theft", normalized.Crime)
	assert.Equal(t, FirStatusRegistered, normalized.Status)
	assert.Equal(t, []string{"metro", "night"}, normalized.Tags)
}

func TestCreateFirInput_Validate(t *testing.T) {
	assert.NoError(t, validCreateFirInput().Normalize().Validate())

	input := CreateFirInput{
		FirId:       "FIR-2024-1",
		IpcSections: []string{" "},
		Priority:    6,
		Latitude:    utils.Ptr(91.0),
	}
	err := input.Normalize().Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, BadParameterError)

	var fieldErrors FieldValidationError
	require.True(t, errors.As(err, &fieldErrors))
	assert.Contains(t, fieldErrors, "firId")
	assert.Contains(t, fieldErrors, "crime")
	assert.Contains(t, fieldErrors, "summary")
	assert.Contains(t, fieldErrors, "ipcSections")
	assert.Contains(t, fieldErrors, "priority")
	assert.Contains(t, fieldErrors, "latitude")
}

func TestUpdateFirInput(t *testing.T) {
	assert.True(t, UpdateFirInput{}.IsEmpty())

	emptyCrime := " "
	input := UpdateFirInput{Crime: &emptyCrime}.Normalize()
	assert.False(t, input.IsEmpty())
	assert.ErrorIs(t, input.Validate(), BadParameterError)
}

func TestUpdateFirInput_AssignsOfficer(t *testing.T) {
	officer := "5c1b2f34-9a4f-4a55-8d4f-1a2b3c4d5e6f"
	input := UpdateFirInput{}
	input.OfficerId.SetValid(officer)

	assert.True(t, input.AssignsOfficer(nil))
	assert.False(t, input.AssignsOfficer(&officer))
	assert.False(t, UpdateFirInput{}.AssignsOfficer(nil))
}

func TestValidateFirId(t *testing.T) {
	assert.True(t, ValidateFirId("FIR-20240131-482"))
	assert.False(t, ValidateFirId("FIR-2024013-482"))
	assert.False(t, ValidateFirId("fir-20240131-482"))
	assert.False(t, ValidateFirId("FIR-20240131-4821"))
}

func TestValidate_user_references_must_be_uuids(t *testing.T) {
	notAnId := "officer-42"

	createErr := CreateFirInput{
		Crime:       "theft",
		IpcSections: []string{"379"},
		Summary:     "summary",
		Priority:    3,
		ReporterId:  &notAnId,
		OfficerId:   &notAnId,
	}.Validate()
	var fieldErrors FieldValidationError
	require.True(t, errors.As(createErr, &fieldErrors))
	assert.Contains(t, fieldErrors, "reporterId")
	assert.Contains(t, fieldErrors, "officerId")

	update := UpdateFirInput{}
	update.OfficerId.SetValid(notAnId)
	assert.ErrorIs(t, update.Validate(), BadParameterError)
	update.OfficerId.SetValid("")
	assert.NoError(t, update.Validate(), "an empty officer id clears the assignment")

	assert.ErrorIs(t, FirStatusChange{Status: FirStatusClosed, ActorId: &notAnId}.Validate(), BadParameterError)
	assert.ErrorIs(t, FirNote{Description: "note", ActorId: &notAnId}.Validate(), BadParameterError)
	assert.ErrorIs(t, CreateEvidenceInput{Url: "s3://bucket/a", Type: "image", UploadedBy: &notAnId}.Validate(),
		BadParameterError)
	assert.ErrorIs(t, FirSearchParams{ReporterId: notAnId}.WithDefaults().Validate(), BadParameterError)
}
