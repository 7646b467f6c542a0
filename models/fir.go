package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"
	"github.com/hashicorp/go-set/v2"
)

const (
	MinFirPriority = 1
	MaxFirPriority = 5
)

type Fir struct {
	Id               string
	FirId            string
	ReporterId       *string
	OfficerId        *string
	Crime            string
	IpcSections      []string
	Summary          string
	Priority         int
	IncidentDateTime *string
	Location         *string
	Latitude         *float64
	Longitude        *float64
	District         *string
	State            *string
	Suspects         []string
	Victims          []string
	Witnesses        []string
	Status           FirStatus
	Tags             []string
	IsAnonymous      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ClosedAt         *time.Time
	Metadata         map[string]any
}

type CreateFirInput struct {
	FirId            string
	ReporterId       *string
	OfficerId        *string
	Crime            string
	IpcSections      []string
	Summary          string
	Priority         int
	IncidentDateTime *string
	Location         *string
	Latitude         *float64
	Longitude        *float64
	District         *string
	State            *string
	Suspects         []string
	Victims          []string
	Witnesses        []string
	Status           FirStatus
	Tags             []string
	IsAnonymous      bool
	Metadata         map[string]any
}

// Normalize trims free text, defaults the status and deduplicates tags.
func (input CreateFirInput) Normalize() CreateFirInput {
	input.FirId = strings.TrimSpace(input.FirId)
	input.Crime = strings.TrimSpace(input.Crime)
	input.Summary = strings.TrimSpace(input.Summary)
	input.IpcSections = trimAll(input.IpcSections)
	input.Tags = NormalizeTags(input.Tags)
	input.Status = FirStatusFrom(string(input.Status))
	if input.Status == "" {
		input.Status = FirStatusRegistered
	}
	return input
}

func (input CreateFirInput) Validate() error {
	errs := FieldValidationError{}

	if input.FirId != "" && !ValidateFirId(input.FirId) {
		errs.Add("firId", "must match FIR-YYYYMMDD-NNN")
	}
	if input.Crime == "" {
		errs.Add("crime", "is required")
	}
	if input.Summary == "" {
		errs.Add("summary", "is required")
	}
	validateIpcSections(errs, input.IpcSections)
	validatePriority(errs, input.Priority)
	validateCoordinates(errs, input.Latitude, input.Longitude)
	validateUserRef(errs, "reporterId", input.ReporterId)
	validateUserRef(errs, "officerId", input.OfficerId)

	return errs.OrNil()
}

// UpdateFirInput is a partial update: nil pointers and invalid null values leave the field untouched,
// a valid-but-empty null value clears a nullable column. Status is not part of it, see UpdateFirStatus.
type UpdateFirInput struct {
	OfficerId        null.String
	Crime            *string
	IpcSections      *[]string
	Summary          *string
	Priority         *int
	IncidentDateTime null.String
	Location         null.String
	Latitude         null.Float
	Longitude        null.Float
	District         null.String
	State            null.String
	Suspects         *[]string
	Victims          *[]string
	Witnesses        *[]string
	Tags             *[]string
	IsAnonymous      *bool
	Metadata         map[string]any
}

func (input UpdateFirInput) Normalize() UpdateFirInput {
	if input.Crime != nil {
		input.Crime = trimPtr(input.Crime)
	}
	if input.Summary != nil {
		input.Summary = trimPtr(input.Summary)
	}
	if input.IpcSections != nil {
		sections := trimAll(*input.IpcSections)
		input.IpcSections = &sections
	}
	if input.Tags != nil {
		tags := NormalizeTags(*input.Tags)
		input.Tags = &tags
	}
	return input
}

func (input UpdateFirInput) Validate() error {
	errs := FieldValidationError{}

	if input.Crime != nil && *input.Crime == "" {
		errs.Add("crime", "must not be empty")
	}
	if input.Summary != nil && *input.Summary == "" {
		errs.Add("summary", "must not be empty")
	}
	if input.IpcSections != nil {
		validateIpcSections(errs, *input.IpcSections)
	}
	if input.Priority != nil {
		validatePriority(errs, *input.Priority)
	}
	validateCoordinates(errs, input.Latitude.Ptr(), input.Longitude.Ptr())
	validateUserRef(errs, "officerId", input.OfficerId.Ptr())

	return errs.OrNil()
}

// IsEmpty is true when the update does not touch any column.
func (input UpdateFirInput) IsEmpty() bool {
	return !input.OfficerId.Valid && input.Crime == nil && input.IpcSections == nil &&
		input.Summary == nil && input.Priority == nil && !input.IncidentDateTime.Valid &&
		!input.Location.Valid && !input.Latitude.Valid && !input.Longitude.Valid &&
		!input.District.Valid && !input.State.Valid && input.Suspects == nil &&
		input.Victims == nil && input.Witnesses == nil && input.Tags == nil &&
		input.IsAnonymous == nil && input.Metadata == nil
}

// AssignsOfficer reports whether the update sets an officer that differs from the current one.
func (input UpdateFirInput) AssignsOfficer(current *string) bool {
	if !input.OfficerId.Valid || input.OfficerId.String == "" {
		return false
	}
	return current == nil || *current != input.OfficerId.String
}

func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	unique := set.New[string](len(tags))
	for _, tag := range tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			unique.Insert(tag)
		}
	}
	out := unique.Slice()
	slices.Sort(out)
	return out
}

func GenesisDescription(firId string) string {
	return fmt.Sprintf("FIR %s registered", firId)
}

func validateIpcSections(errs FieldValidationError, sections []string) {
	if len(sections) == 0 {
		errs.Add("ipcSections", "at least one section is required")
		return
	}
	for _, section := range sections {
		if section == "" {
			errs.Add("ipcSections", "sections must not be empty")
			return
		}
	}
}

func validatePriority(errs FieldValidationError, priority int) {
	if priority < MinFirPriority || priority > MaxFirPriority {
		errs.Add("priority", fmt.Sprintf("must be between %d and %d", MinFirPriority, MaxFirPriority))
	}
}

// validateUserRef rejects user references that are not UUIDs, an empty value means no user.
func validateUserRef(errs FieldValidationError, field string, id *string) {
	if id != nil && *id != "" && uuid.Validate(*id) != nil {
		errs.Add(field, "must be a valid user id")
	}
}

func validateCoordinates(errs FieldValidationError, latitude, longitude *float64) {
	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		errs.Add("latitude", "must be between -90 and 90")
	}
	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		errs.Add("longitude", "must be between -180 and 180")
	}
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func trimPtr(s *string) *string {
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
