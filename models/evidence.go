package models

import (
	"strings"
	"time"
)

// Evidence only describes an artifact, the bytes live wherever Url points to.
type Evidence struct {
	Id           string
	FirId        string
	Url          string
	Type         string
	OriginalName string
	SizeBytes    int64
	Description  *string
	UploadedBy   *string
	UploadedAt   time.Time
	Tags         []string
	Metadata     map[string]any
}

type CreateEvidenceInput struct {
	FirId        string
	Url          string
	Type         string
	OriginalName string
	SizeBytes    int64
	Description  *string
	UploadedBy   *string
	Tags         []string
	Metadata     map[string]any
}

func (input CreateEvidenceInput) Validate() error {
	errs := FieldValidationError{}
	if strings.TrimSpace(input.Url) == "" {
		errs.Add("url", "is required")
	}
	if strings.TrimSpace(input.Type) == "" {
		errs.Add("type", "is required")
	}
	if input.SizeBytes < 0 {
		errs.Add("sizeBytes", "must not be negative")
	}
	validateUserRef(errs, "uploadedBy", input.UploadedBy)
	return errs.OrNil()
}
