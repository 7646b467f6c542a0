package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// ErrExtractionFailed is rendered with the http status code 503
	ErrExtractionFailed = errors.New("extraction failed")
)

var (
	ErrFirIdAlreadyExists    = errors.Wrap(ConflictError, "fir id already exists")
	ErrUnknownUser           = errors.Wrap(NotFoundError, "unknown user")
	ErrUnknownFir            = errors.Wrap(NotFoundError, "unknown fir")
	ErrUsernameAlreadyExists = errors.Wrap(ConflictError, "username or email already exists")
)

// FieldValidationError carries one message per invalid input field.
type FieldValidationError map[string]string

func (e FieldValidationError) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e FieldValidationError) Unwrap() error {
	return BadParameterError
}

// Add records a message for a field, keeping the first one.
func (e FieldValidationError) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// OrNil returns nil when no field was flagged.
func (e FieldValidationError) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ExtractionFailedError keeps the caller's text so that it can be resubmitted.
type ExtractionFailedError struct {
	OriginalText string
	Attempts     int
	LastError    error
}

func (e *ExtractionFailedError) Error() string {
	if e.LastError == nil {
		return fmt.Sprintf("extraction failed after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("extraction failed after %d attempts: %s", e.Attempts, e.LastError)
}

func (e *ExtractionFailedError) Unwrap() error {
	return ErrExtractionFailed
}
