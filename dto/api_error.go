package dto

type APIErrorResponse struct {
	Message   string            `json:"message"`
	ErrorCode ErrorCode         `json:"errorCode"`
	Details   map[string]string `json:"details,omitempty"`
	// OriginalText echoes the submitted description when extraction fails, so the client can resubmit it.
	OriginalText string `json:"originalText,omitempty"`
}

type ErrorCode string

const (
	ValidationError     ErrorCode = "validation_error"
	NotFound            ErrorCode = "not_found"
	Conflict            ErrorCode = "conflict"
	ExtractionFailed    ErrorCode = "extraction_failed"
	StoreFailure        ErrorCode = "store_failure"
	RequestTimeout      ErrorCode = "request_timeout"
	UnknownUser         ErrorCode = "unknown_user"
	FirIdAlreadyExists  ErrorCode = "fir_id_already_exists"
	UsernameAlreadyUsed ErrorCode = "username_already_used"
)
