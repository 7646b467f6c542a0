package models

import "strings"

// FirStatus is an open set: the named values are the ones the application knows about,
// any other non-empty value is stored and returned as-is.
type FirStatus string

const (
	FirStatusRegistered           FirStatus = "REGISTERED"
	FirStatusInvestigationPending FirStatus = "INVESTIGATION_PENDING"
	FirStatusEvidenceCollection   FirStatus = "EVIDENCE_COLLECTION"
	FirStatusUnderInvestigation   FirStatus = "UNDER_INVESTIGATION"
	FirStatusChargesheetFiled     FirStatus = "CHARGESHEET_FILED"
	FirStatusCourtProceedings     FirStatus = "COURT_PROCEEDINGS"
	FirStatusClosed               FirStatus = "CLOSED"
)

var KnownFirStatuses = []FirStatus{
	FirStatusRegistered,
	FirStatusInvestigationPending,
	FirStatusEvidenceCollection,
	FirStatusUnderInvestigation,
	FirStatusChargesheetFiled,
	FirStatusCourtProceedings,
	FirStatusClosed,
}

// FirStatusFrom matches the known statuses regardless of case and keeps any other value as typed.
func FirStatusFrom(raw string) FirStatus {
	trimmed := strings.TrimSpace(raw)
	for _, known := range KnownFirStatuses {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return FirStatus(trimmed)
}

// IsTerminal is true only for CLOSED, the status that carries a closure timestamp.
func (s FirStatus) IsTerminal() bool {
	return s == FirStatusClosed
}

func (s FirStatus) IsKnown() bool {
	for _, known := range KnownFirStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s FirStatus) Validate() error {
	if s == "" {
		return FieldValidationError{"status": "status must not be empty"}
	}
	return nil
}

// Label renders the status for humans: UNDER_INVESTIGATION becomes "under investigation".
func (s FirStatus) Label() string {
	return strings.ToLower(strings.ReplaceAll(string(s), "_", " "))
}
