package models

import "regexp"

const FirIdDateLayout = "20060102"

var firIdPattern = regexp.MustCompile(`^FIR-\d{8}-\d{3}$`)

// ValidateFirId checks the external case identifier shape FIR-YYYYMMDD-NNN.
func ValidateFirId(firId string) bool {
	return firIdPattern.MatchString(firId)
}
