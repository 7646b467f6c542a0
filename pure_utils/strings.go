package pure_utils

import "strings"

// NilIfBlank trims s and returns nil when nothing is left.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
