package extraction

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/Adityakk9031/FirAgent/models"
)

var (
	errNoJSONObject = errors.New("model output contains no JSON object")
	errInvalidJSON  = errors.New("model output JSON object is malformed")
)

// firstJSONObject returns the first balanced {...} block of s. Braces inside JSON strings are ignored.
func firstJSONObject(s string) (string, bool) {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end, ok := matchingBrace(s, start); ok {
			return s[start : end+1], true
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchingBrace(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// parseExtraction reads a raw model answer into a validated extraction result.
func parseExtraction(raw string) (models.ExtractedFir, error) {
	block, ok := firstJSONObject(raw)
	if !ok {
		return models.ExtractedFir{}, errNoJSONObject
	}
	if !gjson.Valid(block) {
		return models.ExtractedFir{}, errInvalidJSON
	}

	if err := checkFieldTypes(block); err != nil {
		return models.ExtractedFir{}, err
	}

	var extracted models.ExtractedFir
	if err := json.Unmarshal([]byte(block), &extracted); err != nil {
		return models.ExtractedFir{}, errors.Wrap(errInvalidJSON, err.Error())
	}

	extracted.Crime = strings.TrimSpace(extracted.Crime)
	extracted.Summary = strings.TrimSpace(extracted.Summary)
	for i, section := range extracted.IpcSections {
		extracted.IpcSections[i] = strings.TrimSpace(section)
	}
	extracted.DateTime = blankAsNil(extracted.DateTime)
	extracted.Location = blankAsNil(extracted.Location)

	if err := extracted.Validate(); err != nil {
		return models.ExtractedFir{}, err
	}
	return extracted, nil
}

func checkFieldTypes(block string) error {
	errs := models.FieldValidationError{}
	fields := gjson.GetMany(block, "crime", "summary", "ipcSections", "priority", "dateTime", "location")
	crime, summary, sections, priority, dateTime, location :=
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	if crime.Type != gjson.String {
		errs.Add("crime", "must be a string")
	}
	if summary.Type != gjson.String {
		errs.Add("summary", "must be a string")
	}
	if !sections.IsArray() {
		errs.Add("ipcSections", "must be an array of strings")
	} else {
		for _, section := range sections.Array() {
			if section.Type != gjson.String {
				errs.Add("ipcSections", "must be an array of strings")
				break
			}
		}
	}
	if priority.Type != gjson.Number || priority.Num != float64(int(priority.Num)) {
		errs.Add("priority", "must be an integer")
	}
	for name, field := range map[string]gjson.Result{"dateTime": dateTime, "location": location} {
		if field.Exists() && field.Type != gjson.Null && field.Type != gjson.String {
			errs.Add(name, "must be a string")
		}
	}

	return errs.OrNil()
}

func blankAsNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
