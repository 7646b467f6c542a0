package extraction

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/Adityakk9031/FirAgent/models"
)

const instructionsHeader = `You help police officers register First Information Reports (FIR).
Read the incident description written by the complainant and answer with exactly one JSON object
that validates against this JSON schema:

`

const instructionsRules = `

Rules:
- crime is a short lower case category such as "theft", "assault" or "cheating".
- ipcSections lists every applicable Indian Penal Code section, written like "IPC 379".
- priority goes from 1 (minor, no urgency) to 5 (threat to life or ongoing crime).
- summary is a neutral third person summary of the facts, without speculation.
- Omit dateTime and location when the description does not state them.
- Do not add any text before or after the JSON object.`

func outputSchema() (string, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(&models.ExtractedFir{})
	schema.Version = ""

	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not serialize extraction schema")
	}
	return string(raw), nil
}

// buildInstructions is computed once per pipeline: only the user text changes between requests.
func buildInstructions(guidance []string) (string, error) {
	schema, err := outputSchema()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(instructionsHeader)
	b.WriteString(schema)
	b.WriteString(instructionsRules)
	for _, line := range guidance {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString("\n- ")
			b.WriteString(line)
		}
	}
	return b.String(), nil
}
