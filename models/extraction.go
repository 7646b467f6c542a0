package models

// ExtractedFir is the structured reading of a free-text incident description.
// FirId is provisional: nothing is stored until the caller creates the FIR.
type ExtractedFir struct {
	Crime       string   `json:"crime" jsonschema:"required,description=Short crime category such as theft or assault"`
	IpcSections []string `json:"ipcSections" jsonschema:"required,minItems=1,description=Applicable statute section codes such as IPC 379"`
	Summary     string   `json:"summary" jsonschema:"required,description=Neutral one paragraph summary of the incident"`
	Priority    int      `json:"priority" jsonschema:"required,minimum=1,maximum=5,description=1 is the least urgent and 5 the most urgent"`
	DateTime    *string  `json:"dateTime,omitempty" jsonschema:"description=Incident date and time as stated by the reporter"`
	Location    *string  `json:"location,omitempty" jsonschema:"description=Incident location as stated by the reporter"`
	FirId       string   `json:"-"`
}

func (e ExtractedFir) Validate() error {
	errs := FieldValidationError{}
	if e.Crime == "" {
		errs.Add("crime", "is required")
	}
	if e.Summary == "" {
		errs.Add("summary", "is required")
	}
	validateIpcSections(errs, e.IpcSections)
	validatePriority(errs, e.Priority)
	return errs.OrNil()
}

func (e ExtractedFir) ToCreateFirInput() CreateFirInput {
	return CreateFirInput{
		FirId:            e.FirId,
		Crime:            e.Crime,
		IpcSections:      e.IpcSections,
		Summary:          e.Summary,
		Priority:         e.Priority,
		IncidentDateTime: e.DateTime,
		Location:         e.Location,
	}
}
