package dto

import "github.com/Adityakk9031/FirAgent/models"

type ExtractionBody struct {
	Text       string  `json:"text" binding:"required"`
	ReporterId *string `json:"reporterId" binding:"omitempty,uuid"`
}

type APIExtractedFir struct {
	Crime       string   `json:"crime"`
	IpcSections []string `json:"ipcSections"`
	Summary     string   `json:"summary"`
	Priority    int      `json:"priority"`
	DateTime    *string  `json:"dateTime,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FirId       string   `json:"firId"`
}

func AdaptExtractedFirDto(e models.ExtractedFir) APIExtractedFir {
	return APIExtractedFir{
		Crime:       e.Crime,
		IpcSections: nonNilStrings(e.IpcSections),
		Summary:     e.Summary,
		Priority:    e.Priority,
		DateTime:    e.DateTime,
		Location:    e.Location,
		FirId:       e.FirId,
	}
}
