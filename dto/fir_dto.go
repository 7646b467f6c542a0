package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

type APIFir struct {
	Id          string         `json:"id"`
	FirId       string         `json:"firId"`
	ReporterId  *string        `json:"reporterId"`
	OfficerId   *string        `json:"officerId"`
	Crime       string         `json:"crime"`
	IpcSections []string       `json:"ipcSections"`
	Summary     string         `json:"summary"`
	Priority    int            `json:"priority"`
	DateTime    *string        `json:"dateTime"`
	Location    *string        `json:"location"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	District    *string        `json:"district"`
	State       *string        `json:"state"`
	Suspects    []string       `json:"suspects"`
	Victims     []string       `json:"victims"`
	Witnesses   []string       `json:"witnesses"`
	Status      string         `json:"status"`
	StatusLabel string         `json:"statusLabel"`
	Tags        []string       `json:"tags"`
	IsAnonymous bool           `json:"isAnonymous"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	ClosedAt    *time.Time     `json:"closedAt"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func AdaptFirDto(fir models.Fir) APIFir {
	return APIFir{
		Id:          fir.Id,
		FirId:       fir.FirId,
		ReporterId:  fir.ReporterId,
		OfficerId:   fir.OfficerId,
		Crime:       fir.Crime,
		IpcSections: nonNilStrings(fir.IpcSections),
		Summary:     fir.Summary,
		Priority:    fir.Priority,
		DateTime:    fir.IncidentDateTime,
		Location:    fir.Location,
		Latitude:    fir.Latitude,
		Longitude:   fir.Longitude,
		District:    fir.District,
		State:       fir.State,
		Suspects:    nonNilStrings(fir.Suspects),
		Victims:     nonNilStrings(fir.Victims),
		Witnesses:   nonNilStrings(fir.Witnesses),
		Status:      string(fir.Status),
		StatusLabel: fir.Status.Label(),
		Tags:        nonNilStrings(fir.Tags),
		IsAnonymous: fir.IsAnonymous,
		CreatedAt:   fir.CreatedAt,
		UpdatedAt:   fir.UpdatedAt,
		ClosedAt:    fir.ClosedAt,
		Metadata:    fir.Metadata,
	}
}

func AdaptFirListDto(firs []models.Fir) []APIFir {
	return pure_utils.Map(firs, AdaptFirDto)
}

type CreateFirBody struct {
	FirId       string         `json:"firId" binding:"omitempty,fir_id"`
	ReporterId  *string        `json:"reporterId" binding:"omitempty,uuid"`
	OfficerId   *string        `json:"officerId" binding:"omitempty,uuid"`
	Crime       string         `json:"crime" binding:"required"`
	IpcSections []string       `json:"ipcSections" binding:"required,min=1,dive,required"`
	Summary     string         `json:"summary" binding:"required"`
	Priority    int            `json:"priority" binding:"required,min=1,max=5"`
	DateTime    *string        `json:"dateTime"`
	Location    *string        `json:"location"`
	Latitude    *float64       `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64       `json:"longitude" binding:"omitempty,longitude"`
	District    *string        `json:"district"`
	State       *string        `json:"state"`
	Suspects    []string       `json:"suspects"`
	Victims     []string       `json:"victims"`
	Witnesses   []string       `json:"witnesses"`
	Status      string         `json:"status"`
	Tags        []string       `json:"tags"`
	IsAnonymous bool           `json:"isAnonymous"`
	Metadata    map[string]any `json:"metadata"`
}

func AdaptCreateFirInput(body CreateFirBody) models.CreateFirInput {
	return models.CreateFirInput{
		FirId:            body.FirId,
		ReporterId:       body.ReporterId,
		OfficerId:        body.OfficerId,
		Crime:            body.Crime,
		IpcSections:      body.IpcSections,
		Summary:          body.Summary,
		Priority:         body.Priority,
		IncidentDateTime: pure_utils.NilIfBlank(body.DateTime),
		Location:         pure_utils.NilIfBlank(body.Location),
		Latitude:         body.Latitude,
		Longitude:        body.Longitude,
		District:         pure_utils.NilIfBlank(body.District),
		State:            pure_utils.NilIfBlank(body.State),
		Suspects:         body.Suspects,
		Victims:          body.Victims,
		Witnesses:        body.Witnesses,
		Status:           models.FirStatus(body.Status),
		Tags:             body.Tags,
		IsAnonymous:      body.IsAnonymous,
		Metadata:         body.Metadata,
	}
}

// UpdateFirBody is a PATCH body: absent fields are left alone, an empty string clears a nullable field.
type UpdateFirBody struct {
	OfficerId   null.String    `json:"officerId"`
	Crime       *string        `json:"crime"`
	IpcSections *[]string      `json:"ipcSections"`
	Summary     *string        `json:"summary"`
	Priority    *int           `json:"priority"`
	DateTime    null.String    `json:"dateTime"`
	Location    null.String    `json:"location"`
	Latitude    null.Float     `json:"latitude"`
	Longitude   null.Float     `json:"longitude"`
	District    null.String    `json:"district"`
	State       null.String    `json:"state"`
	Suspects    *[]string      `json:"suspects"`
	Victims     *[]string      `json:"victims"`
	Witnesses   *[]string      `json:"witnesses"`
	Tags        *[]string      `json:"tags"`
	IsAnonymous *bool          `json:"isAnonymous"`
	Metadata    map[string]any `json:"metadata"`
}

func AdaptUpdateFirInput(body UpdateFirBody) models.UpdateFirInput {
	return models.UpdateFirInput{
		OfficerId:        body.OfficerId,
		Crime:            body.Crime,
		IpcSections:      body.IpcSections,
		Summary:          body.Summary,
		Priority:         body.Priority,
		IncidentDateTime: body.DateTime,
		Location:         body.Location,
		Latitude:         body.Latitude,
		Longitude:        body.Longitude,
		District:         body.District,
		State:            body.State,
		Suspects:         body.Suspects,
		Victims:          body.Victims,
		Witnesses:        body.Witnesses,
		Tags:             body.Tags,
		IsAnonymous:      body.IsAnonymous,
		Metadata:         body.Metadata,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
