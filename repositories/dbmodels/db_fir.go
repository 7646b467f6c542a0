package dbmodels

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

type DBFir struct {
	Id               string         `db:"id"`
	FirId            string         `db:"fir_id"`
	ReporterId       *string        `db:"reporter_id"`
	OfficerId        *string        `db:"officer_id"`
	Crime            string         `db:"crime"`
	IpcSections      []string       `db:"ipc_sections"`
	Summary          string         `db:"summary"`
	Priority         int            `db:"priority"`
	IncidentDateTime *string        `db:"incident_date_time"`
	Location         *string        `db:"location"`
	Latitude         *float64       `db:"latitude"`
	Longitude        *float64       `db:"longitude"`
	District         *string        `db:"district"`
	State            *string        `db:"state"`
	Suspects         []string       `db:"suspects"`
	Victims          []string       `db:"victims"`
	Witnesses        []string       `db:"witnesses"`
	Status           string         `db:"status"`
	Tags             []string       `db:"tags"`
	IsAnonymous      bool           `db:"is_anonymous"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	ClosedAt         *time.Time     `db:"closed_at"`
	Metadata         map[string]any `db:"metadata"`
}

const TABLE_FIRS = "firs"

var SelectFirColumn = utils.ColumnList[DBFir]()

func AdaptFir(db DBFir) (models.Fir, error) {
	var closedAt *time.Time
	if db.ClosedAt != nil {
		closedAt = utils.Ptr(db.ClosedAt.UTC())
	}

	return models.Fir{
		Id:               db.Id,
		FirId:            db.FirId,
		ReporterId:       db.ReporterId,
		OfficerId:        db.OfficerId,
		Crime:            db.Crime,
		IpcSections:      nonNilStrings(db.IpcSections),
		Summary:          db.Summary,
		Priority:         db.Priority,
		IncidentDateTime: db.IncidentDateTime,
		Location:         db.Location,
		Latitude:         db.Latitude,
		Longitude:        db.Longitude,
		District:         db.District,
		State:            db.State,
		Suspects:         nonNilStrings(db.Suspects),
		Victims:          nonNilStrings(db.Victims),
		Witnesses:        nonNilStrings(db.Witnesses),
		Status:           models.FirStatus(db.Status),
		Tags:             nonNilStrings(db.Tags),
		IsAnonymous:      db.IsAnonymous,
		CreatedAt:        db.CreatedAt.UTC(),
		UpdatedAt:        db.UpdatedAt.UTC(),
		ClosedAt:         closedAt,
		Metadata:         db.Metadata,
	}, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
