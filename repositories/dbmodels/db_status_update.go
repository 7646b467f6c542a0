package dbmodels

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

type DBStatusUpdate struct {
	Id           string    `db:"id"`
	FirId        string    `db:"fir_id"`
	Status       string    `db:"status"`
	Description  string    `db:"description"`
	UpdatedBy    *string   `db:"updated_by"`
	CreatedAt    time.Time `db:"created_at"`
	InternalNote *string   `db:"internal_note"`
	IsPublic     bool      `db:"is_public"`
}

const TABLE_STATUS_UPDATES = "status_updates"

var SelectStatusUpdateColumn = utils.ColumnList[DBStatusUpdate]()

func AdaptStatusUpdate(db DBStatusUpdate) (models.StatusUpdate, error) {
	return models.StatusUpdate{
		Id:           db.Id,
		FirId:        db.FirId,
		Status:       models.FirStatus(db.Status),
		Description:  db.Description,
		UpdatedBy:    db.UpdatedBy,
		CreatedAt:    db.CreatedAt.UTC(),
		InternalNote: db.InternalNote,
		IsPublic:     db.IsPublic,
	}, nil
}
