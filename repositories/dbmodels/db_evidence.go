package dbmodels

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

type DBEvidence struct {
	Id           string         `db:"id"`
	FirId        string         `db:"fir_id"`
	Url          string         `db:"url"`
	Type         string         `db:"type"`
	OriginalName string         `db:"original_name"`
	SizeBytes    int64          `db:"size_bytes"`
	Description  *string        `db:"description"`
	UploadedBy   *string        `db:"uploaded_by"`
	UploadedAt   time.Time      `db:"uploaded_at"`
	Tags         []string       `db:"tags"`
	Metadata     map[string]any `db:"metadata"`
}

const TABLE_EVIDENCE = "evidence"

var SelectEvidenceColumn = utils.ColumnList[DBEvidence]()

func AdaptEvidence(db DBEvidence) (models.Evidence, error) {
	return models.Evidence{
		Id:           db.Id,
		FirId:        db.FirId,
		Url:          db.Url,
		Type:         db.Type,
		OriginalName: db.OriginalName,
		SizeBytes:    db.SizeBytes,
		Description:  db.Description,
		UploadedBy:   db.UploadedBy,
		UploadedAt:   db.UploadedAt.UTC(),
		Tags:         nonNilStrings(db.Tags),
		Metadata:     db.Metadata,
	}, nil
}
