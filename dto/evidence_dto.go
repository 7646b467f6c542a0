package dto

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

type APIEvidence struct {
	Id           string         `json:"id"`
	FirId        string         `json:"firId"`
	Url          string         `json:"url"`
	Type         string         `json:"type"`
	OriginalName string         `json:"originalName"`
	SizeBytes    int64          `json:"sizeBytes"`
	Description  *string        `json:"description"`
	UploadedBy   *string        `json:"uploadedBy"`
	UploadedAt   time.Time      `json:"uploadedAt"`
	Tags         []string       `json:"tags"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

func AdaptEvidenceDto(evidence models.Evidence) APIEvidence {
	return APIEvidence{
		Id:           evidence.Id,
		FirId:        evidence.FirId,
		Url:          evidence.Url,
		Type:         evidence.Type,
		OriginalName: evidence.OriginalName,
		SizeBytes:    evidence.SizeBytes,
		Description:  evidence.Description,
		UploadedBy:   evidence.UploadedBy,
		UploadedAt:   evidence.UploadedAt,
		Tags:         nonNilStrings(evidence.Tags),
		Metadata:     evidence.Metadata,
	}
}

func AdaptEvidenceListDto(evidence []models.Evidence) []APIEvidence {
	return pure_utils.Map(evidence, AdaptEvidenceDto)
}

type CreateEvidenceBody struct {
	Url          string         `json:"url" binding:"required,url"`
	Type         string         `json:"type" binding:"required"`
	OriginalName string         `json:"originalName"`
	SizeBytes    int64          `json:"sizeBytes" binding:"min=0"`
	Description  *string        `json:"description"`
	UploadedBy   *string        `json:"uploadedBy" binding:"omitempty,uuid"`
	Tags         []string       `json:"tags"`
	Metadata     map[string]any `json:"metadata"`
}

func AdaptCreateEvidenceInput(firId string, body CreateEvidenceBody) models.CreateEvidenceInput {
	return models.CreateEvidenceInput{
		FirId:        firId,
		Url:          body.Url,
		Type:         body.Type,
		OriginalName: body.OriginalName,
		SizeBytes:    body.SizeBytes,
		Description:  pure_utils.NilIfBlank(body.Description),
		UploadedBy:   body.UploadedBy,
		Tags:         body.Tags,
		Metadata:     body.Metadata,
	}
}
