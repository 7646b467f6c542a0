package dto

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

type APIStatusUpdate struct {
	Id           string    `json:"id"`
	FirId        string    `json:"firId"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"statusLabel"`
	Description  string    `json:"description"`
	UpdatedBy    *string   `json:"updatedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	InternalNote *string   `json:"internalNote,omitempty"`
	IsPublic     bool      `json:"isPublic"`
}

func AdaptStatusUpdateDto(update models.StatusUpdate) APIStatusUpdate {
	return APIStatusUpdate{
		Id:           update.Id,
		FirId:        update.FirId,
		Status:       string(update.Status),
		StatusLabel:  update.Status.Label(),
		Description:  update.Description,
		UpdatedBy:    update.UpdatedBy,
		CreatedAt:    update.CreatedAt,
		InternalNote: update.InternalNote,
		IsPublic:     update.IsPublic,
	}
}

func AdaptStatusUpdateListDto(updates []models.StatusUpdate) []APIStatusUpdate {
	return pure_utils.Map(updates, AdaptStatusUpdateDto)
}

type UpdateFirStatusBody struct {
	Status       string  `json:"status" binding:"required"`
	ActorId      *string `json:"actorId" binding:"omitempty,uuid"`
	Description  string  `json:"description"`
	InternalNote *string `json:"internalNote"`
}

func AdaptFirStatusChange(body UpdateFirStatusBody) models.FirStatusChange {
	return models.FirStatusChange{
		Status:       models.FirStatus(body.Status),
		ActorId:      body.ActorId,
		Description:  body.Description,
		InternalNote: pure_utils.NilIfBlank(body.InternalNote),
	}
}

type CreateStatusNoteBody struct {
	Description  string  `json:"description" binding:"required"`
	ActorId      *string `json:"actorId" binding:"omitempty,uuid"`
	InternalNote *string `json:"internalNote"`
	// defaults to true
	IsPublic *bool `json:"isPublic"`
}

func AdaptFirNote(body CreateStatusNoteBody) models.FirNote {
	isPublic := true
	if body.IsPublic != nil {
		isPublic = *body.IsPublic
	}
	return models.FirNote{
		Description:  body.Description,
		ActorId:      body.ActorId,
		InternalNote: pure_utils.NilIfBlank(body.InternalNote),
		IsPublic:     isPublic,
	}
}
