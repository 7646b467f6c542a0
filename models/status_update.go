package models

import (
	"fmt"
	"strings"
	"time"
)

type StatusUpdate struct {
	Id           string
	FirId        string
	Status       FirStatus
	Description  string
	UpdatedBy    *string
	CreatedAt    time.Time
	InternalNote *string
	IsPublic     bool
}

type CreateStatusUpdateInput struct {
	FirId        string
	Status       FirStatus
	Description  string
	UpdatedBy    *string
	InternalNote *string
	IsPublic     bool
}

// FirStatusChange is a request to move a FIR to a new status.
type FirStatusChange struct {
	Status       FirStatus
	ActorId      *string
	Description  string
	InternalNote *string
}

func (change FirStatusChange) Normalize() FirStatusChange {
	change.Status = FirStatusFrom(string(change.Status))
	change.Description = strings.TrimSpace(change.Description)
	return change
}

func (change FirStatusChange) Validate() error {
	if err := change.Status.Validate(); err != nil {
		return err
	}
	errs := FieldValidationError{}
	validateUserRef(errs, "actorId", change.ActorId)
	return errs.OrNil()
}

// FirNote is a progress note appended to the history without changing the status.
type FirNote struct {
	Description  string
	ActorId      *string
	InternalNote *string
	IsPublic     bool
}

func (note FirNote) Validate() error {
	errs := FieldValidationError{}
	if strings.TrimSpace(note.Description) == "" {
		errs.Add("description", "is required")
	}
	validateUserRef(errs, "actorId", note.ActorId)
	return errs.OrNil()
}

func GenesisStatusUpdate(firId string, reporterId *string) CreateStatusUpdateInput {
	return CreateStatusUpdateInput{
		FirId:       firId,
		Status:      FirStatusRegistered,
		Description: GenesisDescription(firId),
		UpdatedBy:   reporterId,
		IsPublic:    true,
	}
}

func TransitionStatusUpdate(firId string, from FirStatus, change FirStatusChange) CreateStatusUpdateInput {
	description := change.Description
	if description == "" {
		description = fmt.Sprintf("Status changed from %s to %s", from, change.Status)
	}
	return CreateStatusUpdateInput{
		FirId:        firId,
		Status:       change.Status,
		Description:  description,
		UpdatedBy:    change.ActorId,
		InternalNote: change.InternalNote,
		IsPublic:     true,
	}
}
