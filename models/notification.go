package models

import (
	"fmt"
	"strings"
	"time"
)

type NotificationType string

const (
	NotificationTypeStatusUpdate NotificationType = "STATUS_UPDATE"
	NotificationTypeAssignment   NotificationType = "ASSIGNMENT"
	NotificationTypeInfo         NotificationType = "INFO"
)

type Notification struct {
	Id        string
	UserId    string
	FirId     *string
	Title     string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
	Link      *string
}

type CreateNotificationInput struct {
	UserId  string
	FirId   *string
	Title   string
	Message string
	Type    NotificationType
	Link    *string
}

func (input CreateNotificationInput) Validate() error {
	errs := FieldValidationError{}
	if input.UserId == "" {
		errs.Add("userId", "is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		errs.Add("title", "is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		errs.Add("message", "is required")
	}
	return errs.OrNil()
}

func FirLink(firId string) *string {
	link := "/firs/" + firId
	return &link
}

func StatusChangeNotification(fir Fir, newStatus FirStatus) CreateNotificationInput {
	return CreateNotificationInput{
		UserId:  *fir.ReporterId,
		FirId:   &fir.FirId,
		Title:   fmt.Sprintf("FIR %s updated", fir.FirId),
		Message: fmt.Sprintf("The status of FIR %s is now %s", fir.FirId, newStatus.Label()),
		Type:    NotificationTypeStatusUpdate,
		Link:    FirLink(fir.FirId),
	}
}

func AssignmentNotification(fir Fir, officerId string) CreateNotificationInput {
	return CreateNotificationInput{
		UserId:  officerId,
		FirId:   &fir.FirId,
		Title:   fmt.Sprintf("FIR %s assigned", fir.FirId),
		Message: fmt.Sprintf("You have been assigned to FIR %s (%s)", fir.FirId, fir.Crime),
		Type:    NotificationTypeAssignment,
		Link:    FirLink(fir.FirId),
	}
}
