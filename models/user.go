package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

type UserRole string

const (
	UserRoleCitizen UserRole = "CITIZEN"
	UserRoleOfficer UserRole = "OFFICER"
	UserRoleAdmin   UserRole = "ADMIN"
)

type User struct {
	Id          string
	Username    string
	Email       string
	FullName    *string
	Role        UserRole
	Phone       *string
	BadgeNumber *string
	Station     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateUserInput struct {
	Username    string
	Email       string
	FullName    *string
	Role        UserRole
	Phone       *string
	BadgeNumber *string
	Station     *string
}

func (input CreateUserInput) Normalize() CreateUserInput {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = UserRole(strings.ToUpper(strings.TrimSpace(string(input.Role))))
	if input.Role == "" {
		input.Role = UserRoleCitizen
	}
	return input
}

func (input CreateUserInput) Validate() error {
	errs := FieldValidationError{}
	if input.Username == "" {
		errs.Add("username", "is required")
	}
	validateEmail(errs, input.Email)
	return errs.OrNil()
}

type UpdateUserInput struct {
	Email       *string
	FullName    null.String
	Role        *UserRole
	Phone       null.String
	BadgeNumber null.String
	Station     null.String
}

func (input UpdateUserInput) Validate() error {
	errs := FieldValidationError{}
	if input.Email != nil {
		validateEmail(errs, *input.Email)
	}
	if input.Role != nil && *input.Role == "" {
		errs.Add("role", "must not be empty")
	}
	return errs.OrNil()
}

func (input UpdateUserInput) IsEmpty() bool {
	return input.Email == nil && !input.FullName.Valid && input.Role == nil &&
		!input.Phone.Valid && !input.BadgeNumber.Valid && !input.Station.Valid
}

func validateEmail(errs FieldValidationError, email string) {
	if email == "" {
		errs.Add("email", "is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "is not a valid address")
	}
}
