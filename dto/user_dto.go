package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/Adityakk9031/FirAgent/models"
)

type APIUser struct {
	Id          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    *string   `json:"fullName"`
	Role        string    `json:"role"`
	Phone       *string   `json:"phone"`
	BadgeNumber *string   `json:"badgeNumber"`
	Station     *string   `json:"station"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
		Id:          user.Id,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		Phone:       user.Phone,
		BadgeNumber: user.BadgeNumber,
		Station:     user.Station,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

type CreateUserBody struct {
	Username    string  `json:"username" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	FullName    *string `json:"fullName"`
	Role        string  `json:"role" binding:"omitempty,oneof=CITIZEN OFFICER ADMIN citizen officer admin"`
	Phone       *string `json:"phone"`
	BadgeNumber *string `json:"badgeNumber"`
	Station     *string `json:"station"`
}

func AdaptCreateUserInput(body CreateUserBody) models.CreateUserInput {
	return models.CreateUserInput{
		Username:    body.Username,
		Email:       body.Email,
		FullName:    body.FullName,
		Role:        models.UserRole(body.Role),
		Phone:       body.Phone,
		BadgeNumber: body.BadgeNumber,
		Station:     body.Station,
	}
}

type UpdateUserBody struct {
	Email       *string     `json:"email" binding:"omitempty,email"`
	FullName    null.String `json:"fullName"`
	Role        *string     `json:"role" binding:"omitempty,oneof=CITIZEN OFFICER ADMIN citizen officer admin"`
	Phone       null.String `json:"phone"`
	BadgeNumber null.String `json:"badgeNumber"`
	Station     null.String `json:"station"`
}

func AdaptUpdateUserInput(body UpdateUserBody) models.UpdateUserInput {
	input := models.UpdateUserInput{
		Email:       body.Email,
		FullName:    body.FullName,
		Phone:       body.Phone,
		BadgeNumber: body.BadgeNumber,
		Station:     body.Station,
	}
	if body.Role != nil {
		role := models.UserRole(*body.Role)
		input.Role = &role
	}
	return input
}
