package dbmodels

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

type DBUser struct {
	Id          string    `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	FullName    *string   `db:"full_name"`
	Role        string    `db:"role"`
	Phone       *string   `db:"phone"`
	BadgeNumber *string   `db:"badge_number"`
	Station     *string   `db:"station"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:          db.Id,
		Username:    db.Username,
		Email:       db.Email,
		FullName:    db.FullName,
		Role:        models.UserRole(db.Role),
		Phone:       db.Phone,
		BadgeNumber: db.BadgeNumber,
		Station:     db.Station,
		CreatedAt:   db.CreatedAt.UTC(),
		UpdatedAt:   db.UpdatedAt.UTC(),
	}, nil
}
