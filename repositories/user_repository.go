package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

func (repo *DbRepository) CreateUser(ctx context.Context, exec Executor, input models.CreateUserInput, newId string) error {
	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns(
			"id",
			"username",
			"email",
			"full_name",
			"role",
			"phone",
			"badge_number",
			"station",
		).
		Values(
			newId,
			input.Username,
			input.Email,
			input.FullName,
			input.Role,
			input.Phone,
			input.BadgeNumber,
			input.Station,
		))
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrUsernameAlreadyExists, "user %s", input.Username)
	}
	return err
}

func (repo *DbRepository) GetUserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	return repo.getUserWhere(ctx, exec, squirrel.Eq{"id": userId})
}

func (repo *DbRepository) GetUserByUsername(ctx context.Context, exec Executor, username string) (models.User, error) {
	return repo.getUserWhere(ctx, exec, squirrel.Eq{"username": username})
}

func (repo *DbRepository) GetUserByEmail(ctx context.Context, exec Executor, email string) (models.User, error) {
	return repo.getUserWhere(ctx, exec, squirrel.Expr("email = lower(?)", email))
}

func (repo *DbRepository) getUserWhere(ctx context.Context, exec Executor, where squirrel.Sqlizer) (models.User, error) {
	return SqlToModel(ctx, exec, NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(where),
		dbmodels.AdaptUser)
}

func (repo *DbRepository) UpdateUser(ctx context.Context, exec Executor, userId string, input models.UpdateUserInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userId})

	if input.Email != nil {
		query = query.Set("email", *input.Email)
	}
	if input.FullName.Valid {
		query = query.Set("full_name", emptyAsNull(input.FullName.String))
	}
	if input.Role != nil {
		query = query.Set("role", *input.Role)
	}
	if input.Phone.Valid {
		query = query.Set("phone", emptyAsNull(input.Phone.String))
	}
	if input.BadgeNumber.Valid {
		query = query.Set("badge_number", emptyAsNull(input.BadgeNumber.String))
	}
	if input.Station.Valid {
		query = query.Set("station", emptyAsNull(input.Station.String))
	}

	tag, err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrUsernameAlreadyExists, "user %s", userId)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(models.ErrUnknownUser, "user %s", userId)
	}
	return nil
}
