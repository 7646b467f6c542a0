package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec repositories.Executor, input models.CreateUserInput, newId string) error
	GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	GetUserByUsername(ctx context.Context, exec repositories.Executor, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.User, error)
	UpdateUser(ctx context.Context, exec repositories.Executor, userId string, input models.UpdateUserInput) error
}

type UserUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      UserRepository
}

func (usecase UserUsecase) CreateUser(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return models.User{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	id := uuid.NewString()
	if err := usecase.repository.CreateUser(ctx, exec, input, id); err != nil {
		return models.User{}, err
	}
	return usecase.repository.GetUserById(ctx, exec, id)
}

func (usecase UserUsecase) GetUser(ctx context.Context, userId string) (models.User, error) {
	if err := uuid.Validate(userId); err != nil {
		return models.User{}, errors.Wrapf(models.ErrUnknownUser, "user %s", userId)
	}
	return usecase.repository.GetUserById(ctx, usecase.executorFactory.NewExecutor(), userId)
}

func (usecase UserUsecase) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return usecase.repository.GetUserByUsername(ctx, usecase.executorFactory.NewExecutor(), strings.TrimSpace(username))
}

func (usecase UserUsecase) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return usecase.repository.GetUserByEmail(ctx, usecase.executorFactory.NewExecutor(), strings.TrimSpace(email))
}

// UpdateUser returns the user unchanged when input sets nothing, updated_at is only bumped by real changes.
func (usecase UserUsecase) UpdateUser(ctx context.Context, userId string, input models.UpdateUserInput) (models.User, error) {
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
	}
	if input.Role != nil {
		role := models.UserRole(strings.ToUpper(strings.TrimSpace(string(*input.Role))))
		input.Role = &role
	}
	if err := input.Validate(); err != nil {
		return models.User{}, err
	}
	if err := uuid.Validate(userId); err != nil {
		return models.User{}, errors.Wrapf(models.ErrUnknownUser, "user %s", userId)
	}

	exec := usecase.executorFactory.NewExecutor()
	if !input.IsEmpty() {
		if err := usecase.repository.UpdateUser(ctx, exec, userId, input); err != nil {
			return models.User{}, err
		}
	}
	return usecase.repository.GetUserById(ctx, exec, userId)
}
