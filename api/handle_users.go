package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleCreateUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateUserBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewUserUsecase()
		user, err := usecase.CreateUser(ctx, dto.AdaptCreateUserInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUserUsecase()
		user, err := usecase.GetUser(ctx, c.Param("user_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleGetUserByUsername(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUserUsecase()
		user, err := usecase.GetUserByUsername(ctx, c.Param("username"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleGetUserByEmail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUserUsecase()
		user, err := usecase.GetUserByEmail(ctx, c.Param("email"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleUpdateUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.UpdateUserBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewUserUsecase()
		user, err := usecase.UpdateUser(ctx, c.Param("user_id"), dto.AdaptUpdateUserInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}
