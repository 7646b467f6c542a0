package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleUpdateFirStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.UpdateFirStatusBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewFirStatusUsecase()
		fir, err := usecase.UpdateFirStatus(ctx, c.Param("fir_id"), dto.AdaptFirStatusChange(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"fir": dto.AdaptFirDto(fir)})
	}
}

func handleListStatusUpdates(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewFirStatusUsecase()
		updates, err := usecase.ListStatusUpdates(ctx, c.Param("fir_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"statusUpdates": dto.AdaptStatusUpdateListDto(updates)})
	}
}

func handleCreateStatusUpdate(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateStatusNoteBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewFirStatusUsecase()
		update, err := usecase.AddStatusNote(ctx, c.Param("fir_id"), dto.AdaptFirNote(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"statusUpdate": dto.AdaptStatusUpdateDto(update)})
	}
}
