package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleExtractFir(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ExtractionBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewExtractionUsecase()
		extracted, err := usecase.Extract(ctx, body.Text)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptExtractedFirDto(extracted))
	}
}

// handleRegisterFirFromText extracts and stores in one call, the chat flow without a review step.
func handleRegisterFirFromText(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ExtractionBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewExtractionUsecase()
		fir, err := usecase.RegisterFromText(ctx, body.Text, body.ReporterId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"fir": dto.AdaptFirDto(fir)})
	}
}
