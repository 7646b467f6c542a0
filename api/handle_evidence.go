package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleCreateEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateEvidenceBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewEvidenceUsecase()
		evidence, err := usecase.CreateEvidence(ctx, dto.AdaptCreateEvidenceInput(c.Param("fir_id"), body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"evidence": dto.AdaptEvidenceDto(evidence)})
	}
}

func handleListFirEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewEvidenceUsecase()
		evidence, err := usecase.ListEvidenceByFir(ctx, c.Param("fir_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"evidence": dto.AdaptEvidenceListDto(evidence)})
	}
}

func handleGetEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewEvidenceUsecase()
		evidence, err := usecase.GetEvidence(ctx, c.Param("evidence_id"))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"evidence": dto.AdaptEvidenceDto(evidence)})
	}
}
