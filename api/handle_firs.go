package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleCreateFir(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateFirBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewFirUsecase()
		fir, err := usecase.CreateFir(ctx, dto.AdaptCreateFirInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"fir": dto.AdaptFirDto(fir)})
	}
}

func handleListFirs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.PageQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewFirUsecase()
		firs, err := usecase.ListFirs(ctx, dto.AdaptPage(query))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"firs": dto.AdaptFirListDto(firs)})
	}
}

func handleGetFirCount(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewFirUsecase()
		count, err := usecase.GetFirCount(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.Count{Count: count})
	}
}

func handleGetFir(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		firId := c.Param("fir_id")

		usecase := uc.NewFirUsecase()
		fir, err := usecase.GetFir(ctx, firId)
		if presentError(ctx, c, err) {
			return
		}
		if fir == nil {
			presentError(ctx, c, errors.Wrapf(models.ErrUnknownFir, "fir %s", firId))
			return
		}

		c.JSON(http.StatusOK, gin.H{"fir": dto.AdaptFirDto(*fir)})
	}
}

func handleUpdateFir(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.UpdateFirBody
		if presentError(ctx, c, adaptBindingError(c.ShouldBindJSON(&body))) {
			return
		}

		usecase := uc.NewFirUsecase()
		fir, err := usecase.UpdateFir(ctx, c.Param("fir_id"), dto.AdaptUpdateFirInput(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"fir": dto.AdaptFirDto(fir)})
	}
}

func handleDeleteFir(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewFirUsecase()
		if presentError(ctx, c, usecase.DeleteFir(ctx, c.Param("fir_id"))) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleListReporterFirs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.PageQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewFirUsecase()
		firs, err := usecase.ListFirsByReporter(ctx, c.Param("user_id"), dto.AdaptPage(query))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"firs": dto.AdaptFirListDto(firs)})
	}
}

func handleListOfficerFirs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.PageQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewFirUsecase()
		firs, err := usecase.ListFirsByOfficer(ctx, c.Param("user_id"), dto.AdaptPage(query))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"firs": dto.AdaptFirListDto(firs)})
	}
}
