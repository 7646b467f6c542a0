package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/usecases"
)

func handleSearchFirs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.SearchFirsQuery
		if presentError(ctx, c, adaptBindingError(c.ShouldBindQuery(&query))) {
			return
		}

		usecase := uc.NewSearchUsecase()
		result, err := usecase.SearchFirs(ctx, dto.AdaptFirSearchParams(query))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptFirSearchResult(result))
	}
}
