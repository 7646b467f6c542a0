package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/usecases"
)

// handleGetFirDocument buffers the PDF so a rendering failure can still be reported as JSON.
func handleGetFirDocument(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		firId := c.Param("fir_id")

		var buf bytes.Buffer
		usecase := uc.NewDocumentUsecase()
		if presentError(ctx, c, usecase.WriteFirDocument(ctx, firId, &buf)) {
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, firId))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
