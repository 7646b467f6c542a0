package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/utils"
)

// presentError writes the error response matching err and reports whether there was one.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	logger := utils.LoggerFromContext(ctx)

	// A middleware such as the body size limiter may already have answered.
	if c.Writer.Written() {
		logger.InfoContext(ctx, "response already written", "error", err.Error())
		_ = c.Error(err)
		return true
	}

	var fields models.FieldValidationError
	var extraction *models.ExtractionFailedError

	switch {
	case errors.As(err, &fields):
		logger.InfoContext(ctx, "validation error", "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{
			Message:   err.Error(),
			ErrorCode: dto.ValidationError,
			Details:   fields,
		})

	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, "bad parameter", "error", err.Error())
		c.JSON(http.StatusBadRequest, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.ValidationError})

	case errors.Is(err, models.ErrUnknownUser):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.UnknownUser})

	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.NotFound})

	case errors.Is(err, models.ErrFirIdAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.FirIdAlreadyExists})

	case errors.Is(err, models.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.UsernameAlreadyUsed})

	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.Conflict})

	case errors.As(err, &extraction):
		logger.WarnContext(ctx, "extraction failed", "error", err.Error(), "attempts", extraction.Attempts)
		c.JSON(http.StatusServiceUnavailable, dto.APIErrorResponse{
			Message:      "the incident description could not be structured, please try again",
			ErrorCode:    dto.ExtractionFailed,
			OriginalText: extraction.OriginalText,
		})

	case errors.Is(err, models.ErrExtractionFailed):
		logger.WarnContext(ctx, "extraction unavailable", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, dto.APIErrorResponse{Message: err.Error(), ErrorCode: dto.ExtractionFailed})

	case errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, "request timed out", "error", err.Error())
		c.JSON(http.StatusRequestTimeout, dto.APIErrorResponse{Message: "request timeout", ErrorCode: dto.RequestTimeout})

	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, dto.APIErrorResponse{
			Message:   "An unexpected error occurred. Please try again later, or contact support if the problem persists.",
			ErrorCode: dto.StoreFailure,
		})
	}

	_ = c.Error(err)
	return true
}
