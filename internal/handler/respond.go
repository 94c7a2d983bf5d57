package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firepost/backend/internal/apperr"
	"github.com/firepost/backend/internal/logging"
	"github.com/firepost/backend/internal/model"
)

// writeError is the single error-to-HTTP translator. Operational apperr
// values map to their own status; anything else is logged and surfaced as
// a sanitized 500 (verbose mode echoes the error text for development).
func writeError(c *gin.Context, log logging.Logger, verbose bool, err error) {
	if appErr, ok := apperr.From(err); ok && appErr.Operational {
		c.JSON(appErr.Status, model.ErrorResponse{
			Status:     "error",
			StatusCode: appErr.Status,
			Message:    appErr.Message,
			Details:    appErr.Details,
		})
		return
	}

	log.Error(c.Request.Context(), "unexpected error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err.Error(),
	)

	message := "Internal server error"
	if verbose {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{
		Status:     "error",
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	})
}
