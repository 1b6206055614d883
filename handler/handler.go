package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notemark/repository"
	"notemark/usecase"
	"notemark/utils"
)

// respondError maps usecase and repository errors to HTTP responses.
// Validation errors become a 400 carrying the message verbatim, not-found
// becomes a 404, and anything else is logged and surfaced as an opaque 500.
func respondError(c *gin.Context, logger *zap.Logger, err error, notFoundMessage string) {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.BadRequest(c, ve.Message)
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, notFoundMessage)
	default:
		logger.Error("request failed",
			zap.Error(err),
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.Request.URL.Path),
		)
		utils.InternalError(c)
	}
}
