package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notemark/dto"
	"notemark/services"
	"notemark/usecase"
	"notemark/utils"
)

type TitleHandler struct {
	Fetcher *services.TitleFetcher
	Logger  *zap.Logger
}

func NewTitleHandler(fetcher *services.TitleFetcher, logger *zap.Logger) *TitleHandler {
	return &TitleHandler{Fetcher: fetcher, Logger: logger}
}

// FetchTitle handles POST /fetch-title. The endpoint is public; it only
// proxies a title lookup and touches no user data.
func (h *TitleHandler) FetchTitle(c *gin.Context) {
	var req dto.FetchTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "URL is required")
		return
	}

	if err := usecase.ValidateURL(req.URL); err != nil {
		utils.BadRequest(c, "Invalid URL format")
		return
	}

	title, err := h.Fetcher.FetchTitle(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, services.ErrFetchFailed) {
			utils.BadRequest(c, "Failed to fetch URL")
			return
		}
		h.Logger.Error("title fetch failed", zap.Error(err), zap.String("url", req.URL))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Failed to fetch title"})
		return
	}

	c.JSON(http.StatusOK, dto.FetchTitleResponse{Title: title})
}
