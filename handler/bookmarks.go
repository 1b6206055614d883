package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notemark/dto"
	"notemark/middleware"
	"notemark/usecase"
	"notemark/utils"
)

type BookmarksHandler struct {
	Bookmarks *usecase.BookmarkService
	Logger    *zap.Logger
}

func NewBookmarksHandler(bookmarks *usecase.BookmarkService, logger *zap.Logger) *BookmarksHandler {
	return &BookmarksHandler{Bookmarks: bookmarks, Logger: logger}
}

// List handles GET /bookmarks?q=&tags=
func (h *BookmarksHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	bookmarks, err := h.Bookmarks.ListBookmarks(c.Request.Context(), userID, c.Query("q"), c.Query("tags"))
	if err != nil {
		respondError(c, h.Logger, err, "Bookmark not found")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarksHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	bookmark, err := h.Bookmarks.GetBookmark(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.Logger, err, "Bookmark not found")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

func (h *BookmarksHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bookmark, err := h.Bookmarks.CreateBookmark(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.Logger, err, "Bookmark not found")
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarksHandler) Update(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	bookmark, err := h.Bookmarks.UpdateBookmark(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, h.Logger, err, "Bookmark not found")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

func (h *BookmarksHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.Bookmarks.DeleteBookmark(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, h.Logger, err, "Bookmark not found")
		return
	}

	utils.Message(c, "Bookmark deleted successfully")
}
