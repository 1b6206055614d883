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

type NotesHandler struct {
	Notes  *usecase.NoteService
	Logger *zap.Logger
}

func NewNotesHandler(notes *usecase.NoteService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{Notes: notes, Logger: logger}
}

// List handles GET /notes?q=&tags=
func (h *NotesHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	notes, err := h.Notes.ListNotes(c.Request.Context(), userID, c.Query("q"), c.Query("tags"))
	if err != nil {
		respondError(c, h.Logger, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, notes)
}

func (h *NotesHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	note, err := h.Notes.GetNote(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.Logger, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) Create(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.Notes.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.Logger, err, "Note not found")
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NotesHandler) Update(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.Notes.UpdateNote(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, h.Logger, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.Notes.DeleteNote(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, h.Logger, err, "Note not found")
		return
	}

	utils.Message(c, "Note deleted successfully")
}
