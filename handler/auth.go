package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notemark/dto"
	"notemark/middleware"
	"notemark/usecase"
	"notemark/utils"
)

type AuthHandler struct {
	Users  *usecase.UserService
	Logger *zap.Logger
}

func NewAuthHandler(users *usecase.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Username, email and password are required")
		return
	}

	user, token, err := h.Users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			utils.BadRequest(c, "Username already exists")
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.BadRequest(c, "Email already exists")
		default:
			respondError(c, h.Logger, err, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Username/Email and password are required")
		return
	}

	user, token, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.Unauthorized(c, "User not found")
		case errors.Is(err, usecase.ErrIncorrectPassword):
			utils.Unauthorized(c, "Incorrect password")
		default:
			respondError(c, h.Logger, err, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.Users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		respondError(c, h.Logger, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
