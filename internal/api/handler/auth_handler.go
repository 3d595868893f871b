package handler

import (
	"errors"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/api/middleware"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a viewer account
// @Summary Register a new account
// @Description Creates a viewer account with a unique email and username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "registration payload"
// @Success 201 {object} response.Response{data=dto.UserInfo} "account created"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 409 {object} response.ErrorResponse "email or username taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	userInfo, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrUsernameExists):
			response.Conflict(c, err.Error())
		default:
			logger.Error("Register failed", zap.Error(err))
			response.InternalError(c, "registration failed, please try again later")
		}
		return
	}

	response.Created(c, "account created", userInfo)
}

// Login authenticates and issues a token
// @Summary Log in
// @Description Authenticates by username and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "login payload"
// @Success 200 {object} response.Response{data=dto.TokenData} "logged in"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 401 {object} response.ErrorResponse "invalid username or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	tokenData, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Login failed", zap.Error(err))
		response.InternalError(c, "login failed, please try again later")
		return
	}

	response.OK(c, "logged in", tokenData)
}

// Logout revokes the current token
// @Summary Log out
// @Description Revokes the current token for its remaining lifetime
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "logged out"
// @Failure 401 {object} response.ErrorResponse "unauthorized"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.GetCurrentToken(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		response.InternalError(c, "logout failed, please try again later")
		return
	}

	response.OK(c, "logged out", nil)
}

// Me returns the current user's profile
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "profile"
// @Failure 401 {object} response.ErrorResponse "unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	userInfo, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Get current user failed", zap.Error(err))
		response.InternalError(c, "failed to load profile")
		return
	}

	response.OK(c, "profile loaded", userInfo)
}
