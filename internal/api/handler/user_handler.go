package handler

import (
	"strconv"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/api/middleware"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"errors"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get returns a user profile
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} response.Response{data=dto.UserInfo} "profile"
// @Failure 404 {object} response.ErrorResponse "user not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	info, err := h.userService.GetUser(userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "user loaded", info)
}

// Update applies a partial profile update
// @Summary Update own profile
// @Description Only assigned fields change; email and username stay unique
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserUpdateRequest true "fields to change"
// @Success 200 {object} response.Response{data=dto.UserInfo} "updated profile"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 409 {object} response.ErrorResponse "email or username taken"
// @Router /users/me [patch]
func (h *UserHandler) Update(c *gin.Context) {
	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	info, err := h.userService.UpdateUser(currentUserID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "profile updated", info)
}

// Delete removes a user account (admin)
// @Summary Delete a user
// @Description Removes the account with its reviews and favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} response.Response "user deleted"
// @Failure 403 {object} response.ErrorResponse "admin access required"
// @Failure 404 {object} response.ErrorResponse "user not found"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "user deleted", nil)
}

// List returns accounts for the admin panel
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Param username query string false "username substring filter"
// @Success 200 {object} response.Response{data=dto.PaginatedData} "user page"
// @Failure 403 {object} response.ErrorResponse "admin access required"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var username *string
	if v := c.Query("username"); v != "" {
		username = &v
	}

	data, err := h.userService.ListUsers(page, pageSize, username)
	if err != nil {
		logger.Error("List users failed", zap.Error(err))
		response.InternalError(c, "failed to list users")
		return
	}

	response.OK(c, "users loaded", data)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrUsernameExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
