package handler

import (
	"errors"
	"strconv"

	"kinovzor/internal/api/middleware"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add puts a movie on the caller's favorites list
// @Summary Add a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Success 201 {object} response.Response{data=dto.FavoriteStatusData} "favorite added"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Failure 409 {object} response.ErrorResponse "already favorited"
// @Router /movies/{id}/favorite [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	status, err := h.favoriteService.AddFavorite(movieID, currentUserID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.Created(c, "favorite added", status)
}

// Remove takes a movie off the caller's favorites list
// @Summary Remove a favorite
// @Description Removing a movie that was never favorited also succeeds
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Success 200 {object} response.Response{data=dto.FavoriteStatusData} "favorite removed"
// @Router /movies/{id}/favorite [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	status, err := h.favoriteService.RemoveFavorite(movieID, currentUserID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, "favorite removed", status)
}

// Status reports whether the caller favorited the movie
// @Summary Get favorite status
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Success 200 {object} response.Response{data=dto.FavoriteStatusData} "favorite status"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id}/favorite [get]
func (h *FavoriteHandler) Status(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	status, err := h.favoriteService.FavoriteStatus(movieID, currentUserID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, "favorite status loaded", status)
}

// List returns the caller's favorite movies
// @Summary List favorites
// @Description Full movie records, most recently favorited first
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.FavoriteListData} "favorites"
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	data, err := h.favoriteService.ListFavorites(currentUserID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, "favorites loaded", data)
}

func handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Favorite operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
