package handler

import (
	"errors"
	"strconv"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxPosterSize = 10 * 1024 * 1024 // 10MB

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List returns a catalog page
// @Summary List movies
// @Description Pages through the catalog with optional genre filter and sort
// @Tags movies
// @Produce json
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Param genre query string false "genre filter, 'all' means no filter"
// @Param sort query string false "popular (default), title or year"
// @Success 200 {object} response.Response{data=dto.MovieListData} "movie page"
// @Router /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var genre *string
	if v := c.Query("genre"); v != "" {
		genre = &v
	}
	sort := c.DefaultQuery("sort", "popular")

	data, err := h.movieService.ListMovies(page, pageSize, genre, sort)
	if err != nil {
		logger.Error("List movies failed", zap.Error(err))
		response.InternalError(c, "failed to list movies")
		return
	}

	response.OK(c, "movies loaded", data)
}

// Get returns one movie
// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} response.Response{data=dto.MovieInfo} "movie"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	info, err := h.movieService.GetMovie(movieID)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.OK(c, "movie loaded", info)
}

// Create adds a catalog entry (admin)
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MovieCreateRequest true "movie payload"
// @Success 201 {object} response.Response{data=dto.MovieInfo} "movie created"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 403 {object} response.ErrorResponse "admin access required"
// @Router /movies [post]
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.MovieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	info, err := h.movieService.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Create movie failed", zap.Error(err))
		response.InternalError(c, "failed to create movie")
		return
	}

	response.Created(c, "movie created", info)
}

// Update applies a partial movie update (admin)
// @Summary Update a movie
// @Description Only assigned fields change
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Param request body dto.MovieUpdateRequest true "fields to change"
// @Success 200 {object} response.Response{data=dto.MovieInfo} "updated movie"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id} [patch]
func (h *MovieHandler) Update(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	var req dto.MovieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	info, err := h.movieService.UpdateMovie(c.Request.Context(), movieID, &req)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.OK(c, "movie updated", info)
}

// Delete removes a movie (admin)
// @Summary Delete a movie
// @Description Removes the movie with its reviews and favorites
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Success 200 {object} response.Response "movie deleted"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	if err := h.movieService.DeleteMovie(c.Request.Context(), movieID); err != nil {
		handleMovieError(c, err)
		return
	}

	response.OK(c, "movie deleted", nil)
}

// RatingStats returns a movie's rating aggregate
// @Summary Get rating stats
// @Description Count and one-decimal average over approved, rated reviews
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} response.Response{data=dto.RatingStatsData} "rating stats"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id}/rating-stats [get]
func (h *MovieHandler) RatingStats(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	stats, err := h.movieService.RatingStats(movieID)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.OK(c, "rating stats loaded", stats)
}

// SiteStats returns overall catalog counts
// @Summary Get site stats
// @Tags movies
// @Produce json
// @Success 200 {object} response.Response{data=dto.SiteStatsData} "site stats"
// @Router /movies/stats [get]
func (h *MovieHandler) SiteStats(c *gin.Context) {
	stats, err := h.movieService.SiteStats()
	if err != nil {
		logger.Error("Get site stats failed", zap.Error(err))
		response.InternalError(c, "failed to load site stats")
		return
	}

	response.OK(c, "site stats loaded", stats)
}

// UploadPoster stores a poster image (admin)
// @Summary Upload a movie poster
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Param poster formData file true "poster image"
// @Success 200 {object} response.Response{data=dto.MovieInfo} "poster set"
// @Failure 400 {object} response.ErrorResponse "invalid file"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id}/poster [post]
func (h *MovieHandler) UploadPoster(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	file, err := c.FormFile("poster")
	if err != nil {
		response.BadRequest(c, "poster file is required")
		return
	}
	if file.Size == 0 || file.Size > maxPosterSize {
		response.BadRequest(c, "poster size must be between 1 byte and 10MB")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.InternalError(c, "failed to open uploaded file")
		return
	}
	defer f.Close()

	contentType := file.Header.Get("Content-Type")

	info, err := h.movieService.UploadPoster(c.Request.Context(), movieID, f, file.Size, contentType, file.Filename)
	if err != nil {
		handleMovieError(c, err)
		return
	}

	response.OK(c, "poster uploaded", info)
}

func handleMovieError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUnsupportedPoster):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Movie operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
