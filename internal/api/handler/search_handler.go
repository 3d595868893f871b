package handler

import (
	"kinovzor/internal/api/dto"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Movies searches the catalog
// @Summary Search movies
// @Description Full-text search with genre and year filters; falls back to a database substring match when the search index is down
// @Tags search
// @Produce json
// @Param q query string false "search text"
// @Param genre query string false "genre filter"
// @Param year_from query int false "earliest year"
// @Param year_to query int false "latest year"
// @Param sort query string false "relevance (default), rating or year"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=dto.SearchMovieData} "search results"
// @Router /search/movies [get]
func (h *SearchHandler) Movies(c *gin.Context) {
	var req dto.SearchMovieRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	data, err := h.searchService.SearchMovies(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Search movies failed", zap.Error(err))
		response.InternalError(c, "search failed, please try again later")
		return
	}

	response.OK(c, "search results loaded", data)
}
