package handler

import (
	"errors"
	"strconv"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/api/middleware"
	"kinovzor/internal/api/response"
	"kinovzor/internal/service"
	"kinovzor/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	flagsFetcher  middleware.UserFlagsFetcher
}

// NewReviewHandler creates the review handler. The flags fetcher decides
// whether a delete request comes from a moderator.
func NewReviewHandler(reviewService *service.ReviewService, flagsFetcher middleware.UserFlagsFetcher) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, flagsFetcher: flagsFetcher}
}

// Create posts a review on a movie
// @Summary Submit a review
// @Description New reviews always await moderation before becoming visible
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "movie id"
// @Param request body dto.ReviewCreateRequest true "review payload"
// @Success 201 {object} response.Response{data=dto.ReviewInfo} "review submitted"
// @Failure 400 {object} response.ErrorResponse "invalid payload"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
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

	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	info, err := h.reviewService.CreateReview(c.Request.Context(), movieID, currentUserID, &req)
	if err != nil {
		handleReviewError(c, err)
		return
	}

	response.Created(c, "review submitted for moderation", info)
}

// ListByMovie returns a movie's reviews
// @Summary List a movie's reviews
// @Description Approved reviews only; moderators also see pending ones
// @Tags reviews
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} response.Response{data=[]dto.ReviewInfo} "reviews"
// @Failure 404 {object} response.ErrorResponse "movie not found"
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return
	}

	includePending := h.isModerator(c)

	items, err := h.reviewService.ListMovieReviews(movieID, includePending)
	if err != nil {
		handleReviewError(c, err)
		return
	}

	response.OK(c, "reviews loaded", items)
}

// Get returns one review
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} response.Response{data=dto.ReviewInfo} "review"
// @Failure 404 {object} response.ErrorResponse "review not found"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	info, err := h.reviewService.GetReview(reviewID)
	if err != nil {
		handleReviewError(c, err)
		return
	}

	response.OK(c, "review loaded", info)
}

// Update edits the caller's own review
// @Summary Update a review
// @Description Author only; only assigned fields change
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "review id"
// @Param request body dto.ReviewUpdateRequest true "fields to change"
// @Success 200 {object} response.Response{data=dto.ReviewInfo} "updated review"
// @Failure 403 {object} response.ErrorResponse "not the author"
// @Failure 404 {object} response.ErrorResponse "review not found"
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload: "+err.Error())
		return
	}

	info, err := h.reviewService.UpdateReview(reviewID, currentUserID, &req)
	if err != nil {
		handleReviewError(c, err)
		return
	}

	response.OK(c, "review updated", info)
}

// Approve publishes a pending review (moderator)
// @Summary Approve a review
// @Description Idempotent; approving twice changes nothing
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "review id"
// @Success 200 {object} response.Response{data=dto.ReviewInfo} "review approved"
// @Failure 403 {object} response.ErrorResponse "moderator access required"
// @Failure 404 {object} response.ErrorResponse "review not found"
// @Router /reviews/{id}/approve [post]
func (h *ReviewHandler) Approve(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	info, err := h.reviewService.ApproveReview(c.Request.Context(), reviewID)
	if err != nil {
		handleReviewError(c, err)
		return
	}

	response.OK(c, "review approved", info)
}

// Delete removes a review
// @Summary Delete a review
// @Description Allowed for the author and for moderators
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "review id"
// @Success 200 {object} response.Response "review deleted"
// @Failure 403 {object} response.ErrorResponse "not allowed"
// @Failure 404 {object} response.ErrorResponse "review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	currentUserID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID, currentUserID, h.isModerator(c)); err != nil {
		handleReviewError(c, err)
		return
	}

	response.OK(c, "review deleted", nil)
}

// ListPending returns the moderation queue (moderator)
// @Summary List pending reviews
// @Description Oldest submissions first
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} response.Response{data=dto.PendingReviewListData} "moderation queue"
// @Failure 403 {object} response.ErrorResponse "moderator access required"
// @Router /reviews/pending [get]
func (h *ReviewHandler) ListPending(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.reviewService.ListPendingReviews(page, pageSize)
	if err != nil {
		logger.Error("List pending reviews failed", zap.Error(err))
		response.InternalError(c, "failed to load moderation queue")
		return
	}

	response.OK(c, "pending reviews loaded", data)
}

// isModerator checks the caller's flags. Anonymous callers and lookup
// failures count as non-moderators.
func (h *ReviewHandler) isModerator(c *gin.Context) bool {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok || h.flagsFetcher == nil {
		return false
	}
	flags, err := h.flagsFetcher(userID)
	if err != nil {
		return false
	}
	return flags.IsModerator || flags.IsAdmin
}

func handleReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReviewNotFound), errors.Is(err, service.ErrMovieNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrReviewForbidden):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Review operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
