package service

import (
	"context"
	"errors"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/infra/kafka"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrReviewForbidden = errors.New("not allowed to modify this review")
)

// ReviewEventPublisher decouples the service from the broker so tests can run
// without one.
type ReviewEventPublisher interface {
	Publish(ctx context.Context, event *kafka.ReviewEvent) error
}

// KafkaReviewPublisher publishes review events to the configured topic.
type KafkaReviewPublisher struct {
	Topic string
}

func (p *KafkaReviewPublisher) Publish(ctx context.Context, event *kafka.ReviewEvent) error {
	return kafka.SendReviewEvent(ctx, p.Topic, event)
}

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	movieRepo  *repository.MovieRepository
	publisher  ReviewEventPublisher
}

// NewReviewService creates the review service. Publisher may be nil, in which
// case lifecycle events are simply not emitted.
func NewReviewService(reviewRepo *repository.ReviewRepository, movieRepo *repository.MovieRepository, publisher ReviewEventPublisher) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, movieRepo: movieRepo, publisher: publisher}
}

// CreateReview posts a review on a movie. New reviews always enter the
// moderation queue unapproved, whatever the caller's role.
func (s *ReviewService) CreateReview(ctx context.Context, movieID, userID int64, req *dto.ReviewCreateRequest) (*dto.ReviewInfo, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	review := &model.Review{
		MovieID: movieID,
		UserID:  userID,
		Text:    req.Text,
		Rating:  req.Rating,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.ReviewSubmitted, review)

	logger.Info("Review submitted",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", movieID),
		zap.Int64("user_id", userID),
	)

	// Re-read to pick up the author for the response.
	created, err := s.reviewRepo.GetByID(review.ID)
	if err != nil {
		return nil, err
	}
	info := toReviewInfo(created, false)
	return &info, nil
}

// GetReview returns one review.
func (s *ReviewService) GetReview(id int64) (*dto.ReviewInfo, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	info := toReviewInfo(review, false)
	return &info, nil
}

// ListMovieReviews returns a movie's reviews, newest first. Non-moderators
// only see approved ones.
func (s *ReviewService) ListMovieReviews(movieID int64, includePending bool) ([]dto.ReviewInfo, error) {
	if _, err := s.movieRepo.GetByID(movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByMovie(movieID, !includePending)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReviewInfo, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewInfo(&reviews[i], false))
	}
	return items, nil
}

// ListPendingReviews returns the moderation queue, oldest first.
func (s *ReviewService) ListPendingReviews(page, pageSize int) (*dto.PendingReviewListData, error) {
	skip := (page - 1) * pageSize

	reviews, total, err := s.reviewRepo.ListPending(skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReviewInfo, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewInfo(&reviews[i], true))
	}

	return &dto.PendingReviewListData{
		Reviews:    items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateReview applies a partial update by the review's author. Moderators do
// not get to edit other people's words; they approve or delete.
func (s *ReviewService) UpdateReview(id, userID int64, req *dto.ReviewUpdateRequest) (*dto.ReviewInfo, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrReviewForbidden
	}

	updates := make(map[string]interface{})
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	updated, err := s.reviewRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	info := toReviewInfo(updated, false)
	return &info, nil
}

// ApproveReview publishes a pending review. Approving an already approved
// review changes nothing and still succeeds.
func (s *ReviewService) ApproveReview(ctx context.Context, id int64) (*dto.ReviewInfo, error) {
	if err := s.reviewRepo.Approve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.ReviewApproved, review)

	logger.Info("Review approved",
		zap.Int64("review_id", id),
		zap.Int64("movie_id", review.MovieID),
	)

	info := toReviewInfo(review, false)
	return &info, nil
}

// DeleteReview removes a review. Allowed for the author and for moderators.
func (s *ReviewService) DeleteReview(ctx context.Context, id, userID int64, isModerator bool) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != userID && !isModerator {
		return ErrReviewForbidden
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	s.publish(ctx, kafka.ReviewDeleted, review)

	logger.Info("Review deleted",
		zap.Int64("review_id", id),
		zap.Int64("movie_id", review.MovieID),
	)
	return nil
}

// publish emits a lifecycle event. Event delivery is best effort; the request
// already committed and must not fail because the broker is down.
func (s *ReviewService) publish(ctx context.Context, eventType string, review *model.Review) {
	if s.publisher == nil {
		return
	}
	event := &kafka.ReviewEvent{
		Type:     eventType,
		ReviewID: review.ID,
		MovieID:  review.MovieID,
		UserID:   review.UserID,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish review event",
			zap.String("type", eventType),
			zap.Int64("review_id", review.ID),
			zap.Error(err),
		)
	}
}

func toReviewInfo(review *model.Review, withMovie bool) dto.ReviewInfo {
	info := dto.ReviewInfo{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserID:    review.UserID,
		Text:      review.Text,
		Rating:    review.Rating,
		Approved:  review.Approved,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
	if review.User.ID != 0 {
		username := review.User.Username
		info.Username = &username
	}
	if withMovie && review.Movie.ID != 0 {
		title := review.Movie.Title
		info.MovieTitle = &title
	}
	return info
}
