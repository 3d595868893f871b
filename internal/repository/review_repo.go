package repository

import (
	"database/sql"

	"kinovzor/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. Approved is always false at this point; the service
// layer never passes caller-controlled approval state through.
func (r *ReviewRepository) Create(review *model.Review) error {
	review.Approved = false
	return r.db.Create(review).Error
}

// GetByID returns a review with its author loaded.
func (r *ReviewRepository) GetByID(id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByMovie returns a movie's reviews with authors, newest first. When
// approvedOnly is set, pending reviews are filtered out.
func (r *ReviewRepository) ListByMovie(movieID int64, approvedOnly bool) ([]model.Review, error) {
	query := r.db.Where("movie_id = ?", movieID)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	var reviews []model.Review
	err := query.Preload("User").Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListPending returns the moderation queue, oldest first.
func (r *ReviewRepository) ListPending(skip, limit int) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{}).Where("approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	err := query.Preload("User").Preload("Movie").Order("created_at ASC").
		Offset(skip).Limit(limit).Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Update applies a field map to a review and returns the fresh record. An
// empty map is a no-op that just re-reads the row.
func (r *ReviewRepository) Update(id int64, updates map[string]interface{}) (*model.Review, error) {
	if len(updates) == 0 {
		return r.GetByID(id)
	}
	result := r.db.Model(&model.Review{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Approve flips a review to approved. Approving an already approved review is
// a no-op.
func (r *ReviewRepository) Approve(id int64) error {
	result := r.db.Model(&model.Review{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a review. Reviews have no children, so no cascade is needed.
func (r *ReviewRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RatingStats aggregates count and average over a movie's approved, rated
// reviews. Average is NULL when no such review exists. Always computed fresh;
// there is no stored aggregate to drift out of sync.
func (r *ReviewRepository) RatingStats(movieID int64) (int64, sql.NullFloat64, error) {
	var row struct {
		Count   int64
		Average sql.NullFloat64
	}
	err := r.db.Model(&model.Review{}).
		Select("COUNT(*) as count, AVG(rating) as average").
		Where("movie_id = ? AND rating IS NOT NULL AND approved = ?", movieID, true).
		Scan(&row).Error
	if err != nil {
		return 0, sql.NullFloat64{}, err
	}
	return row.Count, row.Average, nil
}

// Count returns the total number of reviews.
func (r *ReviewRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Count(&count).Error
	return count, err
}
