package repository

import (
	"kinovzor/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the (movie, user) pair unless it already exists. The check and
// insert run in one transaction, and the unique index on the pair backs the
// check up under concurrent requests. Returns false when the pair was already
// present.
func (r *FavoriteRepository) Add(movieID, userID int64) (*model.Favorite, bool, error) {
	fav := &model.Favorite{MovieID: movieID, UserID: userID}
	created := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Favorite{}).
			Where("movie_id = ? AND user_id = ?", movieID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(fav).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !created {
		return nil, false, nil
	}
	return fav, true, nil
}

// Remove deletes the pair. Removing an absent pair is not an error; the
// result just reports whether a row went away.
func (r *FavoriteRepository) Remove(movieID, userID int64) (bool, error) {
	result := r.db.Where("movie_id = ? AND user_id = ?", movieID, userID).Delete(&model.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether the user has favorited the movie.
func (r *FavoriteRepository) Exists(movieID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("movie_id = ? AND user_id = ?", movieID, userID).Count(&count).Error
	return count > 0, err
}

// ListMoviesByUser returns the full movie records of a user's favorites,
// most recently favorited first.
func (r *FavoriteRepository) ListMoviesByUser(userID int64) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Model(&model.Movie{}).
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// CountByMovie returns how many users favorited the movie.
func (r *FavoriteRepository) CountByMovie(movieID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
