package repository

import (
	"kinovzor/internal/model"

	"gorm.io/gorm"
)

// Movie list sort modes.
const (
	SortPopular = "popular"
	SortTitle   = "title"
	SortYear    = "year"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// GetByID returns a movie by id.
func (r *MovieRepository) GetByID(id int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create inserts a movie.
func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// Update applies a field map to a movie and returns the fresh record. An
// empty map is a no-op that just re-reads the row.
func (r *MovieRepository) Update(id int64, updates map[string]interface{}) (*model.Movie, error) {
	if len(updates) == 0 {
		return r.GetByID(id)
	}
	result := r.db.Model(&model.Movie{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete removes a movie together with its reviews and favorites, children
// first, in one transaction.
func (r *MovieRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Movie{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List returns a page of the catalog with optional genre filter. Sort modes:
// popular (newest id first), title, year.
func (r *MovieRepository) List(skip, limit int, genre *string, sort string) ([]model.Movie, int64, error) {
	query := r.db.Model(&model.Movie{})

	if genre != nil && *genre != "" && *genre != "all" {
		query = query.Where("genre = ?", *genre)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sort {
	case SortTitle:
		query = query.Order("title ASC")
	case SortYear:
		query = query.Order("year DESC")
	default:
		query = query.Order("id DESC")
	}

	var movies []model.Movie
	if err := query.Offset(skip).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// Search is the database fallback for catalog search when Elasticsearch is
// unavailable. Matches title or description.
func (r *MovieRepository) Search(skip, limit int, q string, genre *string) ([]model.Movie, int64, error) {
	query := r.db.Model(&model.Movie{})

	if q != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if genre != nil && *genre != "" && *genre != "all" {
		query = query.Where("genre = ?", *genre)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var movies []model.Movie
	if err := query.Order("id DESC").Offset(skip).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// GetByIDs returns movies in no particular order.
func (r *MovieRepository) GetByIDs(ids []int64) ([]model.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var movies []model.Movie
	err := r.db.Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

// Count returns the catalog size.
func (r *MovieRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Count(&count).Error
	return count, err
}
