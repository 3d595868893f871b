package model

import "time"

// Movie catalog entry. Title, genre and year are required; description and
// poster are optional.
type Movie struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null;index:idx_movies_title" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Genre       string    `gorm:"size:100;not null;index:idx_movies_genre" json:"genre"`
	Year        int       `gorm:"not null;index:idx_movies_year" json:"year"`
	PosterURL   *string   `gorm:"size:500" json:"poster_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Reviews   []Review   `gorm:"foreignKey:MovieID" json:"reviews,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:MovieID" json:"favorites,omitempty"`
}

func (Movie) TableName() string {
	return "movies"
}
