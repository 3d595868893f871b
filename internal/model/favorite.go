package model

import "time"

// Favorite marks a movie as favorited by a user. The (movie_id, user_id) pair
// is unique; the repository checks before insert and the index backs it up.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID   int64     `gorm:"not null;uniqueIndex:uq_movie_user_favorite;index:idx_favorites_movie_id" json:"movie_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_movie_user_favorite;index:idx_favorites_user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Movie Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
