package model

import "time"

// Review of a movie. Rating is optional (1-5 when present). Approved starts
// false and only flips to true through an explicit moderation action.
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID   int64     `gorm:"not null;index:idx_reviews_movie_id;index:idx_composite_movie_created,priority:1" json:"movie_id"`
	UserID    int64     `gorm:"not null;index:idx_reviews_user_id" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    *int      `json:"rating"`
	Approved  bool      `gorm:"not null;default:false;index:idx_reviews_approved" json:"approved"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_composite_movie_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Movie Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
