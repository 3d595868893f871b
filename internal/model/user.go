package model

import "time"

// User account model. Password always holds a bcrypt hash, never plaintext.
type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // json:"-" keeps the hash out of responses
	Username    string    `gorm:"size:255;not null;index:idx_users_username" json:"username"`
	IsUser      bool      `gorm:"not null;default:true" json:"is_user"`
	IsModerator bool      `gorm:"not null;default:false" json:"is_moderator"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Reviews   []Review   `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
}

func (User) TableName() string {
	return "users"
}
