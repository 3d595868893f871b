package dto

import "time"

// ReviewCreateRequest is the payload for posting a review. Rating is optional;
// the 1-5 range is enforced here at the boundary, not in the store.
type ReviewCreateRequest struct {
	Text   string `json:"text" binding:"required,min=1"`
	Rating *int   `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ReviewUpdateRequest is a partial review update by its author.
type ReviewUpdateRequest struct {
	Text   *string `json:"text" binding:"omitempty,min=1"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ReviewInfo is the public view of a review, with the author's username
// joined in.
type ReviewInfo struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	UserID     int64     `json:"user_id"`
	Username   *string   `json:"username,omitempty"`
	MovieTitle *string   `json:"movie_title,omitempty"`
	Text       string    `json:"text"`
	Rating     *int      `json:"rating"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PendingReviewListData is a page of the moderation queue.
type PendingReviewListData struct {
	Reviews    []ReviewInfo `json:"reviews"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int64        `json:"total_pages"`
}
