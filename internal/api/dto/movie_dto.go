package dto

import "time"

// MovieCreateRequest is the admin payload for adding a catalog entry.
type MovieCreateRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty"`
	Genre       string  `json:"genre" binding:"required,min=1,max=100"`
	Year        int     `json:"year" binding:"required,gte=1888,lte=2100"`
	PosterURL   *string `json:"poster_url" binding:"omitempty,max=500"`
}

// MovieUpdateRequest is a partial movie update.
type MovieUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty"`
	Genre       *string `json:"genre" binding:"omitempty,min=1,max=100"`
	Year        *int    `json:"year" binding:"omitempty,gte=1888,lte=2100"`
	PosterURL   *string `json:"poster_url" binding:"omitempty,max=500"`
}

// MovieInfo is the public view of a movie.
type MovieInfo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Genre       string    `json:"genre"`
	Year        int       `json:"year"`
	PosterURL   *string   `json:"poster_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieListData is a page of the catalog.
type MovieListData struct {
	Movies     []MovieInfo `json:"movies"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
}

// RatingStatsData aggregates a movie's approved, rated reviews. Average is
// absent (null), never zero, when no such review exists.
type RatingStatsData struct {
	Count   int64    `json:"count"`
	Average *float64 `json:"average"`
}

// SiteStatsData is the overall catalog statistic.
type SiteStatsData struct {
	MoviesCount  int64 `json:"movies_count"`
	ReviewsCount int64 `json:"reviews_count"`
}
