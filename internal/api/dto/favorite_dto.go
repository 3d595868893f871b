package dto

// FavoriteStatusData reports whether a movie is in the user's favorites.
type FavoriteStatusData struct {
	MovieID    int64 `json:"movie_id"`
	IsFavorite bool  `json:"is_favorite"`
}

// FavoriteListData holds a user's favorite movies as full records, not ids.
type FavoriteListData struct {
	Movies []MovieInfo `json:"movies"`
	Total  int64       `json:"total"`
}
