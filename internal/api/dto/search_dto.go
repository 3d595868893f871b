package dto

// SearchMovieRequest is the catalog search query.
type SearchMovieRequest struct {
	Q        string  `form:"q"`
	Genre    *string `form:"genre"`
	YearFrom *int    `form:"year_from"`
	YearTo   *int    `form:"year_to"`
	Sort     string  `form:"sort"` // relevance (default), rating, year
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}

// SearchMovieInfo is a search hit. Rating fields come from the search index
// and may lag slightly behind the database; highlights are only present for
// Elasticsearch results.
type SearchMovieInfo struct {
	MovieInfo
	RatingCount   int64               `json:"rating_count"`
	RatingAverage *float64            `json:"rating_average"`
	Highlight     map[string][]string `json:"highlight,omitempty"`
}

// SearchMovieData is a page of search results.
type SearchMovieData struct {
	Movies     []SearchMovieInfo `json:"movies"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int64             `json:"total_pages"`
}
