package dto

// UserUpdateRequest is a partial profile update. Only assigned fields are
// written; an empty request leaves the record untouched.
type UserUpdateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Username *string `json:"username" binding:"omitempty,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=255"`
}

// PaginationMeta describes a result page.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// PaginatedData is a generic paginated payload.
type PaginatedData struct {
	Items interface{}    `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
