package dto

type PaginatedResult[T any] struct {
	Sources    []T   `json:"sources"`
	PageIndex  int   `json:"page_index"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}
