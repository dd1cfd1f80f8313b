package dto

// PaginatedResult is an immutable view over one page of items plus the total
// count matching the query before pagination. Derived fields are computed once
// at construction and never mutated afterwards.
type PaginatedResult[T any] struct {
	Items           []T   `json:"items"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int64 `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPaginatedResult builds the envelope and its derived fields.
// totalPages == ceil(totalCount / pageSize).
func NewPaginatedResult[T any](items []T, page, pageSize int, totalCount int64) *PaginatedResult[T] {
	if items == nil {
		items = make([]T, 0)
	}

	var totalPages int64
	if pageSize > 0 {
		totalPages = (totalCount + int64(pageSize) - 1) / int64(pageSize)
	}

	return &PaginatedResult[T]{
		Items:           items,
		Page:            page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     int64(page) < totalPages,
		HasPreviousPage: page > 1,
	}
}
