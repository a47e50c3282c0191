package models

// PaginatedResult is one page of rows plus paging metadata. Total counts every
// row satisfying the filter across all pages; TotalPages is ceil(Total/Limit).
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// MapPage converts a page of one element type into another, keeping the
// paging metadata intact.
func MapPage[T, U any](p *PaginatedResult[T], fn func(T) U) *PaginatedResult[U] {
	data := make([]U, 0, len(p.Data))
	for _, item := range p.Data {
		data = append(data, fn(item))
	}
	return &PaginatedResult[U]{
		Data:       data,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
