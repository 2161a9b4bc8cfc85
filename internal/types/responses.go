// Package types contains shared API response envelopes.
package types

// PaginationResponse describes the pagination slice returned by list endpoints
type PaginationResponse struct {
	Total  int `json:"total"`
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ListResponse is the generic envelope for paginated list results
type ListResponse[T any] struct {
	Rows       []T                `json:"rows"`
	Pagination PaginationResponse `json:"pagination"`
}

// ErrorResponse is the envelope for REST error payloads
type ErrorResponse struct {
	Error string `json:"error"`
}
