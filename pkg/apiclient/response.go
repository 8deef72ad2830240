/**
 * @description
 * This file defines the response envelopes shared by every backend service.
 * Mutating endpoints wrap their payload in ApiResponse; list endpoints that
 * page return PagedResponse.
 */
package apiclient

// ApiResponse is the standard envelope returned by mutating backend
// endpoints. Data is absent when the call carries no payload.
type ApiResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// PagedResponse is the standard envelope for paged list endpoints. Number is
// the zero-based page index.
type PagedResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
