/**
 * @description
 * This file defines the error type surfaced for failed backend calls. The
 * portal never interprets backend error bodies; it keeps the status and raw
 * body for diagnostics and lets callers branch on status where needed.
 */
package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed backend call. Body holds the raw response body, trimmed
// for logging.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
