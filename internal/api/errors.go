package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (apiErr *APIError) Error() string {
	if apiErr.Message == "" {
		return fmt.Sprintf("api: %d %s", apiErr.Status, http.StatusText(apiErr.Status))
	}
	return fmt.Sprintf("api: %d: %s", apiErr.Status, apiErr.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
