package portal

import (
	"errors"
	"fmt"
)

// APIError covers every failed call. Transport failures carry Status 0;
// HTTP failures carry the response status and the server's error
// message when one decodes.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("network error: %s", e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func networkError(err error) *APIError {
	return &APIError{Status: 0, Message: err.Error()}
}

// IsNotFound reports whether err is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
