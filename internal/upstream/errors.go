package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches an *APIError whose upstream status was 404.
var ErrNotFound = errors.New("upstream: not found")

// ErrEmptyBody is a success status without the expected JSON body.
var ErrEmptyBody = errors.New("upstream: empty response body")

// APIError is a completed call that came back with a non-success status.
// Transport failures (refused connection, timeout) are never an APIError.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Content    string
	Header     http.Header
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %s %s: status=%d body=%s", e.Method, e.URL, e.StatusCode, e.Content)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
