package api

import (
	"encoding/json"
	"fmt"
)

// HTTPError is returned when the backend answers with a non-2xx status.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string // first bytes of the response body
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
}

// NotFound reports whether the backend answered 404.
func (e *HTTPError) NotFound() bool {
	return e.StatusCode == 404
}

// InvalidResponseError indicates a 2xx response whose body could not be
// decoded or did not match the expected shape.
type InvalidResponseError struct {
	Path    string
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.Path, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }
