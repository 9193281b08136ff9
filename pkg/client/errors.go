package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotLoggedIn is returned by authenticated calls when there is no token.
// No request is sent.
var ErrNotLoggedIn = errors.New("not logged in")

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// APIError is a well-formed response whose code field is not 200.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return e.Msg
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsAPICode returns true if err (or any wrapped error) is an APIError with the given code.
func IsAPICode(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// IsAuthFailure reports whether err means the session is no longer usable:
// no token, an HTTP 401, or a 401 code inside an otherwise successful response.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrNotLoggedIn) ||
		IsStatus(err, http.StatusUnauthorized) ||
		IsAPICode(err, http.StatusUnauthorized)
}
