package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultErrorMessage is surfaced when the server gives no usable detail.
const DefaultErrorMessage = "An unexpected error occurred."

// Error is a normalized request failure. StatusCode is 0 when no response
// was received.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       []byte
	Cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UnauthorizedError is returned as-is for HTTP 401 so callers can tell a
// session problem apart from a generic failure. Its message is never
// replaced by the server's detail field.
type UnauthorizedError struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// IsUnauthorized reports whether err carries an unnormalized 401 response.
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// detailMessage extracts the server's error detail. FastAPI sends either a
// string or a list of {loc, msg, type} objects.
func detailMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.Type == gjson.String:
		return strings.TrimSpace(detail.String())
	case detail.IsArray():
		var msgs []string
		for _, item := range detail.Array() {
			if msg := strings.TrimSpace(item.Get("msg").String()); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
