package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrRequestFailed = errors.New("request failed")
	ErrBadResponse   = errors.New("malformed response")
)

// GenericFailureDetail is used when a failed response carries no body.
const GenericFailureDetail = "Network response was not ok"

// RequestError describes a failed call. StatusCode is 0 when no response
// was received.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string

	kind  error
	cause error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, e.kind, e.cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.kind)
}

func (e *RequestError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// HTTPStatus reports the status code carried by err, if any.
func HTTPStatus(err error) (int, bool) {
	var re *RequestError
	if errors.As(err, &re) && re.StatusCode != 0 {
		return re.StatusCode, true
	}
	return 0, false
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return ErrUnavailable
	default:
		return ErrRequestFailed
	}
}
