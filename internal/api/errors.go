package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure for presentation and retry policy.
type Kind string

const (
	// KindTransport covers network and timeout failures. Retryable; callers
	// keep prior state.
	KindTransport Kind = "transport"
	// KindUnauthorized means the session token was rejected. Never swallowed
	// silently; the session layer handles it.
	KindUnauthorized Kind = "unauthorized"
	// KindValidation means the backend rejected the input, e.g. a duplicate
	// check-in for the day. The detail string is surfaced verbatim.
	KindValidation Kind = "validation"
	// KindNotFound means the referenced resource no longer exists; the UI
	// should reload its list to self-heal.
	KindNotFound Kind = "not_found"
	// KindServer covers everything else.
	KindServer Kind = "server"
)

// Error is the uniform failure value for all backend calls. Detail carries the
// backend's optional error-detail string when present; nothing more is assumed
// about error response bodies.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string
	wrapped    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch e.Kind {
	case KindTransport:
		return "could not reach the server, please try again"
	case KindUnauthorized:
		return "your session has expired, please log in again"
	case KindValidation:
		return "the server rejected the request"
	case KindNotFound:
		return "the requested resource was not found"
	default:
		return fmt.Sprintf("unexpected server error (status %d)", e.StatusCode)
	}
}

func (e *Error) Unwrap() error { return e.wrapped }

// Retryable reports whether re-invoking the same action can succeed without
// any other change. Only transport failures qualify; nothing is retried
// automatically.
func (e *Error) Retryable() bool { return e.Kind == KindTransport }

// AsError unwraps err into an *Error when the failure originated here.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an API error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, wrapped: err}
}

func statusError(statusCode int, detail string) *Error {
	e := &Error{StatusCode: statusCode, Detail: detail}
	switch statusCode {
	case http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	default:
		e.Kind = KindServer
	}
	return e
}
