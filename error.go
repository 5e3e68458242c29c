package urlinfo

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EFETCH    = "fetch"
	EPARSE    = "parse"
	EPERSIST  = "persist"
)

// Error represents an application-specific error. Messages are safe to
// show to end users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("urlinfo error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return EFETCH
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Message()
	}
	return "Internal error."
}

// FetchReason classifies why a fetch failed.
type FetchReason string

// FetchReason values.
const (
	FetchTimeout    FetchReason = "timeout"
	FetchHTTPStatus FetchReason = "http-status"
	FetchNetwork    FetchReason = "network"
)

// FetchError is returned when a page could not be retrieved.
type FetchError struct {
	URL        string
	Reason     FetchReason
	StatusCode int // set when Reason is FetchHTTPStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return "fetch " + e.URL + ": " + e.Message()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message returns a user-facing description of the failure.
func (e *FetchError) Message() string {
	switch e.Reason {
	case FetchTimeout:
		return "request timed out"
	case FetchHTTPStatus:
		return fmt.Sprintf("server responded with HTTP %d", e.StatusCode)
	default:
		return "could not reach server"
	}
}
