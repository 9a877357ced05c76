package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound      = "not_found"
	CodeInvalidInput  = "invalid_input"
	CodeAlreadyExists = "already_exists"
)

// Error is a classified domain failure. Status is the HTTP status the
// presentation layer answers with.
type Error struct {
	Status int
	Code   string
	Err    error
}

var (
	ErrNotFound      = &Error{Status: http.StatusNotFound, Code: CodeNotFound}
	ErrInvalidInput  = &Error{Status: http.StatusBadRequest, Code: CodeInvalidInput}
	ErrAlreadyExists = &Error{Status: http.StatusConflict, Code: CodeAlreadyExists}
)

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same code, so errors.Is(err, ErrNotFound)
// holds for every NotFound built by this package.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

func InvalidInput(msg string) error {
	return New(http.StatusBadRequest, CodeInvalidInput, errors.New(msg))
}

func AlreadyExists(msg string) error {
	return New(http.StatusConflict, CodeAlreadyExists, errors.New(msg))
}

// Status returns the HTTP status for err, or 500 when err is unclassified.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
