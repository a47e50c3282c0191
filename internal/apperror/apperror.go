// Package apperror defines the application error taxonomy shared by the
// repository, usecase and handler layers.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindValidation
	KindDatabase
	KindAuthentication
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal server error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// Database wraps a store-level failure distinct from "not found".
func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Err: err}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
