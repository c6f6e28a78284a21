package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBusinessRule
	KindConflict
	KindDatabase
)

// FieldError describes one invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error carried from services to handlers
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error kind
func (e *Error) StatusCode() int {
	return StatusCode(e.Kind)
}

func StatusCode(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindBusinessRule:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, details ...FieldError) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: message, Details: details}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: fmt.Sprintf(format, args...)}
}

func BusinessRule(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBusinessRule, Code: "BUSINESS_LOGIC_ERROR", Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: fmt.Sprintf(format, args...)}
}

// Database wraps a persistence failure
func Database(message string, err error) *Error {
	return &Error{Kind: KindDatabase, Code: "DATABASE_ERROR", Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "Internal server error", Err: err}
}

// From returns err as *Error, classifying unknown errors as internal
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err is an application error of the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
