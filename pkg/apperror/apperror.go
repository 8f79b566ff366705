package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate")
	ErrInternal     = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.BaseError.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.BaseError.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	if identifier != "" {
		msg = fmt.Sprintf("%s with id '%s' not found", resource, identifier)
	}
	return NewAppError(ErrNotFound, msg, nil)
}

func NewInvalidInput(msg string, err error) *AppError {
	return NewAppError(ErrInvalidInput, msg, err)
}

func NewDuplicate(resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrDuplicate, msg, nil)
}

func NewInternal(msg string, err error) *AppError {
	return NewAppError(ErrInternal, msg, err)
}

// ToHTTPStatus maps the error taxonomy onto response codes. Uniqueness
// violations surface as 400 like any other validation failure; storage
// faults surface as 500.
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
