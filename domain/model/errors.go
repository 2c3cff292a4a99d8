package model

import "fmt"

// ErrorKind classifies a failure so the HTTP layer can map it to a status code.
type ErrorKind string

const (
	ErrInvalidInput ErrorKind = "invalid_input"
	ErrNotFound     ErrorKind = "not_found"
	ErrUpstream     ErrorKind = "upstream"
)

// AppError is a typed failure carrying the detail message returned to callers.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewInvalidInputError(message string) *AppError {
	return &AppError{Kind: ErrInvalidInput, Message: message}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewUpstreamError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrUpstream, Message: fmt.Sprintf(format, args...)}
}
