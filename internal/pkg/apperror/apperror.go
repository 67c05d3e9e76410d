package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError carries field-level validation detail for 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// AppError is the error type the fiber error handler knows how to map
// to an HTTP status. Services return these; anything else becomes 500.
type AppError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewValidation(message string, fields []FieldError) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
