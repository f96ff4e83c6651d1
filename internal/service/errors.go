package service

import (
	"errors"

	"github.com/dmaraujo/gymkeeper/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token has been revoked")
)

// ValidationError carries every violated input rule of one request so the
// HTTP layer can itemize them in a 400 body.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataProvided
}

// NewValidationError wraps the violations reported by a validator.
func NewValidationError(fields []models.FieldError) error {
	return &ValidationError{Fields: fields}
}
