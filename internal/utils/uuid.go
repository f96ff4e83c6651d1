package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUID (v7) string, falling back to a random
// v4 if v7 generation fails. Used for entity identifiers and JWT jti claims.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
