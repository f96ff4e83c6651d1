package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password. Raising it invalidates nothing: bcrypt encodes the cost in the
// hash, so old hashes keep verifying.
const passwordHashCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The plaintext is never persisted; only the returned hash is stored.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashedBytes), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate plaintext.
// Returns nil when they match.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
