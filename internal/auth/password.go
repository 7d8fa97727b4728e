package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tripsplit/internal/fault"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 8

// HashPassword returns the bcrypt hash of password at the default cost.
// Two calls with the same password produce different hashes (random salt).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// It never returns an error to the caller; any mismatch or malformed hash
// is simply false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks that a candidate password meets the minimum
// requirements before it is hashed.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fault.Errorf(fault.BadRequest, "password must be at least %d characters", minPasswordLength)
	}
	return nil
}
