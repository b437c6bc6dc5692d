// Package secrets generates opaque credentials and hashes store passwords.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "cafepos/pkg/domain-errors"
)

const (
	tokenBytes = 32
	saltBytes  = 16
)

// GenerateToken creates a cryptographically secure random bearer token,
// base64url-encoded without padding.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateSalt creates a per-password random salt, hex encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword hashes salt+password with bcrypt. The salt is stored next to
// the hash so a leaked hash column alone cannot be replayed against another store.
func HashPassword(password, salt string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeInvalid, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(salt+password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeInvalid, "password is too long")
		}
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext password against a stored salt and hash.
func VerifyPassword(password, salt, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(salt+password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeInvalid, "invalid password")
		}
		return fmt.Errorf("could not verify password: %w", err)
	}
	return nil
}
