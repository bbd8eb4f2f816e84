package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for new hashes. Older hashes below it are upgraded on login.
const Cost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword when plain does not match hash.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}

// NeedsRehash reports whether hash was produced with a weaker cost than Cost.
func NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false
	}

	return cost < Cost
}
