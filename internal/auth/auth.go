package auth

import (
	"errors"

	"github.com/google/uuid"
)

// User is an operator account allowed to sign in to the dashboard.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

// The two recognized sign-in failures. Anything outside this set is not
// translated to a friendly message; it propagates to the caller untouched.
var (
	// ErrInvalidCredentials means the email/password pair was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProviderFault means the credential backend itself failed.
	ErrProviderFault = errors.New("credential provider fault")
)
