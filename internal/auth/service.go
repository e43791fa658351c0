package auth

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=verifier_mock.go -package=auth

// CredentialVerifier checks a submitted email/password pair. Implementations
// report failures through the closed error set in this package:
// ErrInvalidCredentials for a bad pair, ErrProviderFault for a backend
// failure, and anything else is passed through as-is.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*User, error)
}

type Service struct {
	verifier CredentialVerifier
	secret   []byte
	tokenTTL time.Duration
}

func NewService(verifier CredentialVerifier, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		verifier: verifier,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// SignIn verifies the credentials and, on success, issues a session token.
// Verifier errors are returned unchanged so callers can distinguish the
// recognized failures from everything else.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return "", err
	}

	return generateToken(user, s.secret, s.tokenTTL)
}

// UserID validates a session token and returns the user id it was issued
// for.
func (s *Service) UserID(token string) (string, error) {
	return parseToken(token, s.secret)
}
