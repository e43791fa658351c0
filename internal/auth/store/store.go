package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mwaldron/ledgerdesk/internal/auth"
)

// Store verifies credentials against the users table. It implements
// auth.CredentialVerifier: a missing user or a hash mismatch both surface
// as auth.ErrInvalidCredentials, and query failures as auth.ErrProviderFault
// so callers never learn which of the two inputs was wrong.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Verify(ctx context.Context, email, password string) (*auth.User, error) {
	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var user auth.User

	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%w: fetching user: %w", auth.ErrProviderFault, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, auth.ErrInvalidCredentials
		}

		return nil, fmt.Errorf("%w: comparing password: %w", auth.ErrProviderFault, err)
	}

	return &user, nil
}
