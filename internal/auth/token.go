package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenLeeway absorbs small clock skew between issuer and verifier.
const tokenLeeway = 30 * time.Second

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// generateToken issues an HS256 session token for the user.
func generateToken(user *User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: user.Email,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// parseToken validates a session token and returns the user id it carries.
func parseToken(tokenString string, secret []byte) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithLeeway(tokenLeeway))
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	return claims.Subject, nil
}
