package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mwaldron/ledgerdesk/internal/auth"
	"github.com/mwaldron/ledgerdesk/internal/http/authn"
)

type userIDKey struct{}

// RequireSession rejects requests without a valid session token.
func RequireSession(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			userID, err := authSvc.UserID(token)
			if err != nil {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	if cookie, err := r.Cookie(authn.SessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// UserID returns the signed-in user's id stored by RequireSession.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
