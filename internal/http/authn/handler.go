package authn

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mwaldron/ledgerdesk/internal/auth"
)

// SessionCookie carries the signed session token for browser clients.
const SessionCookie = "ledgerdesk_session"

// The two friendly sign-in failure messages. Any other failure is a system
// fault and is never reduced to a string for the client.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// Message translates a recognized sign-in failure to its user-facing
// message. Unrecognized errors report ok=false and must be handled as
// faults by the caller, not shown to the user.
func Message(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials, true
	case errors.Is(err, auth.ErrProviderFault):
		return MsgSomethingWentWrong, true
	default:
		return "", false
	}
}

// SignIn accepts a credentials form, verifies it, and on success sets the
// session cookie and redirects to the dashboard.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	token, err := h.svc.SignIn(r.Context(), email, password)
	if err != nil {
		msg, recognized := Message(err)
		if !recognized {
			slog.Error("sign-in failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		status := http.StatusUnauthorized
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
