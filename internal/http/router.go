package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwaldron/ledgerdesk/internal/auth"
	"github.com/mwaldron/ledgerdesk/internal/http/authn"
	"github.com/mwaldron/ledgerdesk/internal/http/customer"
	"github.com/mwaldron/ledgerdesk/internal/http/dashboard"
	"github.com/mwaldron/ledgerdesk/internal/http/importcsv"
	"github.com/mwaldron/ledgerdesk/internal/http/invoice"
)

func New(
	authSvc *auth.Service,
	allowedOrigins []string,
	loginV1 *authn.Handler,
	invoicesV1 *invoice.Handler,
	customersV1 *customer.Handler,
	dashboardV1 *dashboard.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Post("/login", loginV1.SignIn)

	router.Group(func(r chi.Router) {
		r.Use(RequireSession(authSvc))

		r.Route("/dashboard", func(r chi.Router) {
			dashboardV1.Routes(r)

			r.Route("/invoices", invoicesV1.Routes)
			r.Route("/customers", customersV1.Routes)
		})

		r.Route("/api/import", importV1.Routes)
	})

	return router
}
