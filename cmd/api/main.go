package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwaldron/ledgerdesk/internal/auth"
	authStore "github.com/mwaldron/ledgerdesk/internal/auth/store"
	"github.com/mwaldron/ledgerdesk/internal/config"
	"github.com/mwaldron/ledgerdesk/internal/customer"
	customerStore "github.com/mwaldron/ledgerdesk/internal/customer/store"
	"github.com/mwaldron/ledgerdesk/internal/database"
	ledgerHttp "github.com/mwaldron/ledgerdesk/internal/http"
	authnHandler "github.com/mwaldron/ledgerdesk/internal/http/authn"
	customerHandler "github.com/mwaldron/ledgerdesk/internal/http/customer"
	dashboardHandler "github.com/mwaldron/ledgerdesk/internal/http/dashboard"
	importHandler "github.com/mwaldron/ledgerdesk/internal/http/importcsv"
	invoiceHandler "github.com/mwaldron/ledgerdesk/internal/http/invoice"
	"github.com/mwaldron/ledgerdesk/internal/importer"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
	invoiceStore "github.com/mwaldron/ledgerdesk/internal/invoice/store"
	"github.com/mwaldron/ledgerdesk/internal/summary"
	summaryStore "github.com/mwaldron/ledgerdesk/internal/summary/store"
	"github.com/mwaldron/ledgerdesk/internal/viewcache"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	views := viewcache.New()

	var (
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		summaryService  = summary.NewService(summaryStore.New(db))
		importService   = importer.NewService()
		authService     = auth.NewService(authStore.New(db), cfg.Auth.Secret, cfg.Auth.TokenTTL)
	)

	var (
		loginH     = authnHandler.NewHandler(authService)
		invoiceH   = invoiceHandler.NewHandler(invoiceService, views)
		customerH  = customerHandler.NewHandler(customerService)
		dashboardH = dashboardHandler.NewHandler(summaryService)
		importH    = importHandler.NewHandler(importService, invoiceService, customerService, views)
	)

	router := ledgerHttp.New(
		authService,
		cfg.CORS.AllowedOrigins,
		loginH,
		invoiceH,
		customerH,
		dashboardH,
		importH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
