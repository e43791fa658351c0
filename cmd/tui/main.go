package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mwaldron/ledgerdesk/cmd/tui/internal/view"
	"github.com/mwaldron/ledgerdesk/internal/config"
	"github.com/mwaldron/ledgerdesk/internal/customer"
	customerStore "github.com/mwaldron/ledgerdesk/internal/customer/store"
	"github.com/mwaldron/ledgerdesk/internal/database"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
	invoiceStore "github.com/mwaldron/ledgerdesk/internal/invoice/store"
	"github.com/mwaldron/ledgerdesk/internal/summary"
	summaryStore "github.com/mwaldron/ledgerdesk/internal/summary/store"
)

type model struct {
	invoiceService  *invoice.Service
	customerService *customer.Service
	summaryService  *summary.Service

	currentView View

	dashboardView view.DashboardModel
	invoicesView  view.InvoicesModel
	customersView view.CustomersModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewInvoices  View = 2
	ViewCustomers View = 3
)

func initialModel() model {
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

	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	customerSvc := customer.NewService(customerStore.New(db))
	summarySvc := summary.NewService(summaryStore.New(db))

	return model{
		invoiceService:  invoiceSvc,
		customerService: customerSvc,
		summaryService:  summarySvc,
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(summarySvc),
		invoicesView:    view.NewInvoicesModel(invoiceSvc, customerSvc),
		customersView:   view.NewCustomersModel(customerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.summaryService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService, m.customerService)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewCustomers
				m.customersView = view.NewCustomersModel(m.customerService)

				return m, m.customersView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewCustomers:
		var newModel tea.Model
		newModel, cmd = m.customersView.Update(msg)
		m.customersView = newModel.(view.CustomersModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ledgerdesk\n\n" +
				"1. Dashboard\n" +
				"2. Invoices\n" +
				"3. Customers\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewCustomers:
		return m.customersView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
