package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mwaldron/ledgerdesk/internal/customer"
	"github.com/mwaldron/ledgerdesk/internal/invoice"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateSearch
	invoicesStateForm
)

type InvoicesModel struct {
	CommonModel
	invoiceSvc  *invoice.Service
	customerSvc *customer.Service

	state invoicesState
	table table.Model
	invs  []*invoice.Invoice
	form  *huh.Form

	searchInput textinput.Model
	query       string
	page        int
	totalPages  int

	// Form bindings. editID is nil when creating.
	editID       *uuid.UUID
	formCustomer string
	formAmount   string
	formStatus   string

	loading bool
	err     error
	status  string
}

func NewInvoicesModel(invoiceSvc *invoice.Service, customerSvc *customer.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 25},
		{Title: "Email", Width: 28},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	si := textinput.New()
	si.Placeholder = "Search invoices..."
	si.Width = 40

	return InvoicesModel{
		invoiceSvc:  invoiceSvc,
		customerSvc: customerSvc,
		table:       t,
		searchInput: si,
		page:        1,
		loading:     true,
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.invs = msg.invs
		m.totalPages = msg.totalPages
		m.refreshTable()

		return m, nil

	case invoiceSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case invoiceDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Invoice deleted successfully."
		}

		return m, m.loadCmd()

	case customersForFormMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading customers: %v", msg.err)
			return m, nil
		}

		return m.openForm(msg.customers)

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateSearch:
		return m.updateSearch(msg)
	case invoicesStateForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.state = invoicesStateSearch
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			m.table.Blur()

			return m, textinput.Blink
		case "n":
			m.editID = nil
			return m, m.loadCustomersCmd()
		case "e":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.invs) {
				return m, nil
			}

			id := m.invs[idx].ID
			m.editID = &id

			return m, m.loadCustomersCmd()
		case "x":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.invs) {
				return m, nil
			}

			return m, m.deleteCmd(m.invs[idx].ID)
		case "left", "h":
			if m.page > 1 {
				m.page--
				return m, m.loadCmd()
			}
		case "right", "l":
			if m.page < m.totalPages {
				m.page++
				return m, m.loadCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = invoicesStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			m.query = m.searchInput.Value()
			m.page = 1
			m.state = invoicesStateBrowse
			m.searchInput.Blur()
			m.table.Focus()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	return m, cmd
}

func (m InvoicesModel) openForm(customers []*customer.Customer) (tea.Model, tea.Cmd) {
	options := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Email), c.ID.String()))
	}

	m.formCustomer = ""
	m.formAmount = ""
	m.formStatus = string(invoice.StatusPending)

	if m.editID != nil {
		for _, inv := range m.invs {
			if inv.ID == *m.editID {
				m.formCustomer = inv.CustomerID.String()
				m.formAmount = fmt.Sprintf("%.2f", float64(inv.Amount)/100.0)
				m.formStatus = string(inv.Status)

				break
			}
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("customer").
				Title("Customer").
				Options(options...).
				Value(&m.formCustomer),

			huh.NewInput().
				Key("amount").
				Title("Amount (USD)").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, ok := invoice.ParseAmount(s); !ok {
						return fmt.Errorf("%s", invoice.MsgAmountTooSmall)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(
					huh.NewOption("Pending", string(invoice.StatusPending)),
					huh.NewOption("Paid", string(invoice.StatusPaid)),
				).
				Value(&m.formStatus),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = invoicesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Invoices (page %d/%d)", m.page, max(m.totalPages, 1))
	if m.query != "" {
		header += fmt.Sprintf("  (query: %q)", m.query)
	}

	if m.state == invoicesStateSearch {
		header = m.searchInput.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	help := "/: search | n: new | e: edit | x: delete | ←/→: page | r: refresh | Esc: back"

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		m.status,
		help,
	)

	if m.state == invoicesStateForm && m.form != nil {
		title := "New Invoice"
		if m.editID != nil {
			title = "Edit Invoice"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		return lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	return content
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invs))
	for _, inv := range m.invs {
		rows = append(rows, table.Row{
			FormatDate(inv.Date),
			inv.CustomerName,
			inv.CustomerEmail,
			FormatAmount(inv.Amount),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
}

type invoicesLoadedMsg struct {
	invs       []*invoice.Invoice
	totalPages int
	err        error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	query, page := m.query, m.page

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invs, err := m.invoiceSvc.List(ctx, query, page)
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}

		totalPages, err := m.invoiceSvc.TotalPages(ctx, query)
		if err != nil {
			return invoicesLoadedMsg{err: err}
		}

		return invoicesLoadedMsg{invs: invs, totalPages: totalPages}
	}
}

type customersForFormMsg struct {
	customers []*customer.Customer
	err       error
}

func (m InvoicesModel) loadCustomersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customers, err := m.customerSvc.List(ctx, "")

		return customersForFormMsg{customers: customers, err: err}
	}
}

type invoiceSavedMsg struct {
	err error
}

func (m InvoicesModel) saveCmd() tea.Cmd {
	input := invoice.FormInput{
		CustomerID: m.formCustomer,
		Amount:     m.formAmount,
		Status:     m.formStatus,
	}
	editID := m.editID

	return func() tea.Msg {
		data, fieldErrs := invoice.ValidateForm(input)
		if fieldErrs != nil {
			return invoiceSavedMsg{err: fmt.Errorf("invalid input: %v", fieldErrs)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if editID != nil {
			return invoiceSavedMsg{err: m.invoiceSvc.Update(ctx, *editID, data)}
		}

		_, err := m.invoiceSvc.Create(ctx, data)

		return invoiceSavedMsg{err: err}
	}
}

type invoiceDeletedMsg struct {
	err error
}

func (m InvoicesModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceDeletedMsg{err: m.invoiceSvc.Delete(ctx, id)}
	}
}
