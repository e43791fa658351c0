package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldron/ledgerdesk/internal/customer"
)

type CustomersModel struct {
	CommonModel
	svc *customer.Service

	table       table.Model
	searchInput textinput.Model
	searching   bool
	query       string

	loading bool
	err     error
}

func NewCustomersModel(svc *customer.Service) CustomersModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Email", Width: 30},
		{Title: "Invoices", Width: 9},
		{Title: "Pending", Width: 12},
		{Title: "Paid", Width: 12},
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
	si.Placeholder = "Search customers..."
	si.Width = 40

	return CustomersModel{
		svc:         svc,
		table:       t,
		searchInput: si,
		loading:     true,
	}
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil

		rows := make([]table.Row, 0, len(msg.customers))
		for _, c := range msg.customers {
			rows = append(rows, table.Row{
				c.Name,
				c.Email,
				fmt.Sprintf("%d", c.TotalInvoices),
				FormatAmount(c.TotalPending),
				FormatAmount(c.TotalPaid),
			})
		}

		m.table.SetRows(rows)

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEsc:
				m.searching = false
				m.searchInput.Blur()
				m.table.Focus()

				return m, nil
			case tea.KeyEnter:
				m.query = m.searchInput.Value()
				m.searching = false
				m.searchInput.Blur()
				m.table.Focus()

				return m, m.loadCmd()
			}

			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "/":
			m.searching = true
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			m.table.Blur()

			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CustomersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading customers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "Customers"
	if m.query != "" {
		header += fmt.Sprintf("  (query: %q)", m.query)
	}

	if m.searching {
		header = m.searchInput.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		"/: search | r: refresh | Esc: back",
	)
}

type customersLoadedMsg struct {
	customers []*customer.Customer
	err       error
}

func (m CustomersModel) loadCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customers, err := m.svc.List(ctx, query)

		return customersLoadedMsg{customers: customers, err: err}
	}
}
