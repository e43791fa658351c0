package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwaldron/ledgerdesk/internal/invoice"
	"github.com/mwaldron/ledgerdesk/internal/summary"
)

var cardStyle = lipgloss.NewStyle().
	Padding(0, 2).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Width(22)

type DashboardModel struct {
	CommonModel
	svc *summary.Service

	cards   *summary.CardData
	revenue []summary.MonthRevenue
	latest  []*invoice.Invoice

	loading bool
	err     error
}

func NewDashboardModel(svc *summary.Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.cards = msg.cards
		m.revenue = msg.revenue
		m.latest = msg.latest
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Collected\n%s", FormatAmount(m.cards.TotalPaid))),
		cardStyle.Render(fmt.Sprintf("Pending\n%s", FormatAmount(m.cards.TotalPending))),
		cardStyle.Render(fmt.Sprintf("Invoices\n%d", m.cards.InvoiceCount)),
		cardStyle.Render(fmt.Sprintf("Customers\n%d", m.cards.CustomerCount)),
	)

	var maxRevenue int64
	for _, r := range m.revenue {
		if r.Revenue > maxRevenue {
			maxRevenue = r.Revenue
		}
	}

	var chart strings.Builder

	chart.WriteString("Recent Revenue\n")

	for _, r := range m.revenue {
		width := 0
		if maxRevenue > 0 {
			width = int(r.Revenue * 40 / maxRevenue)
		}

		chart.WriteString(fmt.Sprintf("  %-4s %s %s\n",
			r.Month, strings.Repeat("█", width), FormatAmount(r.Revenue)))
	}

	var latest strings.Builder

	latest.WriteString("Latest Invoices\n")

	for _, inv := range m.latest {
		latest.WriteString(fmt.Sprintf("  %-10s  %-25s  %8s  %s\n",
			FormatDate(inv.Date), inv.CustomerName, FormatAmount(inv.Amount), inv.Status))
	}

	if len(m.latest) == 0 {
		latest.WriteString("  (none yet)\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			cards,
			"",
			chart.String(),
			latest.String(),
			"(r: refresh, Esc: back)",
		),
	)
}

type dashboardLoadedMsg struct {
	cards   *summary.CardData
	revenue []summary.MonthRevenue
	latest  []*invoice.Invoice
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cards, err := m.svc.CardData(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		revenue, err := m.svc.Revenue(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		latest, err := m.svc.LatestInvoices(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{cards: cards, revenue: revenue, latest: latest}
	}
}
