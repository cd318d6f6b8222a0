package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
)

const trendBarWidth = 30

type DashboardModel struct {
	CommonModel
	svc Services

	summary *dashboard.Summary
	recent  table.Model
	spinner spinner.Model
	loading bool
	err     error
}

func NewDashboardModel(svc Services) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Description", Width: 32},
			{Title: "Category", Width: 16},
			{Title: "Amount", Width: 16},
		}),
		table.WithHeight(dashboard.RecentTransactionsLimit+1),
	)

	return DashboardModel{svc: svc, recent: t, spinner: s, loading: true}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary

		if msg.summary != nil {
			m.refreshRecent()
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *DashboardModel) refreshRecent() {
	rows := make([]table.Row, len(m.summary.RecentTransactions))
	for i, tx := range m.summary.RecentTransactions {
		rows[i] = table.Row{FormatDate(tx.Date), tx.Description, tx.Category, FormatAmount(tx.Amount)}
	}

	m.recent.SetRows(rows)
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor)).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(r to retry, Esc to back)",
		)
	}

	s := m.summary
	label := lipgloss.NewStyle().Faint(true)
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 2)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		box.Render(label.Render("Balance")+"\n"+FormatAmount(s.TotalBalance)),
		box.Render(label.Render("Income this month")+"\n"+FormatAmount(s.MonthlyIncome)),
		box.Render(label.Render("Expenses this month")+"\n"+FormatAmount(s.MonthlyExpenses)),
	)

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		renderTrend(s.Trend),
		"",
		"Recent transactions",
		m.recent.View(),
		"",
		label.Render("r: refresh | Esc: back"),
	))
}

// renderTrend draws one income and one expense bar per month, scaled to the
// largest value in the window.
func renderTrend(points []dashboard.TrendPoint) string {
	peak := decimal.Zero
	for _, p := range points {
		peak = decimal.Max(peak, p.Income, p.Expenses)
	}

	income := lipgloss.NewStyle().Foreground(lipgloss.Color(successColor))
	expense := lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor))

	var b strings.Builder

	b.WriteString("Last 6 months\n")

	for _, p := range points {
		fmt.Fprintf(&b, "%-4s %s %s\n", p.Label, income.Render(bar(p.Income, peak)), FormatAmount(p.Income))
		fmt.Fprintf(&b, "%-4s %s %s\n", "", expense.Render(bar(p.Expenses, peak)), FormatAmount(p.Expenses))
	}

	return b.String()
}

func bar(v, peak decimal.Decimal) string {
	if peak.IsZero() {
		return ""
	}

	n := int(v.Div(peak).Mul(decimal.NewFromInt(trendBarWidth)).IntPart())

	return strings.Repeat("█", n) + strings.Repeat(" ", trendBarWidth-n)
}

type summaryMsg struct {
	summary *dashboard.Summary
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.svc.Dashboard.Summary(ctx, m.svc.UserID)

		return summaryMsg{summary: s, err: err}
	}
}
