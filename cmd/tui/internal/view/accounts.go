package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/account"
)

type accountsState int

const (
	accountsStateBrowse accountsState = iota
	accountsStateCreate
)

type AccountsModel struct {
	CommonModel
	svc Services

	state    accountsState
	table    table.Model
	accounts []*account.Account
	form     *huh.Form

	loading bool
	err     error
	status  string

	// fields lives behind a pointer so the form's bindings survive the model
	// being copied on every Update.
	fields *accountFields
}

type accountFields struct {
	name       string
	kind       account.Type
	balance    string
	closingDay string
	dueDay     string
}

func NewAccountsModel(svc Services) AccountsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 12},
		{Title: "Balance", Width: 18},
		{Title: "Limit", Width: 18},
		{Title: "Closes", Width: 8},
		{Title: "Due", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AccountsModel{svc: svc, table: t, loading: true}
}

func (m AccountsModel) Title() string { return "Accounts" }

func (m AccountsModel) ShortHelp() string {
	if m.state == accountsStateCreate {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new account | r: refresh"
}

func (m AccountsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accounts = msg.accounts
		m.refreshTable()

		return m, nil

	case accountSavedMsg:
		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Account created."

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == accountsStateCreate {
		return m.updateCreate(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterCreate()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AccountsModel) enterCreate() (tea.Model, tea.Cmd) {
	f := &accountFields{kind: account.TypeChecking, balance: "0"}
	m.fields = f

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(notBlank("name")),
			huh.NewSelect[account.Type]().
				Title("Type").
				Options(
					huh.NewOption("Checking", account.TypeChecking),
					huh.NewOption("Wallet", account.TypeWallet),
					huh.NewOption("Credit card", account.TypeCreditCard),
				).
				Value(&f.kind),
			huh.NewInput().
				Title("Opening balance").
				Description("For cards, the current debt").
				Value(&f.balance).
				Validate(validAmount),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Closing day").
				Value(&f.closingDay).
				Validate(validDay),
			huh.NewInput().
				Title("Due day").
				Value(&f.dueDay).
				Validate(validDay),
		).WithHideFunc(func() bool { return f.kind != account.TypeCreditCard }),
	).WithWidth(45).WithShowHelp(false)

	m.state = accountsStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccountsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = accountsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
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

func (m AccountsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Render(m.table.View())

	if m.state == accountsStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Account\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + m.ShortHelp())
}

func (m *AccountsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accounts))
	for _, a := range m.accounts {
		limit, closes, due := "", "", ""
		if a.CreditLimit != nil {
			limit = FormatAmount(*a.CreditLimit)
		}

		if a.ClosingDay != nil {
			closes = strconv.Itoa(*a.ClosingDay)
		}

		if a.DueDay != nil {
			due = strconv.Itoa(*a.DueDay)
		}

		rows = append(rows, table.Row{a.Name, string(a.Type), FormatAmount(a.Balance), limit, closes, due})
	}

	m.table.SetRows(rows)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}

// parseAmount accepts both "1234.56" and "1234,56".
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

func validAmount(s string) error {
	if _, err := parseAmount(s); err != nil {
		return fmt.Errorf("not a valid amount")
	}

	return nil
}

func validDay(s string) error {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 1 || d > 31 {
		return fmt.Errorf("must be a day between 1 and 31")
	}

	return nil
}

// Messages

type loadAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func (m AccountsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.svc.Accounts.List(ctx, m.svc.UserID)

		return loadAccountsMsg{accounts: accounts, err: err}
	}
}

type accountSavedMsg struct {
	err error
}

func (m AccountsModel) saveCmd() tea.Cmd {
	f := m.fields
	params := account.CreateParams{Name: strings.TrimSpace(f.name), Type: f.kind}
	params.OpeningBalance, _ = parseAmount(f.balance)

	if f.kind == account.TypeCreditCard {
		closing, _ := strconv.Atoi(strings.TrimSpace(f.closingDay))
		due, _ := strconv.Atoi(strings.TrimSpace(f.dueDay))
		params.ClosingDay = &closing
		params.DueDay = &due
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Accounts.Create(ctx, m.svc.UserID, params)

		return accountSavedMsg{err: err}
	}
}
