package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type entryKind string

const (
	entryExpense entryKind = "expense"
	entryIncome  entryKind = "income"
)

type entryState int

const (
	entryStateLoading entryState = iota
	entryStateForm
	entryStateSaving
	entryStateResult
)

// EntryModel records a single expense or income through the same procedures
// the API uses.
type EntryModel struct {
	CommonModel
	svc Services

	state  entryState
	form   *huh.Form
	fields *entryFields
	status string
	err    error
}

type entryFields struct {
	kind         entryKind
	accountID    uuid.UUID
	amount       string
	date         string
	description  string
	category     string
	installments string
}

func NewEntryModel(svc Services) EntryModel {
	return EntryModel{svc: svc}
}

func (m EntryModel) Title() string { return "New Entry" }

func (m EntryModel) Init() tea.Cmd {
	return loadEntryAccountsCmd(m.svc)
}

func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entryAccountsMsg:
		if msg.err != nil {
			m.state = entryStateResult
			m.err = msg.err

			return m, nil
		}

		if len(msg.accounts) == 0 {
			m.state = entryStateResult
			m.err = fmt.Errorf("create an account first")

			return m, nil
		}

		m.fields = &entryFields{
			kind:         entryExpense,
			accountID:    msg.accounts[0].ID,
			date:         m.svc.Dashboard.Today().Format(time.DateOnly),
			installments: "1",
		}
		m.form = buildEntryForm(m.fields, msg.accounts)
		m.state = entryStateForm

		return m, m.form.Init()

	case entrySavedMsg:
		m.state = entryStateResult
		m.err = msg.err

		if msg.err == nil {
			m.status = "Saved."
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state != entryStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = entryStateSaving

	return m, m.saveCmd()
}

func buildEntryForm(f *entryFields, accounts []*account.Account) *huh.Form {
	options := make([]huh.Option[uuid.UUID], len(accounts))
	for i, a := range accounts {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, a.Type), a.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[entryKind]().
				Title("Kind").
				Options(
					huh.NewOption("Expense", entryExpense),
					huh.NewOption("Income", entryIncome),
				).
				Value(&f.kind),
			huh.NewSelect[uuid.UUID]().
				Title("Account").
				Options(options...).
				Value(&f.accountID),
			huh.NewInput().
				Title("Amount").
				Placeholder("0,00").
				Value(&f.amount).
				Validate(validAmount),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&f.date).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}

					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.description).
				Validate(notBlank("description")),
			huh.NewInput().
				Title("Category").
				Description("Leave empty to use the learned one").
				Value(&f.category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Installments").
				Value(&f.installments).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("at least 1")
					}

					return nil
				}),
		).WithHideFunc(func() bool { return f.kind != entryExpense }),
	).WithWidth(50).WithShowHelp(false)
}

func (m EntryModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case entryStateLoading:
		return style.Render("Loading accounts...")
	case entryStateForm:
		return style.Render("New Entry\n\n" + m.form.View())
	case entryStateSaving:
		return style.Render("Saving...")
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor)).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color(successColor)).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type entryAccountsMsg struct {
	accounts []*account.Account
	err      error
}

func loadEntryAccountsCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := svc.Accounts.List(ctx, svc.UserID)

		return entryAccountsMsg{accounts: accounts, err: err}
	}
}

type entrySavedMsg struct {
	err error
}

func (m EntryModel) saveCmd() tea.Cmd {
	f := *m.fields
	svc := m.svc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amount, _ := parseAmount(f.amount)
		date, _ := time.Parse(time.DateOnly, f.date)
		description := strings.TrimSpace(f.description)

		category := strings.TrimSpace(f.category)
		if category == "" {
			suggested, err := svc.Categories.Suggest(ctx, svc.UserID, description)
			if err != nil {
				slog.Warn("category suggestion failed", "error", err)
			}

			category = suggested
		}

		if f.kind == entryIncome {
			_, err := svc.Transactions.CreateIncome(ctx, svc.UserID, transaction.IncomeParams{
				AccountID:   f.accountID,
				Amount:      amount,
				Date:        date,
				Description: description,
				Category:    category,
			})

			return entrySavedMsg{err: err}
		}

		installments, _ := strconv.Atoi(strings.TrimSpace(f.installments))

		_, err := svc.Transactions.CreateExpense(ctx, svc.UserID, transaction.ExpenseParams{
			AccountID:    f.accountID,
			Amount:       amount,
			Date:         date,
			Description:  description,
			Category:     category,
			Installments: installments,
		})

		return entrySavedMsg{err: err}
	}
}
