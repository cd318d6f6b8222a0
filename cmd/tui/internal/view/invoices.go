package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
)

type invoiceState int

const (
	invoiceStateCards invoiceState = iota
	invoiceStateList
	invoiceStatePay
)

// InvoiceModel browses the invoices of one credit card and pays them from
// another account.
type InvoiceModel struct {
	CommonModel
	svc Services

	state    invoiceState
	accounts []*account.Account
	cards    []*account.Account
	cursor   int

	table    table.Model
	invoices []*invoice.Invoice
	detail   *invoice.Invoice

	form   *huh.Form
	fields *payFields

	loading bool
	status  string
}

type payFields struct {
	payingAccountID uuid.UUID
	date            string
}

func NewInvoiceModel(svc Services) InvoiceModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Closing", Width: 12},
			{Title: "Due", Width: 12},
			{Title: "Status", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return InvoiceModel{svc: svc, table: t, loading: true}
}

func (m InvoiceModel) Title() string { return "Card Invoices" }

func (m InvoiceModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoiceAccountsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.accounts = msg.accounts
		m.cards = m.cards[:0]

		for _, a := range msg.accounts {
			if a.IsCreditCard() {
				m.cards = append(m.cards, a)
			}
		}

		return m, nil

	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case invoiceDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.detail = msg.invoice

		return m, nil

	case invoiceActionMsg:
		m.state = invoiceStateList
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error paying: %v", msg.err)
			return m, nil
		}

		m.status = "Invoice paid."
		m.detail = nil

		return m, m.loadInvoicesCmd()
	}

	switch m.state {
	case invoiceStateCards:
		return m.updateCards(msg)
	case invoiceStateList:
		return m.updateList(msg)
	case invoiceStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m InvoiceModel) updateCards(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if len(m.cards) == 0 {
			return m, nil
		}

		m.state = invoiceStateList
		m.loading = true
		m.status = ""

		return m, tea.Batch(m.loadInvoicesCmd(), m.currentCmd())
	}

	return m, nil
}

func (m InvoiceModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = invoiceStateCards
			m.detail = nil
			m.invoices = nil

			return m, nil
		case "enter":
			if inv := m.selectedInvoice(); inv != nil {
				return m, m.detailCmd(inv.ID)
			}

			return m, nil
		case "p":
			return m.startPay()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoiceModel) startPay() (tea.Model, tea.Cmd) {
	inv := m.selectedInvoice()
	if inv == nil {
		return m, nil
	}

	if inv.Status == invoice.StatusPaid {
		m.status = "Invoice already paid."
		return m, nil
	}

	var options []huh.Option[uuid.UUID]

	f := &payFields{date: m.svc.Dashboard.Today().Format(time.DateOnly)}

	for _, a := range m.accounts {
		if a.IsCreditCard() {
			continue
		}

		if len(options) == 0 {
			f.payingAccountID = a.ID
		}

		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, FormatAmount(a.Balance)), a.ID))
	}

	if len(options) == 0 {
		m.status = "No account to pay from."
		return m, nil
	}

	m.fields = f

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Pay from").
				Options(options...).
				Value(&f.payingAccountID),
			huh.NewInput().
				Title("Payment date").
				Value(&f.date).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}

					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = invoiceStatePay
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoiceModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = invoiceStateList
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

	return m, m.payCmd(m.selectedInvoice().ID)
}

func (m InvoiceModel) selectedInvoice() *invoice.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}

	return m.invoices[idx]
}

func (m *InvoiceModel) refreshTable() {
	rows := make([]table.Row, len(m.invoices))
	for i, inv := range m.invoices {
		rows[i] = table.Row{FormatDate(inv.ClosingDate), FormatDate(inv.DueDate), string(inv.Status)}
	}

	m.table.SetRows(rows)
}

func (m InvoiceModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading...")
	}

	status := ""
	if m.status != "" {
		status = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n"
	}

	switch m.state {
	case invoiceStateCards:
		if len(m.cards) == 0 {
			return style.Render(status + "No credit cards.\n\n(Esc to back)")
		}

		var b strings.Builder

		b.WriteString("Select Card:\n\n")

		for i, c := range m.cards {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}

			fmt.Fprintf(&b, "%s %s  debt %s\n", cursor, c.Name, FormatAmount(c.Balance))
		}

		return style.Render(status + b.String())

	case invoiceStatePay:
		return style.Render(status + "Pay Invoice\n\n" + m.form.View())
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Render(m.table.View())

	if m.detail != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.detailView())
	}

	return style.Render(status + content + "\n" + lipgloss.NewStyle().Faint(true).Render("Enter: details | p: pay | Esc: cards"))
}

func (m InvoiceModel) detailView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Closes %s, due %s [%s]\n\n", FormatDate(m.detail.ClosingDate), FormatDate(m.detail.DueDate), m.detail.Status)

	for _, tx := range m.detail.Transactions {
		fmt.Fprintf(&b, "%s  %-24s %s\n", FormatDate(tx.Date), tx.Description, FormatAmount(tx.Amount.Abs()))
	}

	fmt.Fprintf(&b, "\nTotal: %s", FormatAmount(m.detail.Total()))

	return lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

// Messages

type invoiceAccountsMsg struct {
	accounts []*account.Account
	err      error
}

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

type invoiceDetailMsg struct {
	invoice *invoice.Invoice
	err     error
}

type invoiceActionMsg struct {
	err error
}

func (m InvoiceModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.svc.Accounts.List(ctx, m.svc.UserID)

		return invoiceAccountsMsg{accounts: accounts, err: err}
	}
}

func (m InvoiceModel) loadInvoicesCmd() tea.Cmd {
	cardID := m.cards[m.cursor].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.svc.Invoices.List(ctx, m.svc.UserID, cardID)

		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

// currentCmd opens the detail panel on the cycle running today. A card with
// no purchases in the cycle has no open invoice yet, which is not an error.
func (m InvoiceModel) currentCmd() tea.Cmd {
	cardID := m.cards[m.cursor].ID
	today := m.svc.Dashboard.Today()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inv, err := m.svc.Invoices.Current(ctx, m.svc.UserID, cardID, today)
		if err != nil {
			return invoiceDetailMsg{err: ignoreNotFound(err)}
		}

		return invoiceDetailMsg{invoice: inv}
	}
}

func ignoreNotFound(err error) error {
	if errors.Is(err, invoice.ErrNotFound) {
		return nil
	}

	return err
}

func (m InvoiceModel) detailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inv, err := m.svc.Invoices.Get(ctx, m.svc.UserID, id)

		return invoiceDetailMsg{invoice: inv, err: err}
	}
}

func (m InvoiceModel) payCmd(id uuid.UUID) tea.Cmd {
	f := *m.fields

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		date, _ := time.Parse(time.DateOnly, f.date)

		err := m.svc.Invoices.Pay(ctx, m.svc.UserID, id, invoice.PayParams{
			PayingAccountID: f.payingAccountID,
			PaymentDate:     date,
		})

		return invoiceActionMsg{err: err}
	}
}
