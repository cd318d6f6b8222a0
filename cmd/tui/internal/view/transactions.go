package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type txState int

const (
	txStateTimeframe txState = iota
	txStateList
	txStateCategory
	txStateDelete
)

// txItem wraps a transaction to implement list.Item.
type txItem struct {
	tx *transaction.Transaction
}

func (i txItem) Title() string {
	category := i.tx.Category
	if category == "" {
		category = "-"
	}

	tag := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", category))

	return fmt.Sprintf("%s  %s  %s  %s", FormatDate(i.tx.Date), FormatAmount(i.tx.Amount), tag, i.tx.Description)
}

func (i txItem) Description() string {
	if i.tx.IsInstallment() && i.tx.InstallmentNumber != nil {
		return fmt.Sprintf("Installment %d/%d", *i.tx.InstallmentNumber, *i.tx.TotalInstallments)
	}

	return ""
}

func (i txItem) FilterValue() string {
	return i.tx.Description + " " + i.tx.Category
}

type TransactionsModel struct {
	CommonModel
	svc Services

	state           txState
	timeframePicker TimeframePicker
	list            list.Model
	form            *huh.Form
	txs             []*transaction.Transaction
	selectedTx      *transaction.Transaction

	filter      transaction.ListFilter
	monthOffset int
	loading     bool
	status  string

	fields *txFields
}

type txFields struct {
	pattern  string
	category string
	confirm  bool
}

func NewTransactionsModel(svc Services) TransactionsModel {
	l := list.New([]list.Item{}, txItemDelegate{}, 0, 0)
	l.Title = "Transactions"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return TransactionsModel{
		svc:             svc,
		timeframePicker: NewTimeframePicker(svc.Dashboard.Today),
		list:            l,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateTimeframe:
		return "Esc: back | Enter: select"
	case txStateList:
		return "Esc: back | [/]: previous/next month | c: teach category | x: delete | /: filter"
	case txStateCategory, txStateDelete:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m TransactionsModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.filter = transaction.ListFilter{}
		if !msg.All {
			start, end := msg.Start, msg.End
			m.filter.StartDate = &start
			m.filter.EndDate = &end
		}

		m.loading = true
		m.state = txStateList

		return m, m.loadTxsCmd()

	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.txs = msg.txs
		m.refreshListItems()

		m.status = ""
		if len(msg.txs) == 0 {
			m.status = "No transactions found."
		}

		return m, nil

	case txActionMsg:
		m.state = txStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.done

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case txStateTimeframe:
		return m.updateTimeframe(msg)
	case txStateList:
		return m.updateList(msg)
	case txStateCategory, txStateDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "c":
			return m.startCategory()
		case "x":
			return m.startDelete()
		case "[", "]":
			if keyMsg.String() == "[" {
				m.monthOffset--
			} else {
				m.monthOffset++
			}

			start, end := monthRange(m.svc.Dashboard.Today(), m.monthOffset)
			m.filter.StartDate = &start
			m.filter.EndDate = &end
			m.loading = true

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// startCategory teaches a description pattern to category mapping used to
// suggest categories for future entries and imports.
func (m TransactionsModel) startCategory() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(txItem)
	if !ok {
		return m, nil
	}

	m.selectedTx = selected.tx
	f := &txFields{pattern: selected.tx.Description, category: selected.tx.Category}
	m.fields = f

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pattern").
				Description("Descriptions containing this text get the category").
				Value(&f.pattern).
				Validate(notBlank("pattern")),
			huh.NewInput().
				Title("Category").
				Value(&f.category).
				Validate(notBlank("category")),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateCategory

	return m, m.form.Init()
}

func (m TransactionsModel) startDelete() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(txItem)
	if !ok {
		return m, nil
	}

	m.selectedTx = selected.tx
	f := &txFields{}
	m.fields = f

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this transaction?").
				Description("The account balance is restored.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&f.confirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateDelete

	return m, m.form.Init()
}

func (m TransactionsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = txStateList
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == txStateCategory {
		return m, m.learnCmd()
	}

	if !m.fields.confirm {
		m.state = txStateList
		m.form = nil

		return m, nil
	}

	return m, m.deleteCmd()
}

func (m TransactionsModel) View() string {
	switch m.state {
	case txStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case txStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View() + "\n" + m.ShortHelp())

	case txStateCategory, txStateDelete:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.txInfoView() + "\n" + m.form.View())
	}

	return ""
}

func (m TransactionsModel) txInfoView() string {
	if m.selectedTx == nil {
		return ""
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Date: %s  |  Amount: %s\n%s",
			FormatDate(m.selectedTx.Date),
			FormatAmount(m.selectedTx.Amount),
			m.selectedTx.Description,
		))
}

func (m *TransactionsModel) refreshListItems() {
	items := make([]list.Item, len(m.txs))
	for i, tx := range m.txs {
		items[i] = txItem{tx: tx}
	}

	m.list.SetItems(items)
}

// Messages

type loadTxsMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.svc.Transactions.List(ctx, m.svc.UserID, filter)

		return loadTxsMsg{txs: txs, err: err}
	}
}

type txActionMsg struct {
	done string
	err  error
}

func (m TransactionsModel) learnCmd() tea.Cmd {
	pattern := strings.TrimSpace(m.fields.pattern)
	category := strings.TrimSpace(m.fields.category)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.svc.Categories.Learn(ctx, m.svc.UserID, pattern, category); err != nil {
			return txActionMsg{err: err}
		}

		return txActionMsg{done: fmt.Sprintf("Learned %q as %s.", pattern, category)}
	}
}

func (m TransactionsModel) deleteCmd() tea.Cmd {
	id := m.selectedTx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.svc.Transactions.Delete(ctx, m.svc.UserID, id); err != nil {
			return txActionMsg{err: err}
		}

		return txActionMsg{done: "Deleted."}
	}
}

// txItemDelegate renders items in the list.
type txItemDelegate struct{}

func (d txItemDelegate) Height() int                             { return 2 }
func (d txItemDelegate) Spacing() int                            { return 0 }
func (d txItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d txItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(txItem)
	if !ok {
		return
	}

	title := i.Title()
	desc := i.Description()

	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}
