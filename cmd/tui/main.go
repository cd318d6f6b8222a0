package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/carteira/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/carteira/internal/account"
	accountStore "github.com/MrJamesThe3rd/carteira/internal/account/store"
	"github.com/MrJamesThe3rd/carteira/internal/category"
	categoryStore "github.com/MrJamesThe3rd/carteira/internal/category/store"
	"github.com/MrJamesThe3rd/carteira/internal/config"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/database"
	"github.com/MrJamesThe3rd/carteira/internal/export"
	fixedExpenseStore "github.com/MrJamesThe3rd/carteira/internal/fixedexpense/store"
	"github.com/MrJamesThe3rd/carteira/internal/importer"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/carteira/internal/invoice/store"
	procStore "github.com/MrJamesThe3rd/carteira/internal/procedure/store"
	receivableStore "github.com/MrJamesThe3rd/carteira/internal/receivable/store"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
	txStore "github.com/MrJamesThe3rd/carteira/internal/transaction/store"
)

type model struct {
	svc view.Services

	currentView View

	dashboardView    view.DashboardModel
	accountsView     view.AccountsModel
	transactionsView view.TransactionsModel
	entryView        view.EntryModel
	importView       view.ImportModel
	invoiceView      view.InvoiceModel
	exportView       view.ExportModel
}

type View int

const (
	ViewMenu View = iota
	ViewDashboard
	ViewAccounts
	ViewTransactions
	ViewEntry
	ViewImport
	ViewInvoice
	ViewExport
)

func initialModel() (model, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("loading config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return model{}, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return model{}, fmt.Errorf("connecting to database: %w", err)
	}

	var (
		accounts     = accountStore.New(db)
		transactions = txStore.New(db)
		invoices     = invoiceStore.New(db)
		procedures   = procStore.New(db)
	)

	txSvc := transaction.NewService(transactions, procedures)

	svc := view.Services{
		UserID:       cfg.TUI.UserID,
		Accounts:     account.NewService(accounts),
		Transactions: txSvc,
		Invoices:     invoice.NewService(invoices, accounts, procedures),
		Categories:   category.NewService(categoryStore.New(db)),
		Importer:     importer.NewService(),
		Export:       export.NewService(txSvc),
		Dashboard: dashboard.NewService(dashboard.Readers{
			Accounts:      accounts,
			Transactions:  transactions,
			FixedExpenses: fixedExpenseStore.New(db),
			Invoices:      invoices,
			Receivables:   receivableStore.New(db),
		}, dashboard.WithLocation(loc)),
	}

	return model{svc: svc, currentView: ViewMenu}, nil
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
				m.dashboardView = view.NewDashboardModel(m.svc)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.svc)

				return m, m.accountsView.Init()
			case "3":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.svc)

				return m, m.transactionsView.Init()
			case "4":
				m.currentView = ViewEntry
				m.entryView = view.NewEntryModel(m.svc)

				return m, m.entryView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.svc)

				return m, m.importView.Init()
			case "6":
				m.currentView = ViewInvoice
				m.invoiceView = view.NewInvoiceModel(m.svc)

				return m, m.invoiceView.Init()
			case "7":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.svc)

				return m, m.exportView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
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
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewEntry:
		var newModel tea.Model
		newModel, cmd = m.entryView.Update(msg)
		m.entryView = newModel.(view.EntryModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewInvoice:
		var newModel tea.Model
		newModel, cmd = m.invoiceView.Update(msg)
		m.invoiceView = newModel.(view.InvoiceModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Carteira\n\n" +
				"1. Dashboard\n" +
				"2. Accounts\n" +
				"3. Transactions\n" +
				"4. New Entry\n" +
				"5. Import Statement\n" +
				"6. Card Invoices\n" +
				"7. Export\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewAccounts:
		return m.accountsView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewEntry:
		return m.entryView.View()
	case ViewImport:
		return m.importView.View()
	case ViewInvoice:
		return m.invoiceView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

// setupLogging keeps slog off the terminal the program draws on. Set
// CARTEIRA_TUI_LOG to a file path to keep the logs.
func setupLogging() (io.Closer, error) {
	path := os.Getenv("CARTEIRA_TUI_LOG")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}

	f, err := tea.LogToFile(path, "carteira")
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))

	return f, nil
}

func main() {
	m, err := initialModel()
	if err != nil {
		slog.Error("failed to start TUI", "error", err)
		os.Exit(1)
	}

	closer, err := setupLogging()
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
