package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/category"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/export"
	"github.com/MrJamesThe3rd/carteira/internal/importer"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type CommonModel struct {
	Width  int
	Height int
}

// Services is what every screen acts through. The TUI has no login, so all
// calls run as UserID.
type Services struct {
	UserID       uuid.UUID
	Accounts     *account.Service
	Transactions *transaction.Service
	Invoices     *invoice.Service
	Categories   *category.Service
	Importer     *importer.Service
	Export       *export.Service
	Dashboard    *dashboard.Service
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	errorColor   = "196"
	successColor = "46"
	accentColor  = "205"
	borderColor  = "240"
)
