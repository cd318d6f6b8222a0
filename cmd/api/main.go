package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	accountStore "github.com/MrJamesThe3rd/carteira/internal/account/store"
	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/category"
	categoryStore "github.com/MrJamesThe3rd/carteira/internal/category/store"
	"github.com/MrJamesThe3rd/carteira/internal/config"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/database"
	"github.com/MrJamesThe3rd/carteira/internal/export"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	fixedExpenseStore "github.com/MrJamesThe3rd/carteira/internal/fixedexpense/store"
	carteiraHttp "github.com/MrJamesThe3rd/carteira/internal/http"
	accountHandler "github.com/MrJamesThe3rd/carteira/internal/http/account"
	categoryHandler "github.com/MrJamesThe3rd/carteira/internal/http/category"
	dashboardHandler "github.com/MrJamesThe3rd/carteira/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/carteira/internal/http/export"
	fixedExpenseHandler "github.com/MrJamesThe3rd/carteira/internal/http/fixedexpense"
	importHandler "github.com/MrJamesThe3rd/carteira/internal/http/importcsv"
	invoiceHandler "github.com/MrJamesThe3rd/carteira/internal/http/invoice"
	planHandler "github.com/MrJamesThe3rd/carteira/internal/http/plan"
	receivableHandler "github.com/MrJamesThe3rd/carteira/internal/http/receivable"
	shoppingHandler "github.com/MrJamesThe3rd/carteira/internal/http/shopping"
	txHandler "github.com/MrJamesThe3rd/carteira/internal/http/transaction"
	"github.com/MrJamesThe3rd/carteira/internal/importer"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/carteira/internal/invoice/store"
	"github.com/MrJamesThe3rd/carteira/internal/plan"
	planStore "github.com/MrJamesThe3rd/carteira/internal/plan/store"
	procStore "github.com/MrJamesThe3rd/carteira/internal/procedure/store"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
	receivableStore "github.com/MrJamesThe3rd/carteira/internal/receivable/store"
	"github.com/MrJamesThe3rd/carteira/internal/shopping"
	shoppingStore "github.com/MrJamesThe3rd/carteira/internal/shopping/store"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
	txStore "github.com/MrJamesThe3rd/carteira/internal/transaction/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	var (
		accounts      = accountStore.New(db)
		transactions  = txStore.New(db)
		invoices      = invoiceStore.New(db)
		fixedExpenses = fixedExpenseStore.New(db)
		receivables   = receivableStore.New(db)
		procedures    = procStore.New(db)
	)

	var (
		accountService      = account.NewService(accounts)
		transactionService  = transaction.NewService(transactions, procedures)
		invoiceService      = invoice.NewService(invoices, accounts, procedures)
		fixedExpenseService = fixedexpense.NewService(fixedExpenses)
		receivableService   = receivable.NewService(receivables, procedures)
		planService         = plan.NewService(planStore.New(db), procedures)
		shoppingService     = shopping.NewService(shoppingStore.New(db))
		categoryService     = category.NewService(categoryStore.New(db))
		importService       = importer.NewService()
		exportService       = export.NewService(transactionService)
		dashboardService    = dashboard.NewService(dashboard.Readers{
			Accounts:      accounts,
			Transactions:  transactions,
			FixedExpenses: fixedExpenses,
			Invoices:      invoices,
			Receivables:   receivables,
		}, dashboard.WithLocation(loc))
	)

	router := carteiraHttp.New(
		carteiraHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins},
		auth.NewVerifier(auth.Config{
			Secret:     cfg.Auth.JWTSecret,
			Audience:   cfg.Auth.Audience,
			SkipAuth:   cfg.Auth.SkipAuth,
			MockUserID: cfg.Auth.MockUserID,
		}),
		carteiraHttp.Handlers{
			Accounts:      accountHandler.NewHandler(accountService),
			Transactions:  txHandler.NewHandler(transactionService),
			Import:        importHandler.NewHandler(importService, transactionService, categoryService),
			Invoices:      invoiceHandler.NewHandler(invoiceService, dashboardService.Today),
			FixedExpenses: fixedExpenseHandler.NewHandler(fixedExpenseService),
			Receivables:   receivableHandler.NewHandler(receivableService, dashboardService.Today),
			Plans:         planHandler.NewHandler(planService),
			ShoppingLists: shoppingHandler.NewHandler(shoppingService),
			Categories:    categoryHandler.NewHandler(categoryService),
			Dashboard:     dashboardHandler.NewHandler(dashboardService),
			Export:        exportHandler.NewHandler(exportService),
		},
	)

	if cfg.Auth.SkipAuth {
		slog.Warn("authentication disabled, every request acts as the mock user", "user_id", cfg.Auth.MockUserID)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "timezone", loc.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
