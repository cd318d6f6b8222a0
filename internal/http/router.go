package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/account"
	"github.com/MrJamesThe3rd/carteira/internal/http/category"
	"github.com/MrJamesThe3rd/carteira/internal/http/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/http/export"
	"github.com/MrJamesThe3rd/carteira/internal/http/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/http/importcsv"
	"github.com/MrJamesThe3rd/carteira/internal/http/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/http/plan"
	"github.com/MrJamesThe3rd/carteira/internal/http/receivable"
	"github.com/MrJamesThe3rd/carteira/internal/http/shopping"
	"github.com/MrJamesThe3rd/carteira/internal/http/transaction"
)

type Handlers struct {
	Accounts      *account.Handler
	Transactions  *transaction.Handler
	Import        *importcsv.Handler
	Invoices      *invoice.Handler
	FixedExpenses *fixedexpense.Handler
	Receivables   *receivable.Handler
	Plans         *plan.Handler
	ShoppingLists *shopping.Handler
	Categories    *category.Handler
	Dashboard     *dashboard.Handler
	Export        *export.Handler
}

type Options struct {
	AllowedOrigins []string
}

func New(opts Options, verifier *auth.Verifier, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Accounts.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Transactions.Routes(r)
		})

		r.Route("/import", h.Import.Routes)
		r.Route("/invoices", h.Invoices.Routes)
		r.Route("/fixed-expenses", h.FixedExpenses.Routes)
		r.Route("/receivables", h.Receivables.Routes)
		r.Route("/recurring-receivables", h.Receivables.RecurringRoutes)
		r.Route("/plans", h.Plans.Routes)
		r.Route("/shopping-lists", h.ShoppingLists.Routes)
		r.Route("/categories", h.Categories.Routes)
		r.Route("/dashboard", h.Dashboard.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Export.Routes(r)
		})
	})

	return router
}
