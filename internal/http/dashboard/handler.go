package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	txhttp "github.com/MrJamesThe3rd/carteira/internal/http/transaction"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

type trendPointResponse struct {
	Month    render.Date     `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

type summaryResponse struct {
	TotalBalance       decimal.Decimal      `json:"total_balance"`
	MonthlyIncome      decimal.Decimal      `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal      `json:"monthly_expenses"`
	Trend              []trendPointResponse `json:"trend"`
	RecentTransactions []txhttp.Response    `json:"recent_transactions"`
}

func toResponse(s *dashboard.Summary) summaryResponse {
	resp := summaryResponse{
		TotalBalance:       s.TotalBalance,
		MonthlyIncome:      s.MonthlyIncome,
		MonthlyExpenses:    s.MonthlyExpenses,
		Trend:              make([]trendPointResponse, len(s.Trend)),
		RecentTransactions: txhttp.ToResponseList(s.RecentTransactions),
	}
	for i, p := range s.Trend {
		resp.Trend[i] = trendPointResponse{
			Month:    render.NewDate(p.Month),
			Label:    p.Label,
			Income:   p.Income,
			Expenses: p.Expenses,
		}
	}

	return resp
}

// summary has no partial result: any failed read is a 500. The body stays
// generic since the error carries driver detail; the log line has all of it.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		slog.Error("dashboard request failed",
			"request_id", middleware.GetReqID(r.Context()), "user_id", userID, "error", err)
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(s))
}
