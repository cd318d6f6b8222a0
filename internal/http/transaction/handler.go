package transaction

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

const defaultRecentLimit = 5

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/recent", h.recent)
	r.Post("/expense", h.createExpense)
	r.Post("/income", h.createIncome)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, procedure.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("transaction request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var (
		filter transaction.ListFilter
		valid  bool
	)

	if filter.AccountID, valid = render.QueryID(w, r, "account_id"); !valid {
		return
	}

	if filter.StartDate, valid = render.QueryDate(w, r, "start_date"); !valid {
		return
	}

	if filter.EndDate, valid = render.QueryDate(w, r, "end_date"); !valid {
		return
	}

	txs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponseList(txs))
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	limit, ok := render.QueryInt(w, r, "limit", defaultRecentLimit)
	if !ok {
		return
	}

	txs, err := h.svc.Recent(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	tx, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, ToResponse(tx))
}

type createExpenseRequest struct {
	AccountID    uuid.UUID       `json:"account_id"`
	Amount       decimal.Decimal `json:"amount"`
	Date         render.Date     `json:"date"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Installments int             `json:"installments"`
}

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req createExpenseRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	id, err := h.svc.CreateExpense(r.Context(), userID, transaction.ExpenseParams{
		AccountID:    req.AccountID,
		Amount:       req.Amount,
		Date:         req.Date.Time,
		Description:  req.Description,
		Category:     req.Category,
		Installments: req.Installments,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

type createIncomeRequest struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        render.Date     `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

func (h *Handler) createIncome(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req createIncomeRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.Date.IsZero() {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	id, err := h.svc.CreateIncome(r.Context(), userID, transaction.IncomeParams{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
