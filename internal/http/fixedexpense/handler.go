package fixedexpense

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
)

type Handler struct {
	svc *fixedexpense.Service
}

func NewHandler(svc *fixedexpense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type fixedExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDay      int             `json:"due_day"`
	AccountID   uuid.UUID       `json:"account_id"`
	Category    string          `json:"category"`
}

type listResponse struct {
	Items []fixedExpenseResponse `json:"items"`
	Total decimal.Decimal        `json:"total"`
}

func toResponse(e *fixedexpense.FixedExpense) fixedExpenseResponse {
	return fixedExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		DueDay:      e.DueDay,
		AccountID:   e.AccountID,
		Category:    e.Category,
	}
}

type fixedExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDay      int             `json:"due_day"`
	AccountID   uuid.UUID       `json:"account_id"`
	Category    string          `json:"category"`
}

func (req fixedExpenseRequest) params() fixedexpense.Params {
	return fixedexpense.Params{
		Description: req.Description,
		Amount:      req.Amount,
		DueDay:      req.DueDay,
		AccountID:   req.AccountID,
		Category:    req.Category,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fixedexpense.ErrNotFound):
		http.Error(w, "fixed expense not found", http.StatusNotFound)
	case errors.Is(err, fixedexpense.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("fixed expense request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	expenses, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := listResponse{
		Items: make([]fixedExpenseResponse, len(expenses)),
		Total: fixedexpense.Total(expenses),
	}
	for i, e := range expenses {
		resp.Items[i] = toResponse(e)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req fixedExpenseRequest
	if !render.Decode(w, r, &req) {
		return
	}

	e, err := h.svc.Create(r.Context(), userID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(e))
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

	e, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req fixedExpenseRequest
	if !render.Decode(w, r, &req) {
		return
	}

	e, err := h.svc.Update(r.Context(), userID, id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(e))
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
