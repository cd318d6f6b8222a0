package plan

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	"github.com/MrJamesThe3rd/carteira/internal/plan"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

type Handler struct {
	svc *plan.Service
}

func NewHandler(svc *plan.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/add-value", h.addValue)
}

type planResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	GoalAmount    decimal.Decimal `json:"goal_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Progress      decimal.Decimal `json:"progress"`
}

func toResponse(p *plan.FinancialPlan) planResponse {
	return planResponse{
		ID:            p.ID,
		Name:          p.Name,
		GoalAmount:    p.GoalAmount,
		CurrentAmount: p.CurrentAmount,
		Remaining:     p.Remaining(),
		Progress:      p.Progress(),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, plan.ErrNotFound):
		http.Error(w, "financial plan not found", http.StatusNotFound)
	case errors.Is(err, plan.ErrInvalidInput), errors.Is(err, procedure.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("plan request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	plans, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]planResponse, len(plans))
	for i, p := range plans {
		resp[i] = toResponse(p)
	}

	render.JSON(w, http.StatusOK, resp)
}

type planRequest struct {
	Name       string          `json:"name"`
	GoalAmount decimal.Decimal `json:"goal_amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req planRequest
	if !render.Decode(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), userID, plan.Params{Name: req.Name, GoalAmount: req.GoalAmount})
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(p))
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

	p, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
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

	var req planRequest
	if !render.Decode(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), userID, id, plan.Params{Name: req.Name, GoalAmount: req.GoalAmount})
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
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

type addValueRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) addValue(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req addValueRequest
	if !render.Decode(w, r, &req) {
		return
	}

	p, err := h.svc.AddValue(r.Context(), userID, id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(p))
}
