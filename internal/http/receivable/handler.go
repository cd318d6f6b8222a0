package receivable

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
)

type Handler struct {
	svc   *receivable.Service
	today func() time.Time
}

func NewHandler(svc *receivable.Service, today func() time.Time) *Handler {
	return &Handler{svc: svc, today: today}
}

// Routes serves one-time receivables.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/receive", h.markReceived)
}

// RecurringRoutes serves recurring receivable templates.
func (h *Handler) RecurringRoutes(r chi.Router) {
	r.Get("/", h.listRecurring)
	r.Post("/", h.createRecurring)
	r.Get("/{id}", h.getRecurring)
	r.Put("/{id}", h.updateRecurring)
	r.Delete("/{id}", h.deleteRecurring)
	r.Get("/{id}/occurrences", h.occurrences)
	r.Post("/{id}/receive", h.receiveOccurrence)
}

type receivableResponse struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	DueDate     render.Date       `json:"due_date"`
	Status      receivable.Status `json:"status"`
	Category    string            `json:"category"`
	RecurringID *uuid.UUID        `json:"recurring_id,omitempty"`
}

func toResponse(r *receivable.Receivable) receivableResponse {
	return receivableResponse{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		DueDate:     render.NewDate(r.DueDate),
		Status:      r.Status,
		Category:    r.Category,
		RecurringID: r.RecurringID,
	}
}

type recurringResponse struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	StartDate   render.Date         `json:"start_date"`
	Interval    receivable.Interval `json:"recurrence_interval"`
	EndDate     *render.Date        `json:"end_date,omitempty"`
	Category    string              `json:"category"`
}

func toRecurringResponse(r *receivable.RecurringReceivable) recurringResponse {
	return recurringResponse{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		StartDate:   render.NewDate(r.StartDate),
		Interval:    r.Interval,
		EndDate:     render.NewDatePtr(r.EndDate),
		Category:    r.Category,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, receivable.ErrNotFound):
		http.Error(w, "receivable not found", http.StatusNotFound)
	case errors.Is(err, receivable.ErrInvalidInput), errors.Is(err, receivable.ErrNotAnOccurrence):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, receivable.ErrAlreadyReceived), errors.Is(err, receivable.ErrTemplate):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("receivable request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var filter receivable.ListFilter

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(receivable.Status(s))
	}

	if filter.DueFrom, ok = render.QueryDate(w, r, "due_from"); !ok {
		return
	}

	if filter.DueTo, ok = render.QueryDate(w, r, "due_to"); !ok {
		return
	}

	receivables, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]receivableResponse, len(receivables))
	for i, rec := range receivables {
		resp[i] = toResponse(rec)
	}

	render.JSON(w, http.StatusOK, resp)
}

type receivableRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     render.Date     `json:"due_date"`
	Category    string          `json:"category"`
}

func (req receivableRequest) params() receivable.Params {
	return receivable.Params{
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate.Time,
		Category:    req.Category,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req receivableRequest
	if !render.Decode(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), userID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(rec))
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

	rec, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(rec))
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

	var req receivableRequest
	if !render.Decode(w, r, &req) {
		return
	}

	rec, err := h.svc.Update(r.Context(), userID, id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(rec))
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

type receiveRequest struct {
	AccountID    uuid.UUID    `json:"account_id"`
	ReceivedDate *render.Date `json:"received_date,omitempty"`
}

func (h *Handler) receivedDate(d *render.Date) time.Time {
	if d == nil {
		return h.today()
	}

	return d.Time
}

func (h *Handler) markReceived(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req receiveRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.AccountID == uuid.Nil {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkReceived(r.Context(), userID, id, receivable.ReceiveParams{
		AccountID:    req.AccountID,
		ReceivedDate: h.receivedDate(req.ReceivedDate),
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	templates, err := h.svc.ListRecurring(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]recurringResponse, len(templates))
	for i, t := range templates {
		resp[i] = toRecurringResponse(t)
	}

	render.JSON(w, http.StatusOK, resp)
}

type recurringRequest struct {
	Description string              `json:"description"`
	Amount      decimal.Decimal     `json:"amount"`
	StartDate   render.Date         `json:"start_date"`
	Interval    receivable.Interval `json:"recurrence_interval"`
	EndDate     *render.Date        `json:"end_date"`
	Category    string              `json:"category"`
}

func (req recurringRequest) params() receivable.RecurringParams {
	return receivable.RecurringParams{
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   req.StartDate.Time,
		Interval:    req.Interval,
		EndDate:     render.DatePtr(req.EndDate),
		Category:    req.Category,
	}
}

func (h *Handler) createRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req recurringRequest
	if !render.Decode(w, r, &req) {
		return
	}

	t, err := h.svc.CreateRecurring(r.Context(), userID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toRecurringResponse(t))
}

func (h *Handler) getRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetRecurring(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toRecurringResponse(t))
}

func (h *Handler) updateRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req recurringRequest
	if !render.Decode(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateRecurring(r.Context(), userID, id, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toRecurringResponse(t))
}

func (h *Handler) deleteRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteRecurring(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// occurrences defaults to the three months starting today.
func (h *Handler) occurrences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	from, ok := render.QueryDate(w, r, "from")
	if !ok {
		return
	}

	to, ok := render.QueryDate(w, r, "to")
	if !ok {
		return
	}

	if from == nil {
		from = new(h.today())
	}

	if to == nil {
		to = new(from.AddDate(0, 3, 0))
	}

	dates, err := h.svc.Occurrences(r.Context(), userID, id, *from, *to)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]render.Date, len(dates))
	for i, d := range dates {
		resp[i] = render.NewDate(d)
	}

	render.JSON(w, http.StatusOK, resp)
}

type receiveOccurrenceRequest struct {
	AccountID    uuid.UUID    `json:"account_id"`
	DueDate      render.Date  `json:"due_date"`
	ReceivedDate *render.Date `json:"received_date,omitempty"`
}

type receivedResponse struct {
	ReceivableID uuid.UUID `json:"receivable_id"`
}

func (h *Handler) receiveOccurrence(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req receiveOccurrenceRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.AccountID == uuid.Nil || req.DueDate.IsZero() {
		http.Error(w, "account_id and due_date are required", http.StatusBadRequest)
		return
	}

	receivableID, err := h.svc.Receive(r.Context(), userID, id, receivable.ReceiveOccurrenceParams{
		AccountID:    req.AccountID,
		DueDate:      req.DueDate.Time,
		ReceivedDate: h.receivedDate(req.ReceivedDate),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, receivedResponse{ReceivableID: receivableID})
}
