package invoice

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	txhttp "github.com/MrJamesThe3rd/carteira/internal/http/transaction"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
)

type Handler struct {
	svc   *invoice.Service
	today func() time.Time
}

// NewHandler takes the clock "current" invoices are resolved against.
func NewHandler(svc *invoice.Service, today func() time.Time) *Handler {
	return &Handler{svc: svc, today: today}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/current", h.current)
	r.Get("/{id}", h.get)
	r.Post("/{id}/pay", h.pay)
}

type invoiceResponse struct {
	ID           uuid.UUID         `json:"id"`
	AccountID    uuid.UUID         `json:"account_id"`
	ClosingDate  render.Date       `json:"closing_date"`
	DueDate      render.Date       `json:"due_date"`
	Status       invoice.Status    `json:"status"`
	Total        decimal.Decimal   `json:"total"`
	Transactions []txhttp.Response `json:"transactions"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:           inv.ID,
		AccountID:    inv.AccountID,
		ClosingDate:  render.NewDate(inv.ClosingDate),
		DueDate:      render.NewDate(inv.DueDate),
		Status:       inv.Status,
		Total:        inv.Total(),
		Transactions: txhttp.ToResponseList(inv.Transactions),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invoice.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.Is(err, account.ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, invoice.ErrNotCard):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, invoice.ErrAlreadyPaid):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("invoice request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func requireAccountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := render.QueryID(w, r, "account_id")
	if !ok {
		return uuid.Nil, false
	}

	if id == nil {
		http.Error(w, "account_id query parameter is required", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return *id, true
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	invoices, err := h.svc.List(r.Context(), userID, accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	accountID, ok := requireAccountID(w, r)
	if !ok {
		return
	}

	inv, err := h.svc.Current(r.Context(), userID, accountID, h.today())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(inv))
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

	inv, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(inv))
}

type payRequest struct {
	PayingAccountID uuid.UUID    `json:"paying_account_id"`
	PaymentDate     *render.Date `json:"payment_date,omitempty"`
}

// pay defaults the payment date to today.
func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req payRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if req.PayingAccountID == uuid.Nil {
		http.Error(w, "paying_account_id is required", http.StatusBadRequest)
		return
	}

	paymentDate := h.today()
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.Time
	}

	if err := h.svc.Pay(r.Context(), userID, id, invoice.PayParams{
		PayingAccountID: req.PayingAccountID,
		PaymentDate:     paymentDate,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
