package shopping

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	"github.com/MrJamesThe3rd/carteira/internal/shopping"
)

type Handler struct {
	svc *shopping.Service
}

func NewHandler(svc *shopping.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.lists)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.rename)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/items", h.addItem)
	r.Put("/items/{itemID}", h.updateItem)
	r.Post("/items/{itemID}/toggle", h.toggle)
	r.Delete("/items/{itemID}", h.deleteItem)
}

type itemResponse struct {
	ID        uuid.UUID        `json:"id"`
	ListID    uuid.UUID        `json:"list_id"`
	Name      string           `json:"name"`
	Quantity  string           `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Purchased bool             `json:"purchased"`
	Estimate  decimal.Decimal  `json:"estimate"`
}

type totalsResponse struct {
	Estimated decimal.Decimal `json:"estimated"`
	Purchased decimal.Decimal `json:"purchased"`
	Items     int             `json:"items"`
	Done      int             `json:"done"`
}

type listResponse struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Items  []itemResponse `json:"items"`
	Totals totalsResponse `json:"totals"`
}

func toItemResponse(i *shopping.Item) itemResponse {
	return itemResponse{
		ID:        i.ID,
		ListID:    i.ListID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Purchased: i.Purchased,
		Estimate:  i.Estimate(),
	}
}

func toResponse(l *shopping.List) listResponse {
	t := l.Totals()

	resp := listResponse{
		ID:     l.ID,
		Name:   l.Name,
		Items:  make([]itemResponse, len(l.Items)),
		Totals: totalsResponse{Estimated: t.Estimated, Purchased: t.Purchased, Items: t.Items, Done: t.Done},
	}
	for i, item := range l.Items {
		resp.Items[i] = toItemResponse(item)
	}

	return resp
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shopping.ErrNotFound):
		http.Error(w, "shopping list not found", http.StatusNotFound)
	case errors.Is(err, shopping.ErrItemNotFound):
		http.Error(w, "shopping list item not found", http.StatusNotFound)
	case errors.Is(err, shopping.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("shopping request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) lists(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	lists, err := h.svc.Lists(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]listResponse, len(lists))
	for i, l := range lists {
		resp[i] = toResponse(l)
	}

	render.JSON(w, http.StatusOK, resp)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req nameRequest
	if !render.Decode(w, r, &req) {
		return
	}

	l, err := h.svc.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(l))
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

	l, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(l))
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	id, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req nameRequest
	if !render.Decode(w, r, &req) {
		return
	}

	if err := h.svc.Rename(r.Context(), userID, id, req.Name); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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

type itemRequest struct {
	Name      string           `json:"name"`
	Quantity  string           `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

func (req itemRequest) params() shopping.ItemParams {
	return shopping.ItemParams{Name: req.Name, Quantity: req.Quantity, UnitPrice: req.UnitPrice}
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	listID, ok := render.URLID(w, r, "id")
	if !ok {
		return
	}

	var req itemRequest
	if !render.Decode(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), userID, listID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toItemResponse(item))
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	itemID, ok := render.URLID(w, r, "itemID")
	if !ok {
		return
	}

	var req itemRequest
	if !render.Decode(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), userID, itemID, req.params())
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toItemResponse(item))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	itemID, ok := render.URLID(w, r, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.TogglePurchased(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toItemResponse(item))
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	itemID, ok := render.URLID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
