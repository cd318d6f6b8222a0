package category

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/category"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.mappings)
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	RawDescription string `json:"raw_description"`
	Category       string `json:"category"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	rawDesc := r.URL.Query().Get("raw_description")
	if rawDesc == "" {
		http.Error(w, "raw_description query parameter is required", http.StatusBadRequest)
		return
	}

	suggested, err := h.svc.Suggest(r.Context(), userID, rawDesc)
	if err != nil {
		slog.Error("category suggestion failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	render.JSON(w, http.StatusOK, suggestResponse{RawDescription: rawDesc, Category: suggested})
}

type mappingDTO struct {
	RawPattern string `json:"raw_pattern"`
	Category   string `json:"category"`
}

func (h *Handler) mappings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	mappings, err := h.svc.Mappings(r.Context(), userID)
	if err != nil {
		slog.Error("listing category mappings failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]mappingDTO, len(mappings))
	for i, m := range mappings {
		resp[i] = mappingDTO{RawPattern: m.RawPattern, Category: m.Category}
	}

	render.JSON(w, http.StatusOK, resp)
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req mappingDTO
	if !render.Decode(w, r, &req) {
		return
	}

	if err := h.svc.Learn(r.Context(), userID, req.RawPattern, req.Category); err != nil {
		if errors.Is(err, category.ErrInvalidMapping) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("learning category mapping failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}
