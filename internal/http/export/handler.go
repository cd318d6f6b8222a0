package export

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/export"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	txhttp "github.com/MrJamesThe3rd/carteira/internal/http/transaction"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	AccountID *string      `json:"account_id,omitempty"`
	StartDate *render.Date `json:"start_date,omitempty"`
	EndDate   *render.Date `json:"end_date,omitempty"`
}

type exportMetadataResponse struct {
	Transactions []txhttp.Response `json:"transactions"`
	Summary      string            `json:"summary"`
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) ([]*transaction.Transaction, bool) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return nil, false
	}

	var req exportRequest
	if !render.Decode(w, r, &req) {
		return nil, false
	}

	filter := transaction.ListFilter{
		StartDate: render.DatePtr(req.StartDate),
		EndDate:   render.DatePtr(req.EndDate),
	}

	txs, err := h.svc.Export(r.Context(), userID, filter)
	if err != nil {
		slog.Error("export failed", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return txs, true
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	txs, ok := h.load(w, r)
	if !ok {
		return
	}

	render.JSON(w, http.StatusOK, exportMetadataResponse{
		Transactions: txhttp.ToResponseList(txs),
		Summary:      h.svc.Summary(txs),
	})
}

// download streams a zip holding transactions.csv and summary.txt.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	txs, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "export.zip"))

	zw := zip.NewWriter(w)
	defer zw.Close()

	csvFile, err := zw.Create("transactions.csv")
	if err == nil {
		err = h.svc.WriteCSV(csvFile, txs)
	}

	if err != nil {
		slog.Error("failed to write export csv", "error", err)
		return
	}

	summaryFile, err := zw.Create("summary.txt")
	if err == nil {
		_, err = summaryFile.Write([]byte(h.svc.Summary(txs)))
	}

	if err != nil {
		slog.Error("failed to write export summary", "error", err)
	}
}
