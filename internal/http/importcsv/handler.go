package importcsv

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/category"
	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	txhttp "github.com/MrJamesThe3rd/carteira/internal/http/transaction"
	"github.com/MrJamesThe3rd/carteira/internal/importer"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc   *importer.Service
	txSvc       *transaction.Service
	categorySvc *category.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, categorySvc *category.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		txSvc:       txSvc,
		categorySvc: categorySvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type importSuccessResponse struct {
	Imported     int               `json:"imported"`
	Transactions []txhttp.Response `json:"transactions"`
}

type paramsDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        render.Date     `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

type conflictDTO struct {
	Incoming paramsDTO       `json:"incoming"`
	Existing txhttp.Response `json:"existing"`
}

type importConflictResponse struct {
	New       []paramsDTO   `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
}

type confirmRequest struct {
	AccountID uuid.UUID   `json:"account_id"`
	Params    []paramsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	bank := importer.Bank(r.FormValue("bank"))
	if bank == "" {
		http.Error(w, "bank field is required", http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(bank, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, p := range params {
		suggested, err := h.categorySvc.Suggest(r.Context(), userID, p.Description)
		if err != nil {
			slog.Warn("category suggestion failed", "description", p.Description, "error", err)
			continue
		}

		params[i].Category = suggested
	}

	result, err := h.txSvc.ImportBatch(r.Context(), userID, accountID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]paramsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: txhttp.ToResponse(c.Existing),
			})
		}

		render.JSON(w, http.StatusConflict, resp)

		return
	}

	render.JSON(w, http.StatusCreated, toSuccessResponse(result.Imported))
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.FromRequest(w, r)
	if !ok {
		return
	}

	var req confirmRequest
	if !render.Decode(w, r, &req) {
		return
	}

	params := make([]transaction.ImportParams, 0, len(req.Params))
	for _, p := range req.Params {
		params = append(params, transaction.ImportParams{
			Amount:      p.Amount,
			Date:        p.Date.Time,
			Description: p.Description,
			Category:    p.Category,
		})
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), userID, req.AccountID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, toSuccessResponse(txs))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, procedure.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Error("import failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toSuccessResponse(txs []*transaction.Transaction) importSuccessResponse {
	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: txhttp.ToResponseList(txs),
	}
}

func toParamsDTO(p transaction.ImportParams) paramsDTO {
	return paramsDTO{
		Amount:      p.Amount,
		Date:        render.NewDate(p.Date),
		Description: p.Description,
		Category:    p.Category,
	}
}
