package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/http/render"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Response struct {
	ID                 uuid.UUID       `json:"id"`
	AccountID          uuid.UUID       `json:"account_id"`
	Amount             decimal.Decimal `json:"amount"`
	Date               render.Date     `json:"date"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	InstallmentNumber  *int            `json:"installment_number,omitempty"`
	TotalInstallments  *int            `json:"total_installments,omitempty"`
	OriginalPurchaseID *uuid.UUID      `json:"original_purchase_id,omitempty"`
	InvoiceID          *uuid.UUID      `json:"invoice_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func ToResponse(tx *transaction.Transaction) Response {
	return Response{
		ID:                 tx.ID,
		AccountID:          tx.AccountID,
		Amount:             tx.Amount,
		Date:               render.NewDate(tx.Date),
		Category:           tx.Category,
		Description:        tx.Description,
		InstallmentNumber:  tx.InstallmentNumber,
		TotalInstallments:  tx.TotalInstallments,
		OriginalPurchaseID: tx.OriginalPurchaseID,
		InvoiceID:          tx.InvoiceID,
		CreatedAt:          tx.CreatedAt,
	}
}

func ToResponseList(txs []*transaction.Transaction) []Response {
	resp := make([]Response, len(txs))
	for i, tx := range txs {
		resp[i] = ToResponse(tx)
	}

	return resp
}
