package importer

import (
	"io"

	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Bank string

const (
	BankCGD    Bank = "cgd"
	BankNubank Bank = "nubank"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.ImportParams, error)
}
