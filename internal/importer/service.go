package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/carteira/internal/importer/statement"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

var ErrUnknownBank = errors.New("unknown bank")

type Service struct {
	importers map[Bank]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Bank]Importer{
			BankCGD:    statement.NewParser(statement.CGD...),
			BankNubank: statement.NewParser(statement.Nubank...),
		},
	}
}

// Import parses a statement exported by bank. Amounts are signed: negative
// lines left the account.
func (s *Service) Import(bank Bank, r io.Reader) ([]transaction.ImportParams, error) {
	importer, ok := s.importers[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	return importer.Parse(r)
}
