package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

type numberFormat int

const (
	// european is "1.234,56": dots group thousands, the comma is the decimal point.
	european numberFormat = iota
	// plain is "1234.56" as written by most exporters outside Portugal.
	plain
)

// parseAmount reads a signed amount rounded to cents.
func parseAmount(s string, format numberFormat) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, " ", "")

	switch format {
	case european:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case plain:
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	return d.Round(2), nil
}
