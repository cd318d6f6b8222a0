package shopping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("shopping list not found")
	ErrItemNotFound = errors.New("shopping list item not found")
	ErrInvalidInput = errors.New("invalid shopping list")
)

type List struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
	Items  []*Item
}

// Item quantity is free text ("2", "1,5 kg", "a dozen").
type Item struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	Name      string
	Quantity  string
	UnitPrice *decimal.Decimal
	Purchased bool
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}

	if i.UnitPrice != nil && i.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidInput)
	}

	return nil
}

// Estimate is UnitPrice times the numeric part of Quantity, or the unit price
// alone when the quantity has no usable number. Items without a price cost 0.
func (i *Item) Estimate() decimal.Decimal {
	if i.UnitPrice == nil {
		return decimal.Zero
	}

	return i.UnitPrice.Mul(numericQuantity(i.Quantity))
}

func numericQuantity(q string) decimal.Decimal {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return decimal.NewFromInt(1)
	}

	n, err := decimal.NewFromString(strings.Replace(fields[0], ",", ".", 1))
	if err != nil || !n.IsPositive() {
		return decimal.NewFromInt(1)
	}

	return n
}

type Totals struct {
	Estimated decimal.Decimal
	Purchased decimal.Decimal
	Items     int
	Done      int
}

func (l *List) Totals() Totals {
	t := Totals{Estimated: decimal.Zero, Purchased: decimal.Zero, Items: len(l.Items)}

	for _, item := range l.Items {
		est := item.Estimate()
		t.Estimated = t.Estimated.Add(est)

		if item.Purchased {
			t.Purchased = t.Purchased.Add(est)
			t.Done++
		}
	}

	return t
}
