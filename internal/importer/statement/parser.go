package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/carteira/internal/encoding"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

var ErrUnknownFormat = errors.New("no matching statement format")

// Parser reads bank CSV exports. The layout is detected by matching header
// rows against the configured profiles, so exports with preamble lines or
// reordered columns still parse.
type Parser struct {
	profiles []Profile
}

func NewParser(profiles ...Profile) *Parser {
	return &Parser{profiles: profiles}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.ImportParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	content, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	for _, comma := range p.separators() {
		rows, err := readRows(content, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(p.profilesFor(comma), rows)
		if profile == nil {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	}

	return nil, fmt.Errorf("%w: expected one of %s", ErrUnknownFormat, strings.Join(p.names(), ", "))
}

func (p *Parser) separators() []rune {
	var seps []rune

	for _, profile := range p.profiles {
		if !slices.Contains(seps, profile.Comma) {
			seps = append(seps, profile.Comma)
		}
	}

	return seps
}

func (p *Parser) profilesFor(comma rune) []Profile {
	var out []Profile

	for _, profile := range p.profiles {
		if profile.Comma == comma {
			out = append(out, profile)
		}
	}

	return out
}

func (p *Parser) names() []string {
	names := make([]string, len(p.profiles))
	for i, profile := range p.profiles {
		names[i] = profile.Name
	}

	return names
}

func readRows(content []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

type colIndex map[string]int

// detectProfile returns the first header row matching one of profiles, its
// column map and its index.
func detectProfile(profiles []Profile, rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a parseable date or a non-zero amount, which
// covers blank lines and page footers.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]transaction.ImportParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var out []transaction.ImportParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		date, ok := parseDate(row, dateIdx, p.DateLayouts)
		if !ok {
			continue
		}

		amount, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		out = append(out, transaction.ImportParams{
			Amount:      amount,
			Date:        date,
			Description: desc,
		})
	}

	return out, nil
}

func parseDate(row []string, idx int, layouts []string) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// rowAmount returns the signed amount of a row: negative for money leaving
// the account.
func rowAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, bool) {
	var (
		amount decimal.Decimal
		ok     bool
	)

	switch p.AmountMode {
	case amountSingle:
		amount, ok = cellAmount(row, cols[p.AmountCol], p.Format)
	case amountSplit:
		amount, ok = splitAmount(row, cols[p.DebitCol], cols[p.CreditCol], p.Format)
	}

	if !ok {
		return decimal.Zero, false
	}

	if p.Inverted {
		amount = amount.Neg()
	}

	return amount, true
}

func cellAmount(row []string, idx int, format numberFormat) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseAmount(s, format)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}

	return d, true
}

func splitAmount(row []string, debitIdx, creditIdx int, format numberFormat) (decimal.Decimal, bool) {
	if d, ok := cellAmount(row, debitIdx, format); ok {
		return d.Abs().Neg(), true
	}

	if d, ok := cellAmount(row, creditIdx, format); ok {
		return d.Abs(), true
	}

	return decimal.Zero, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
