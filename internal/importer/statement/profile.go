package statement

type amountMode int

const (
	// amountSingle is one signed column, e.g. "Montante" holding "-10,00".
	amountSingle amountMode = iota
	// amountSplit is a pair of unsigned debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one bank export.
type Profile struct {
	Name        string
	Comma       rune
	DateLayouts []string
	Format      numberFormat
	DateCol     string
	DescCol     string
	AmountMode  amountMode
	AmountCol   string
	DebitCol    string
	CreditCol   string
	// Inverted marks exports that list purchases as positive numbers.
	Inverted bool
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// CGD profiles. More specific layouts come first.
var CGD = []Profile{
	{
		Name:        "cgd cartão",
		Comma:       ';',
		DateLayouts: []string{"02-01-2006"},
		Format:      european,
		DateCol:     "Data",
		DescCol:     "Descrição",
		AmountMode:  amountSplit,
		DebitCol:    "Débito",
		CreditCol:   "Crédito",
	},
	{
		Name:        "cgd extrato",
		Comma:       ';',
		DateLayouts: []string{"02-01-2006"},
		Format:      european,
		DateCol:     "Data mov.",
		DescCol:     "Descrição",
		AmountMode:  amountSingle,
		AmountCol:   "Movimento",
	},
	{
		Name:        "cgd conta",
		Comma:       ';',
		DateLayouts: []string{"02-01-2006"},
		Format:      european,
		DateCol:     "Data mov.",
		DescCol:     "Descrição",
		AmountMode:  amountSingle,
		AmountCol:   "Montante",
	},
}

var Nubank = []Profile{
	{
		Name:        "nubank conta",
		Comma:       ',',
		DateLayouts: []string{"02/01/2006", "2006-01-02"},
		Format:      plain,
		DateCol:     "Data",
		DescCol:     "Descrição",
		AmountMode:  amountSingle,
		AmountCol:   "Valor",
	},
	{
		Name:        "nubank cartão",
		Comma:       ',',
		DateLayouts: []string{"2006-01-02", "02/01/2006"},
		Format:      plain,
		DateCol:     "date",
		DescCol:     "title",
		AmountMode:  amountSingle,
		AmountCol:   "amount",
		Inverted:    true,
	},
}
