package statement_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/carteira/internal/importer/statement"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParser_CGDConta(t *testing.T) {
	csv := `Consultar saldos e movimentos à ordem - 31-01-2026;"=""0000"""
Nome cliente;JOHN DOE
NIF;"=""123"""

Dados da conta
Conta;0000 - EUR - Conta Extracto
Saldo contabilístico;1.000,00 EUR

Data mov.;Data-valor;Descrição;Montante;Saldo contabilístico após movimento
30-01-2026;30-01-2026;INSTITUTO GESTAO FINA;-588,74;48.825,46
09-01-2026;09-01-2026;TFI Wise;8.608,52;52.532,78
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, date(2026, 1, 30), got[0].Date)
	assert.Equal(t, "INSTITUTO GESTAO FINA", got[0].Description)
	assert.True(t, amount("-588.74").Equal(got[0].Amount))

	assert.Equal(t, date(2026, 1, 9), got[1].Date)
	assert.True(t, amount("8608.52").Equal(got[1].Amount))
}

func TestParser_CGDExtrato(t *testing.T) {
	csv := `Consultar extrato - 15-02-2026 : 0829015676030
Intervalo de ;01-02-2026 a 14-02-2026
Saldo contabilístico Inicial ;48.825,46

Data mov. ;Data valor ;Origem ;Descrição ;Movimento ;Estorno ;Saldo contabilístico após movimento ;
13-02-2026;13-02-2026;"=""0003""";PAGAMENTO TSU ;-608,13;  ;41.393,66;
04-02-2026;04-02-2026;SIBS ;TFI Wise ;4.324,06;  ;51.302,85;
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "PAGAMENTO TSU", got[0].Description)
	assert.True(t, amount("-608.13").Equal(got[0].Amount))
	assert.True(t, amount("4324.06").Equal(got[1].Amount))
}

func TestParser_CGDCartao(t *testing.T) {
	csv := `Consultar saldos e movimentos de cartões - 15-02-2026
Conta cartão ;4163 **** **** 8016 - EUR - Business Débito

Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;PA GONDOMAR         GONDOMAR ;64,00 ; ;
31-12-2025 ;29-12-2025 ;REFUND AMAZON ; ;25,00 ;
 ; ; ; ;Página 1/2 ;
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, date(2025, 12, 16), got[0].Date)
	assert.Equal(t, "PA GONDOMAR         GONDOMAR", got[0].Description)
	assert.True(t, amount("-64").Equal(got[0].Amount), "debit is money out")
	assert.True(t, amount("25").Equal(got[1].Amount), "credit is money in")
}

func TestParser_NubankConta(t *testing.T) {
	csv := `Data,Valor,Identificador,Descrição
05/03/2024,-45.90,65e6f1a2-0000-4000-8000-000000000001,Compra no débito - Padaria Real
07/03/2024,3500.00,65e6f1a2-0000-4000-8000-000000000002,"Transferência recebida pelo Pix - ACME LTDA"
`

	got, err := statement.NewParser(statement.Nubank...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, date(2024, 3, 5), got[0].Date)
	assert.Equal(t, "Compra no débito - Padaria Real", got[0].Description)
	assert.True(t, amount("-45.90").Equal(got[0].Amount))

	assert.Equal(t, date(2024, 3, 7), got[1].Date)
	assert.True(t, amount("3500").Equal(got[1].Amount))
}

func TestParser_NubankCartaoInvertsSign(t *testing.T) {
	csv := `date,title,amount
2024-03-02,Mercado Livre,129.99
2024-03-10,Pagamento recebido,-500.00
`

	got, err := statement.NewParser(statement.Nubank...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, amount("-129.99").Equal(got[0].Amount))
	assert.True(t, amount("500").Equal(got[1].Amount))
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Data mov.;Descrição;Montante\n30-01-2026;CAFÉ CENTRAL;-10,00\n"

	latin1Bytes, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	got, err := statement.NewParser(statement.CGD...).Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "CAFÉ CENTRAL", got[0].Description)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random;MetaData
Montante;Descrição;Data mov.;Ignored
-10,00;TEST_ORDER;30-01-2026;XXX
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "TEST_ORDER", got[0].Description)
	assert.True(t, amount("-10").Equal(got[0].Amount))
}

func TestParser_UnknownFormat(t *testing.T) {
	tests := []struct {
		name    string
		profile []statement.Profile
		input   string
	}{
		{name: "Empty", profile: statement.CGD, input: ""},
		{name: "NubankFileAsCGD", profile: statement.CGD, input: "date,title,amount\n2024-03-02,Mercado Livre,129.99\n"},
		{name: "CGDFileAsNubank", profile: statement.Nubank, input: "Data mov.;Descrição;Montante\n30-01-2026;TEST;-10,00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := statement.NewParser(tt.profile...).Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, statement.ErrUnknownFormat)
		})
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader("Data mov.;Data-valor;Descrição;Montante"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;;-10,00
`

	_, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;BIG TRANSFER;-1.234.567,89
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.True(t, amount("-1234567.89").Equal(got[0].Amount))
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;TEST;-10,00
Totais;;;;
31-01-2026;ZERO;0,00
`

	got, err := statement.NewParser(statement.CGD...).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, got, 1)
}
