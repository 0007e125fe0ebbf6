package journal_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/importer/journal"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func parse(t *testing.T, csv string) *journal.Journal {
	t.Helper()

	j, err := journal.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)

	return j
}

func TestParser_Daybook(t *testing.T) {
	csv := `Day Book;01-04-2026 to 30-04-2026
Company;Acme Trading

Date;Voucher Type;Reference;Ledger;Debit;Credit;Narration;Bill;Bill Type;Due Date
2026-04-02;Sales;INV-7;Beta Stores;1.180,00;;April goods;INV-7;;2026-05-02
2026-04-02;Sales;INV-7;Sales;;1.000,00;;;;
2026-04-02;Sales;INV-7;Output Tax;;180,00;;;;
2026-04-05;Receipt;RC-1;Bank;500,00;;Part payment;;;
2026-04-05;Receipt;RC-1;Beta Stores;;500,00;;INV-7;against;
Total;;;;1.680,00;1.680,00;;;;
`

	j := parse(t, csv)

	assert.Equal(t, "daybook", j.Profile)
	assert.Equal(t, "UTF-8", j.Charset)
	require.Len(t, j.Vouchers, 2)

	sale := j.Vouchers[0]
	assert.Equal(t, 5, sale.Row)
	assert.Equal(t, date(2026, 4, 2), sale.Date)
	assert.Equal(t, "Sales", sale.VoucherType)
	assert.Equal(t, "INV-7", sale.Reference)
	assert.Equal(t, "April goods", sale.Narration)
	assert.Empty(t, sale.Problems)
	require.Len(t, sale.Lines, 3)

	assert.Equal(t, "Beta Stores", sale.Lines[0].Ledger)
	assert.Equal(t, ledger.Debit, sale.Lines[0].Side)
	assert.Equal(t, "1180.00", sale.Lines[0].Amount.StringFixed(2))
	assert.Equal(t, "INV-7", sale.Lines[0].Bill)
	assert.Equal(t, bill.RefNew, sale.Lines[0].BillType)
	assert.Equal(t, "2026-05-02", sale.Lines[0].DueDate)

	assert.Equal(t, ledger.Credit, sale.Lines[2].Side)
	assert.Equal(t, "180.00", sale.Lines[2].Amount.StringFixed(2))
	assert.Equal(t, 7, sale.Lines[2].Row)

	receipt := j.Vouchers[1]
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, bill.RefAgainst, receipt.Lines[1].BillType)
	assert.Empty(t, receipt.Lines[1].DueDate)
}

func TestParser_Signed(t *testing.T) {
	csv := `Reference;Date;Ledger;Amount;Voucher Type
JV-1;31-03-2026;Rent;1200;Journal
JV-1;31-03-2026;Bank;-1200;Journal
`

	j := parse(t, csv)

	assert.Equal(t, "signed", j.Profile)
	require.Len(t, j.Vouchers, 1)
	require.Len(t, j.Vouchers[0].Lines, 2)

	assert.Equal(t, date(2026, 3, 31), j.Vouchers[0].Date)
	assert.Equal(t, ledger.Debit, j.Vouchers[0].Lines[0].Side)
	assert.Equal(t, ledger.Credit, j.Vouchers[0].Lines[1].Side)
	assert.Equal(t, "1200.00", j.Vouchers[0].Lines[1].Amount.StringFixed(2))
}

func TestParser_DiarioLatin1(t *testing.T) {
	utf8CSV := "Data;Tipo;Referência;Conta;Débito;Crédito;Descrição\n" +
		"15/01/2026;Payment;PG-3;Café Central;12,50;;Almoço\n" +
		"15/01/2026;Payment;PG-3;Caixa;;12,50;\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	j, err := journal.NewParser().Parse(bytes.NewReader(latin1))
	require.NoError(t, err)

	assert.Equal(t, "diário", j.Profile)
	assert.NotEqual(t, "UTF-8", j.Charset)
	require.Len(t, j.Vouchers, 1)
	assert.Equal(t, "Café Central", j.Vouchers[0].Lines[0].Ledger)
	assert.Equal(t, "Almoço", j.Vouchers[0].Narration)
}

func TestParser_GroupsOnlyConsecutiveRows(t *testing.T) {
	csv := `Date;Voucher Type;Reference;Ledger;Debit;Credit
2026-04-01;Journal;A;Rent;10;
2026-04-01;Journal;B;Bank;;10
2026-04-01;journal;A;Bank;;10
2026-04-02;Journal;A;Rent;5;
`

	j := parse(t, csv)

	require.Len(t, j.Vouchers, 4)
	assert.Equal(t, "A", j.Vouchers[0].Reference)
	assert.Equal(t, "B", j.Vouchers[1].Reference)
	assert.Equal(t, "A", j.Vouchers[2].Reference)
	assert.Equal(t, date(2026, 4, 2), j.Vouchers[3].Date)
}

func TestParser_CaseInsensitiveVoucherTypeGrouping(t *testing.T) {
	csv := `Date;Voucher Type;Reference;Ledger;Debit;Credit
2026-04-01;Journal;A;Rent;10;
2026-04-01;JOURNAL;A;Bank;;10
`

	j := parse(t, csv)

	require.Len(t, j.Vouchers, 1)
	assert.Len(t, j.Vouchers[0].Lines, 2)
}

func TestParser_RowProblems(t *testing.T) {
	csv := `Date;Voucher Type;Reference;Ledger;Debit;Credit;Bill;Due Date
2026-04-01;Journal;A;Rent;10;5;;
2026-04-01;Journal;A;Bank;;;;
2026-04-01;Journal;A;Cash;abc;;;
2026-04-01;Journal;A;Party;;10;X-1;soon
2026-04-01;Journal;A;Bank;;10;;
`

	j := parse(t, csv)

	require.Len(t, j.Vouchers, 1)

	d := j.Vouchers[0]
	require.Len(t, d.Problems, 4)
	assert.Contains(t, d.Problems[0], "row 2: both debit and credit")
	assert.Contains(t, d.Problems[1], "row 3: missing amount")
	assert.Contains(t, d.Problems[2], "row 4:")
	assert.Contains(t, d.Problems[3], "unreadable due date")
	assert.Len(t, d.Lines, 1)
}

func TestParser_UnknownLayout(t *testing.T) {
	_, err := journal.NewParser().Parse(strings.NewReader("Data mov.;Descrição;Montante\n30-01-2026;TEST;-10,00\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no known journal layout")
}

func TestParser_EmptyFile(t *testing.T) {
	_, err := journal.NewParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParser_HeaderOnly(t *testing.T) {
	j := parse(t, "Date;Voucher Type;Reference;Ledger;Amount")

	assert.Empty(t, j.Vouchers)
}
