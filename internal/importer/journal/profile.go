package journal

// amountMode determines how a line's side and amount are read.
type amountMode int

const (
	// amountSplit means separate debit and credit columns.
	amountSplit amountMode = iota
	// amountSigned means one column, positive for debit and negative for credit.
	amountSigned
)

// Profile describes the column layout of a journal export.
type Profile struct {
	Name       string
	DateCol    string
	TypeCol    string
	RefCol     string
	LedgerCol  string
	AmountMode amountMode
	AmountCol  string // amountSigned
	DebitCol   string // amountSplit
	CreditCol  string // amountSplit

	// Optional columns.
	NarrationCol string
	BillCol      string
	BillTypeCol  string
	DueDateCol   string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.TypeCol, p.RefCol, p.LedgerCol}

	switch p.AmountMode {
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	case amountSigned:
		cols = append(cols, p.AmountCol)
	}

	return cols
}

// profiles is tried in order; a header matches the first profile whose
// required columns it carries.
var profiles = []Profile{
	{
		Name:         "daybook",
		DateCol:      "Date",
		TypeCol:      "Voucher Type",
		RefCol:       "Reference",
		LedgerCol:    "Ledger",
		AmountMode:   amountSplit,
		DebitCol:     "Debit",
		CreditCol:    "Credit",
		NarrationCol: "Narration",
		BillCol:      "Bill",
		BillTypeCol:  "Bill Type",
		DueDateCol:   "Due Date",
	},
	{
		Name:         "signed",
		DateCol:      "Date",
		TypeCol:      "Voucher Type",
		RefCol:       "Reference",
		LedgerCol:    "Ledger",
		AmountMode:   amountSigned,
		AmountCol:    "Amount",
		NarrationCol: "Narration",
		BillCol:      "Bill",
		BillTypeCol:  "Bill Type",
		DueDateCol:   "Due Date",
	},
	{
		Name:         "diário",
		DateCol:      "Data",
		TypeCol:      "Tipo",
		RefCol:       "Referência",
		LedgerCol:    "Conta",
		AmountMode:   amountSplit,
		DebitCol:     "Débito",
		CreditCol:    "Crédito",
		NarrationCol: "Descrição",
		BillCol:      "Documento",
		BillTypeCol:  "Tipo Documento",
		DueDateCol:   "Vencimento",
	},
}
