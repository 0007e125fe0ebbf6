package voucher

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
)

// Voucher is one recorded transaction. It is never updated or deleted; a
// mistake is undone by a reversal voucher pointing back at it.
type Voucher struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	VoucherTypeID uuid.UUID
	SeriesID      *uuid.UUID
	VoucherNumber string
	Date          time.Time
	Reference     string
	Narration     string
	TotalAmount   decimal.Decimal
	CreatedBy     *uuid.UUID
	ReversalOf    *uuid.UUID
	Entries       []*Entry
	CreatedAt     time.Time
}

// Totals returns the debit and credit totals of the entries.
func (v *Voucher) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero

	for _, e := range v.Entries {
		switch e.Type {
		case ledger.Debit:
			debit = debit.Add(e.Amount)
		case ledger.Credit:
			credit = credit.Add(e.Amount)
		}
	}

	return debit, credit
}

// Entry is one ledger posting. The ledger is referenced by name, not by id,
// so postings may name ledgers that are not in the chart of accounts yet.
type Entry struct {
	ID             uuid.UUID
	VoucherID      uuid.UUID
	LineNo         int
	LedgerName     string
	LedgerCode     string
	Type           ledger.Side
	Amount         decimal.Decimal
	Narration      string
	CostCenter     string
	CostCategory   string
	BillReferences []*BillReference
}

type BillReference struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	Reference string
	Amount    decimal.Decimal
	Type      bill.RefType
	DueDate   *time.Time
	Remarks   string
}

type EntryInput struct {
	LedgerName     string
	LedgerCode     string
	Type           ledger.Side
	Amount         decimal.Decimal
	Narration      string
	CostCenter     string
	CostCategory   string
	BillReferences []BillReferenceInput
}

type BillReferenceInput struct {
	Reference string
	Amount    decimal.Decimal
	Type      bill.RefType
	// DueDate is YYYY-MM-DD; empty means the voucher date.
	DueDate string
	Remarks string
}

type CreateInput struct {
	VoucherTypeID     uuid.UUID
	NumberingSeriesID *uuid.UUID
	// VoucherNumber is required for manually numbered types and accepted
	// for automatic ones that allow a manual override.
	VoucherNumber string
	// Date is YYYY-MM-DD or RFC 3339; empty means today.
	Date      string
	Reference string
	Narration string
	Entries   []EntryInput
	CreatedBy *uuid.UUID
}

type ReverseInput struct {
	Date          string
	Narration     string
	VoucherNumber string
	CreatedBy     *uuid.UUID
}

type ListFilter struct {
	VoucherTypeID *uuid.UUID
	FromDate      *time.Time
	ToDate        *time.Time
	Limit         int
}
