package voucher

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

// MinEntries is the smallest number of postings a voucher can have.
const MinEntries = 2

// Validate checks the structure of a proposed voucher and returns its total.
// Entry amounts are rounded to two places before they are added up, and the
// debit and credit totals must then be exactly equal.
func Validate(entries []EntryInput) (decimal.Decimal, error) {
	if len(entries) < MinEntries {
		return decimal.Zero, apperr.Validation("entries", "a voucher needs at least %d entries, got %d", MinEntries, len(entries))
	}

	debit, credit := decimal.Zero, decimal.Zero

	for i, e := range entries {
		field := fmt.Sprintf("entries[%d]", i)

		if strings.TrimSpace(e.LedgerName) == "" {
			return decimal.Zero, apperr.Validation(field+".ledgerName", "ledger name is required")
		}

		if !money.IsPositive(e.Amount) {
			return decimal.Zero, apperr.Validation(field+".amount", "amount must be positive")
		}

		amount := money.Round(e.Amount)

		switch e.Type {
		case ledger.Debit:
			debit = debit.Add(amount)
		case ledger.Credit:
			credit = credit.Add(amount)
		default:
			return decimal.Zero, apperr.Validation(field+".type", "entry type must be DEBIT or CREDIT, got %q", e.Type)
		}

		if err := validateBillReferences(field, e); err != nil {
			return decimal.Zero, err
		}
	}

	if !debit.Equal(credit) {
		return decimal.Zero, apperr.Validation("entries", "debit total %s does not equal credit total %s",
			debit.StringFixed(money.Places), credit.StringFixed(money.Places))
	}

	return debit, nil
}

func validateBillReferences(field string, e EntryInput) error {
	allocated := decimal.Zero

	for j, ref := range e.BillReferences {
		refField := fmt.Sprintf("%s.billReferences[%d]", field, j)

		if strings.TrimSpace(ref.Reference) == "" {
			return apperr.Validation(refField+".reference", "bill reference is required")
		}

		if !money.IsPositive(ref.Amount) {
			return apperr.Validation(refField+".amount", "amount must be positive")
		}

		if !ref.Type.Valid() {
			return apperr.Validation(refField+".type", "unknown reference type %q", ref.Type)
		}

		if ref.DueDate != "" {
			if _, err := calendar.Parse(ref.DueDate); err != nil {
				return apperr.Validation(refField+".dueDate", "%s", err)
			}
		}

		allocated = allocated.Add(money.Round(ref.Amount))
	}

	if allocated.GreaterThan(money.Round(e.Amount)) {
		return apperr.Validation(field+".billReferences", "bill references total %s exceeds the entry amount %s",
			allocated.StringFixed(money.Places), money.Round(e.Amount).StringFixed(money.Places))
	}

	return nil
}
