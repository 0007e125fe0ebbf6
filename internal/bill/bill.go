package bill

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

// RefType says how a voucher entry relates to a bill.
type RefType string

const (
	// RefNew opens a new bill for the posted amount.
	RefNew RefType = "NEW"
	// RefAgainst settles an existing bill.
	RefAgainst RefType = "AGAINST"
	RefAdvance RefType = "ADVANCE"
	// RefOnAccount is a payment not allocated to any bill.
	RefOnAccount RefType = "ON_ACCOUNT"
)

func (r RefType) Valid() bool {
	switch r {
	case RefNew, RefAgainst, RefAdvance, RefOnAccount:
		return true
	}

	return false
}

type Type string

const (
	TypeReceivable Type = "RECEIVABLE"
	TypePayable    Type = "PAYABLE"
)

func (t Type) Valid() bool {
	return t == TypeReceivable || t == TypePayable
}

// TypeForSide derives the bill type opened by a posting: a debit to a party
// is money owed to us, a credit is money we owe.
func TypeForSide(side ledger.Side) (Type, error) {
	switch side {
	case ledger.Debit:
		return TypeReceivable, nil
	case ledger.Credit:
		return TypePayable, nil
	}

	return "", fmt.Errorf("unknown side %q", side)
}

// SettlingSide is the posting side that reduces a bill of this type.
func (t Type) SettlingSide() (ledger.Side, error) {
	switch t {
	case TypeReceivable:
		return ledger.Credit, nil
	case TypePayable:
		return ledger.Debit, nil
	}

	return "", fmt.Errorf("unknown bill type %q", t)
}

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusPartial   Status = "PARTIAL"
	StatusSettled   Status = "SETTLED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusPartial, StatusSettled, StatusCancelled:
		return true
	}

	return false
}

// Outstanding reports whether a bill in this status still expects money.
func (s Status) Outstanding() bool {
	return s == StatusOpen || s == StatusPartial
}

// Bill is a receivable or payable with its own outstanding balance.
type Bill struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	Number            string
	LedgerName        string
	Type              Type
	BillDate          time.Time
	DueDate           time.Time
	OriginalAmount    decimal.Decimal
	OutstandingAmount decimal.Decimal
	Status            Status
	VoucherID         *uuid.UUID
	EntryID           *uuid.UUID
	Remarks           string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Settled returns the amount already settled against the bill.
func (b *Bill) Settled() decimal.Decimal {
	return money.Round(b.OriginalAmount.Sub(b.OutstandingAmount))
}

// Settlement links a settling voucher entry to the bill it reduced.
type Settlement struct {
	ID        uuid.UUID
	BillID    uuid.UUID
	VoucherID uuid.UUID
	EntryID   uuid.UUID
	Amount    decimal.Decimal
	SettledAt time.Time
}

// settle reduces the outstanding amount of b and moves its status along.
// Amounts are compared after rounding to two places.
func settle(b *Bill, amount decimal.Decimal) error {
	if !money.IsPositive(amount) {
		return apperr.Validation("amount", "settlement amount must be positive")
	}

	if !b.Status.Outstanding() {
		return apperr.Validation("status", "bill %s is %s", b.Number, b.Status)
	}

	remaining := money.Round(b.OutstandingAmount.Sub(amount))
	if remaining.IsNegative() {
		return apperr.Validation("amount", "settlement of %s exceeds outstanding %s on bill %s",
			money.Round(amount).StringFixed(money.Places), money.Round(b.OutstandingAmount).StringFixed(money.Places), b.Number)
	}

	b.OutstandingAmount = remaining
	if remaining.IsZero() {
		b.Status = StatusSettled
	} else {
		b.Status = StatusPartial
	}

	return nil
}

// unsettle gives amount back to the outstanding balance of b.
func unsettle(b *Bill, amount decimal.Decimal) error {
	restored := money.Round(b.OutstandingAmount.Add(amount))
	if restored.GreaterThan(money.Round(b.OriginalAmount)) {
		return fmt.Errorf("restoring %s to bill %s would exceed its original amount %s",
			money.Round(amount).StringFixed(money.Places), b.Number, money.Round(b.OriginalAmount).StringFixed(money.Places))
	}

	b.OutstandingAmount = restored
	if money.Equal(restored, b.OriginalAmount) {
		b.Status = StatusOpen
	} else {
		b.Status = StatusPartial
	}

	return nil
}
