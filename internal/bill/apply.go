package bill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

// ErrNotFound is returned by stores when no bill matches.
var ErrNotFound = errors.New("bill not found")

// Store is the set of bill writes that run inside an enclosing transaction.
type Store interface {
	InsertBill(ctx context.Context, b *Bill) error
	// LockOpenBill returns the OPEN or PARTIAL bill with the given number on
	// the ledger (matched case-insensitively), locked for update.
	LockOpenBill(ctx context.Context, tenantID uuid.UUID, ledgerName, number string) (*Bill, error)
	LockBill(ctx context.Context, tenantID, id uuid.UUID) (*Bill, error)
	// UpdateBillBalance persists the outstanding amount and status.
	UpdateBillBalance(ctx context.Context, b *Bill) error

	InsertSettlement(ctx context.Context, s *Settlement) error
	SettlementExists(ctx context.Context, billID, entryID uuid.UUID) (bool, error)
	// AgainstReferenceBalance returns how much the AGAINST references of the
	// entry to the bill number on the ledger still cover: their sum less what
	// the entry has already settled on bills with that number. ok is false
	// when the entry carries no such reference.
	AgainstReferenceBalance(ctx context.Context, tenantID, voucherID, entryID uuid.UUID, ledgerName, number string) (available decimal.Decimal, ok bool, err error)

	// VoucherSettlements returns the settlements recorded by the voucher's entries.
	VoucherSettlements(ctx context.Context, tenantID, voucherID uuid.UUID) ([]*Settlement, error)
	DeleteSettlement(ctx context.Context, id uuid.UUID) error
	// LockVoucherBills returns the bills the voucher opened, locked for update.
	LockVoucherBills(ctx context.Context, tenantID, voucherID uuid.UUID) ([]*Bill, error)
}

// Posting is one bill reference of a voucher entry being recorded.
type Posting struct {
	TenantID   uuid.UUID
	VoucherID  uuid.UUID
	EntryID    uuid.UUID
	LedgerName string
	Side       ledger.Side
	Date       time.Time
	Reference  string
	Amount     decimal.Decimal
	RefType    RefType
	DueDate    *time.Time
	Remarks    string
}

// Applied describes what a set of postings did to the bill book.
type Applied struct {
	Created     []*Bill
	Settlements []*Settlement
	// Unmatched counts AGAINST references with no open bill to settle.
	Unmatched int
}

// Apply records the effect of voucher bill references on the bill book:
// NEW opens a bill, AGAINST settles the matching open bill. Other reference
// types are kept on the entry only.
func Apply(ctx context.Context, store Store, postings []Posting) (*Applied, error) {
	applied := &Applied{}

	for _, p := range postings {
		switch p.RefType {
		case RefNew:
			b, err := open(ctx, store, p)
			if err != nil {
				return nil, err
			}

			applied.Created = append(applied.Created, b)

		case RefAgainst:
			s, err := against(ctx, store, p)
			if err != nil {
				return nil, err
			}

			if s == nil {
				applied.Unmatched++
				continue
			}

			applied.Settlements = append(applied.Settlements, s)

		case RefAdvance, RefOnAccount:
			// Recorded with the entry.

		default:
			return nil, apperr.Validation("billReferences", "unknown reference type %q", p.RefType)
		}
	}

	return applied, nil
}

func open(ctx context.Context, store Store, p Posting) (*Bill, error) {
	billType, err := TypeForSide(p.Side)
	if err != nil {
		return nil, apperr.Validation("billReferences", "%s", err)
	}

	if _, err := store.LockOpenBill(ctx, p.TenantID, p.LedgerName, p.Reference); err == nil {
		return nil, apperr.Validation("billReferences", "bill %q is already open for ledger %q", p.Reference, p.LedgerName)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking bill %q: %w", p.Reference, err)
	}

	due := p.Date
	if p.DueDate != nil {
		due = *p.DueDate
	}

	voucherID, entryID := p.VoucherID, p.EntryID

	b := &Bill{
		TenantID:          p.TenantID,
		Number:            strings.TrimSpace(p.Reference),
		LedgerName:        p.LedgerName,
		Type:              billType,
		BillDate:          p.Date,
		DueDate:           due,
		OriginalAmount:    money.Round(p.Amount),
		OutstandingAmount: money.Round(p.Amount),
		Status:            StatusOpen,
		VoucherID:         &voucherID,
		EntryID:           &entryID,
		Remarks:           p.Remarks,
	}
	if err := store.InsertBill(ctx, b); err != nil {
		return nil, fmt.Errorf("creating bill %q: %w", b.Number, err)
	}

	return b, nil
}

// against settles the open bill the posting refers to. A reference to a bill
// that is not open returns a nil settlement.
func against(ctx context.Context, store Store, p Posting) (*Settlement, error) {
	b, err := store.LockOpenBill(ctx, p.TenantID, p.LedgerName, p.Reference)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("locking bill %q: %w", p.Reference, err)
	}

	side, err := b.Type.SettlingSide()
	if err != nil {
		return nil, err
	}

	if p.Side != side {
		return nil, apperr.Validation("billReferences", "a %s posting cannot settle %s bill %q", p.Side, b.Type, b.Number)
	}

	return record(ctx, store, b, p.VoucherID, p.EntryID, p.Amount)
}

// record settles b by amount and stores the settlement row.
func record(ctx context.Context, store Store, b *Bill, voucherID, entryID uuid.UUID, amount decimal.Decimal) (*Settlement, error) {
	if err := settle(b, amount); err != nil {
		return nil, err
	}

	if err := store.UpdateBillBalance(ctx, b); err != nil {
		return nil, fmt.Errorf("updating bill %q: %w", b.Number, err)
	}

	s := &Settlement{
		BillID:    b.ID,
		VoucherID: voucherID,
		EntryID:   entryID,
		Amount:    money.Round(amount),
	}
	if err := store.InsertSettlement(ctx, s); err != nil {
		return nil, fmt.Errorf("recording settlement of bill %q: %w", b.Number, err)
	}

	return s, nil
}

// Unwound describes what taking a voucher off the bill book changed.
type Unwound struct {
	Restored  []*Bill
	Cancelled []*Bill
}

func (u *Unwound) Empty() bool {
	return len(u.Restored) == 0 && len(u.Cancelled) == 0
}

// Unwind takes a voucher's effect off the bill book: its settlements are
// deleted and their amounts given back to the bills, then the bills it
// opened are cancelled. A bill it opened that other postings have settled
// against cannot be cancelled and fails the unwind.
func Unwind(ctx context.Context, store Store, tenantID, voucherID uuid.UUID) (*Unwound, error) {
	unwound := &Unwound{}

	settlements, err := store.VoucherSettlements(ctx, tenantID, voucherID)
	if err != nil {
		return nil, fmt.Errorf("listing voucher settlements: %w", err)
	}

	for _, st := range settlements {
		b, err := store.LockBill(ctx, tenantID, st.BillID)
		if err != nil {
			return nil, fmt.Errorf("locking settled bill: %w", err)
		}

		if err := unsettle(b, st.Amount); err != nil {
			return nil, err
		}

		if err := store.UpdateBillBalance(ctx, b); err != nil {
			return nil, fmt.Errorf("restoring bill %q: %w", b.Number, err)
		}

		if err := store.DeleteSettlement(ctx, st.ID); err != nil {
			return nil, fmt.Errorf("removing settlement of bill %q: %w", b.Number, err)
		}

		unwound.Restored = append(unwound.Restored, b)
	}

	opened, err := store.LockVoucherBills(ctx, tenantID, voucherID)
	if err != nil {
		return nil, fmt.Errorf("locking voucher bills: %w", err)
	}

	for _, b := range opened {
		if b.Status == StatusCancelled {
			continue
		}

		if settled := b.Settled(); !money.IsZero(settled) {
			return nil, apperr.Validation("id", "bill %s has %s settled against it by other vouchers; reverse those first",
				b.Number, settled.StringFixed(money.Places))
		}

		b.Status = StatusCancelled
		if err := store.UpdateBillBalance(ctx, b); err != nil {
			return nil, fmt.Errorf("cancelling bill %q: %w", b.Number, err)
		}

		unwound.Cancelled = append(unwound.Cancelled, b)
	}

	return unwound, nil
}
