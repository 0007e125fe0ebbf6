package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

func errDuplicate(what, name string) error {
	return apperr.Conflict("creating "+what, fmt.Errorf("%s %q already exists", what, name))
}

// tx serves both bill.Tx and voucher.Tx. It owns the store lock until it ends.
type tx struct {
	s    *Store
	undo []func()
	done bool
}

func (s *Store) begin() *tx {
	s.mu.Lock()
	return &tx{s: s}
}

func (t *tx) Commit() error {
	if t.done {
		return nil
	}

	t.done = true
	t.undo = nil
	t.s.mu.Unlock()

	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return nil
	}

	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}

	t.done = true
	t.undo = nil
	t.s.mu.Unlock()

	return nil
}

// ---- numbering.Counter

func (t *tx) IncrementTypeCounter(_ context.Context, tenantID, voucherTypeID uuid.UUID) (numbering.Reservation, error) {
	vt, ok := t.s.types[voucherTypeID]
	if !ok || vt.TenantID != tenantID {
		return numbering.Reservation{}, numbering.ErrNotFound
	}

	r := numbering.Reservation{Prefix: vt.Prefix, Suffix: vt.Suffix, Value: vt.NextNumber}
	vt.NextNumber++
	t.undo = append(t.undo, func() { vt.NextNumber-- })

	return r, nil
}

func (t *tx) IncrementSeriesCounter(_ context.Context, tenantID, voucherTypeID, seriesID uuid.UUID) (numbering.Reservation, error) {
	series, ok := t.s.series[seriesID]
	if !ok || series.TenantID != tenantID || series.VoucherTypeID != voucherTypeID {
		return numbering.Reservation{}, numbering.ErrNotFound
	}

	r := numbering.Reservation{Prefix: series.Prefix, Suffix: series.Suffix, Value: series.NextNumber}
	series.NextNumber++
	t.undo = append(t.undo, func() { series.NextNumber-- })

	return r, nil
}

func (t *tx) GetVoucherType(_ context.Context, tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	return t.s.getVoucherType(tenantID, id)
}

func (t *tx) GetSeries(_ context.Context, tenantID, voucherTypeID, id uuid.UUID) (*numbering.Series, error) {
	return t.s.getSeries(tenantID, voucherTypeID, id)
}

// ---- bill.Store

func (t *tx) InsertBill(_ context.Context, b *bill.Bill) error {
	b.ID = uuid.New()
	b.CreatedAt = t.s.now()

	stored := *b
	t.s.bills[b.ID] = &stored
	t.undo = append(t.undo, func() { delete(t.s.bills, stored.ID) })

	return nil
}

func (t *tx) LockOpenBill(_ context.Context, tenantID uuid.UUID, ledgerName, number string) (*bill.Bill, error) {
	var found *bill.Bill

	for _, b := range t.s.bills {
		if b.TenantID != tenantID || !b.Status.Outstanding() {
			continue
		}

		if b.Number != strings.TrimSpace(number) || !strings.EqualFold(b.LedgerName, ledgerName) {
			continue
		}

		if found == nil || b.CreatedAt.Before(found.CreatedAt) {
			found = b
		}
	}

	if found == nil {
		return nil, bill.ErrNotFound
	}

	out := *found

	return &out, nil
}

func (t *tx) LockBill(_ context.Context, tenantID, id uuid.UUID) (*bill.Bill, error) {
	return t.s.getBill(tenantID, id)
}

func (t *tx) UpdateBillBalance(_ context.Context, b *bill.Bill) error {
	stored, ok := t.s.bills[b.ID]
	if !ok || stored.TenantID != b.TenantID {
		return bill.ErrNotFound
	}

	prev := *stored
	t.undo = append(t.undo, func() { *stored = prev })

	now := t.s.now()
	stored.OutstandingAmount = b.OutstandingAmount
	stored.Status = b.Status
	stored.UpdatedAt = &now
	b.UpdatedAt = &now

	return nil
}

func (t *tx) InsertSettlement(_ context.Context, st *bill.Settlement) error {
	for _, existing := range t.s.settlements {
		if existing.BillID == st.BillID && existing.EntryID == st.EntryID {
			return errDuplicate("settlement", st.EntryID.String())
		}
	}

	st.ID = uuid.New()
	st.SettledAt = t.s.now()

	stored := *st
	t.s.settlements = append(t.s.settlements, &stored)
	t.undo = append(t.undo, func() { t.s.removeSettlement(stored.ID) })

	return nil
}

func (t *tx) DeleteSettlement(_ context.Context, id uuid.UUID) error {
	removed := t.s.removeSettlement(id)
	if removed == nil {
		return nil
	}

	t.undo = append(t.undo, func() { t.s.settlements = append(t.s.settlements, removed) })

	return nil
}

func (t *tx) VoucherSettlements(_ context.Context, tenantID, voucherID uuid.UUID) ([]*bill.Settlement, error) {
	var list []*bill.Settlement

	for _, st := range t.s.settlements {
		if st.VoucherID != voucherID {
			continue
		}

		if b, ok := t.s.bills[st.BillID]; !ok || b.TenantID != tenantID {
			continue
		}

		out := *st
		list = append(list, &out)
	}

	return list, nil
}

func (t *tx) LockVoucherBills(_ context.Context, tenantID, voucherID uuid.UUID) ([]*bill.Bill, error) {
	var list []*bill.Bill

	for _, b := range t.s.bills {
		if b.TenantID == tenantID && b.VoucherID != nil && *b.VoucherID == voucherID {
			out := *b
			list = append(list, &out)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })

	return list, nil
}

func (t *tx) SettlementExists(_ context.Context, billID, entryID uuid.UUID) (bool, error) {
	for _, st := range t.s.settlements {
		if st.BillID == billID && st.EntryID == entryID {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) AgainstReferenceBalance(_ context.Context, tenantID, voucherID, entryID uuid.UUID, ledgerName, number string) (decimal.Decimal, bool, error) {
	v, ok := t.s.vouchers[voucherID]
	if !ok || v.TenantID != tenantID {
		return decimal.Zero, false, nil
	}

	var (
		available = decimal.Zero
		found     bool
	)

	for _, e := range v.Entries {
		if e.ID != entryID || !strings.EqualFold(e.LedgerName, ledgerName) {
			continue
		}

		for _, ref := range e.BillReferences {
			if ref.Type == bill.RefAgainst && ref.Reference == number {
				available = available.Add(ref.Amount)
				found = true
			}
		}
	}

	if !found {
		return decimal.Zero, false, nil
	}

	for _, st := range t.s.settlements {
		if st.EntryID != entryID {
			continue
		}

		if b, ok := t.s.bills[st.BillID]; ok && b.TenantID == tenantID && b.Number == number && strings.EqualFold(b.LedgerName, ledgerName) {
			available = available.Sub(st.Amount)
		}
	}

	return available, true, nil
}

// ---- voucher.Tx

func (t *tx) VoucherNumberExists(_ context.Context, tenantID, voucherTypeID uuid.UUID, number string) (bool, error) {
	for _, v := range t.s.vouchers {
		if v.TenantID == tenantID && v.VoucherTypeID == voucherTypeID && v.VoucherNumber == number {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) LockVoucher(_ context.Context, tenantID, id uuid.UUID) (*voucher.Voucher, error) {
	return t.s.getVoucher(tenantID, id)
}

func (t *tx) ReversalExists(_ context.Context, tenantID, voucherID uuid.UUID) (bool, error) {
	for _, v := range t.s.vouchers {
		if v.TenantID == tenantID && v.ReversalOf != nil && *v.ReversalOf == voucherID {
			return true, nil
		}
	}

	return false, nil
}

func (t *tx) InsertVoucher(_ context.Context, v *voucher.Voucher) error {
	if v.ReversalOf != nil {
		for _, existing := range t.s.vouchers {
			if existing.ReversalOf != nil && *existing.ReversalOf == *v.ReversalOf {
				return errDuplicate("reversal", v.ReversalOf.String())
			}
		}
	}

	v.ID = uuid.New()
	v.CreatedAt = t.s.now()

	for _, e := range v.Entries {
		e.ID = uuid.New()
		e.VoucherID = v.ID

		for _, ref := range e.BillReferences {
			ref.ID = uuid.New()
			ref.EntryID = e.ID
		}
	}

	t.s.vouchers[v.ID] = cloneVoucher(v)
	id := v.ID
	t.undo = append(t.undo, func() { delete(t.s.vouchers, id) })

	return nil
}

// ---- repositories with their own transactions

type Bills struct {
	s *Store
}

func (b *Bills) Begin(context.Context) (bill.Tx, error) {
	return b.s.begin(), nil
}

func (s *Store) getBill(tenantID, id uuid.UUID) (*bill.Bill, error) {
	b, ok := s.bills[id]
	if !ok || b.TenantID != tenantID {
		return nil, bill.ErrNotFound
	}

	out := *b

	return &out, nil
}

func (b *Bills) GetBill(_ context.Context, tenantID, id uuid.UUID) (*bill.Bill, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	return b.s.getBill(tenantID, id)
}

func (b *Bills) ListBills(_ context.Context, tenantID uuid.UUID, filter bill.ListFilter) ([]*bill.Bill, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	var list []*bill.Bill

	for _, stored := range b.s.bills {
		if stored.TenantID != tenantID {
			continue
		}

		if filter.Type != "" && stored.Type != filter.Type {
			continue
		}

		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, stored.Status) {
			continue
		}

		if filter.LedgerName != "" && !strings.EqualFold(stored.LedgerName, filter.LedgerName) {
			continue
		}

		out := *stored
		list = append(list, &out)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].DueDate.Equal(list[j].DueDate) {
			return list[i].DueDate.Before(list[j].DueDate)
		}

		return list[i].Number < list[j].Number
	})

	return list, nil
}

func containsStatus(statuses []bill.Status, st bill.Status) bool {
	for _, s := range statuses {
		if s == st {
			return true
		}
	}

	return false
}

func (b *Bills) ListSettlements(_ context.Context, tenantID, billID uuid.UUID) ([]*bill.Settlement, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	if stored, ok := b.s.bills[billID]; !ok || stored.TenantID != tenantID {
		return nil, nil
	}

	var list []*bill.Settlement

	for _, st := range b.s.settlements {
		if st.BillID == billID {
			out := *st
			list = append(list, &out)
		}
	}

	return list, nil
}

type Vouchers struct {
	s *Store
}

func (v *Vouchers) Begin(context.Context) (voucher.Tx, error) {
	return v.s.begin(), nil
}

func (s *Store) getVoucher(tenantID, id uuid.UUID) (*voucher.Voucher, error) {
	v, ok := s.vouchers[id]
	if !ok || v.TenantID != tenantID {
		return nil, voucher.ErrNotFound
	}

	return cloneVoucher(v), nil
}

func (v *Vouchers) GetVoucher(_ context.Context, tenantID, id uuid.UUID) (*voucher.Voucher, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	return v.s.getVoucher(tenantID, id)
}

func (v *Vouchers) ListVouchers(_ context.Context, tenantID uuid.UUID, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	var list []*voucher.Voucher

	for _, stored := range v.s.vouchers {
		if stored.TenantID != tenantID {
			continue
		}

		if filter.VoucherTypeID != nil && stored.VoucherTypeID != *filter.VoucherTypeID {
			continue
		}

		if filter.FromDate != nil && stored.Date.Before(*filter.FromDate) {
			continue
		}

		if filter.ToDate != nil && stored.Date.After(*filter.ToDate) {
			continue
		}

		list = append(list, cloneVoucher(stored))
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}

		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}

	return list, nil
}

func cloneVoucher(v *voucher.Voucher) *voucher.Voucher {
	out := *v
	out.Entries = make([]*voucher.Entry, 0, len(v.Entries))

	for _, e := range v.Entries {
		ec := *e
		ec.BillReferences = make([]*voucher.BillReference, 0, len(e.BillReferences))

		for _, ref := range e.BillReferences {
			rc := *ref
			ec.BillReferences = append(ec.BillReferences, &rc)
		}

		out.Entries = append(out.Entries, &ec)
	}

	return &out
}
