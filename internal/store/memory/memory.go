// Package memory is an in-process implementation of every repository of the
// engine. A transaction holds the store lock from Begin until Commit or
// Rollback, so transactions run one at a time; rollback replays an undo log.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/period"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type alias struct {
	pattern    string
	ledgerName string
	createdAt  time.Time
}

type Store struct {
	mu sync.Mutex

	groups      map[uuid.UUID]*ledger.Group
	ledgers     map[uuid.UUID]*ledger.Ledger
	types       map[uuid.UUID]*numbering.VoucherType
	series      map[uuid.UUID]*numbering.Series
	vouchers    map[uuid.UUID]*voucher.Voucher
	bills       map[uuid.UUID]*bill.Bill
	settlements []*bill.Settlement
	aliases     map[uuid.UUID][]alias

	now func() time.Time
}

func New() *Store {
	return &Store{
		groups:   make(map[uuid.UUID]*ledger.Group),
		ledgers:  make(map[uuid.UUID]*ledger.Ledger),
		types:    make(map[uuid.UUID]*numbering.VoucherType),
		series:   make(map[uuid.UUID]*numbering.Series),
		vouchers: make(map[uuid.UUID]*voucher.Voucher),
		bills:    make(map[uuid.UUID]*bill.Bill),
		aliases:  make(map[uuid.UUID][]alias),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Bills returns the store as a bill.Repository.
func (s *Store) Bills() *Bills {
	return &Bills{s: s}
}

// Vouchers returns the store as a voucher.Repository.
func (s *Store) Vouchers() *Vouchers {
	return &Vouchers{s: s}
}

// ---- ledger.Repository

func (s *Store) CreateGroup(_ context.Context, g *ledger.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = uuid.New()
	g.CreatedAt = s.now()

	stored := *g
	s.groups[g.ID] = &stored

	return nil
}

func (s *Store) GetGroup(_ context.Context, tenantID, id uuid.UUID) (*ledger.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok || g.TenantID != tenantID {
		return nil, ledger.ErrNotFound
	}

	out := *g

	return &out, nil
}

func (s *Store) CreateLedger(_ context.Context, l *ledger.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledgerByName(l.TenantID, l.Name) != nil {
		return errDuplicate("ledger", l.Name)
	}

	l.ID = uuid.New()
	l.CreatedAt = s.now()

	stored := *l
	s.ledgers[l.ID] = &stored

	return nil
}

func (s *Store) ledgerByName(tenantID uuid.UUID, name string) *ledger.Ledger {
	for _, l := range s.ledgers {
		if l.TenantID == tenantID && strings.EqualFold(l.Name, name) {
			return l
		}
	}

	return nil
}

func (s *Store) GetLedgerByName(_ context.Context, tenantID uuid.UUID, name string) (*ledger.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.ledgerByName(tenantID, name)
	if l == nil {
		return nil, ledger.ErrNotFound
	}

	out := *l

	return &out, nil
}

func (s *Store) ListLedgers(_ context.Context, tenantID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []*ledger.Ledger

	for _, l := range s.ledgers {
		if l.TenantID != tenantID {
			continue
		}

		if len(filter.Categories) > 0 && !slices.Contains(filter.Categories, l.Category) {
			continue
		}

		out := *l
		list = append(list, &out)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return list, nil
}

func (s *Store) SetOpeningBalances(_ context.Context, tenantID uuid.UUID, balances []ledger.OpeningBalance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range balances {
		l, ok := s.ledgers[b.LedgerID]
		if !ok || l.TenantID != tenantID {
			return ledger.ErrNotFound
		}
	}

	now := s.now()

	for _, b := range balances {
		l := s.ledgers[b.LedgerID]
		l.OpeningBalance = b.Amount
		l.OpeningBalanceType = b.Type
		openingDate := b.OpeningDate
		l.OpeningDate = &openingDate
		l.UpdatedAt = &now
	}

	return nil
}

// ---- numbering.Repository

func (s *Store) CreateVoucherType(_ context.Context, vt *numbering.VoucherType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.types {
		if existing.TenantID == vt.TenantID && strings.EqualFold(existing.Name, vt.Name) {
			return errDuplicate("voucher type", vt.Name)
		}
	}

	vt.ID = uuid.New()
	vt.CreatedAt = s.now()

	stored := *vt
	s.types[vt.ID] = &stored

	return nil
}

func (s *Store) getVoucherType(tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	vt, ok := s.types[id]
	if !ok || vt.TenantID != tenantID {
		return nil, numbering.ErrNotFound
	}

	out := *vt

	return &out, nil
}

func (s *Store) GetVoucherType(_ context.Context, tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getVoucherType(tenantID, id)
}

func (s *Store) GetVoucherTypeByName(_ context.Context, tenantID uuid.UUID, name string) (*numbering.VoucherType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vt := range s.types {
		if vt.TenantID == tenantID && strings.EqualFold(vt.Name, name) {
			out := *vt
			return &out, nil
		}
	}

	return nil, numbering.ErrNotFound
}

func (s *Store) ListVoucherTypes(_ context.Context, tenantID uuid.UUID) ([]*numbering.VoucherType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []*numbering.VoucherType

	for _, vt := range s.types {
		if vt.TenantID == tenantID {
			out := *vt
			list = append(list, &out)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return list, nil
}

func (s *Store) UpdateVoucherType(_ context.Context, vt *numbering.VoucherType, nextNumber *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.types[vt.ID]
	if !ok || existing.TenantID != vt.TenantID {
		return numbering.ErrNotFound
	}

	vt.NextNumber = existing.NextNumber

	if nextNumber != nil && (vt.AllowDuplicates || *nextNumber > vt.NextNumber) {
		vt.NextNumber = *nextNumber
	}

	now := s.now()
	vt.UpdatedAt = &now

	stored := *vt
	s.types[vt.ID] = &stored

	return nil
}

func (s *Store) CreateSeries(_ context.Context, series *numbering.Series) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.series {
		if existing.VoucherTypeID != series.VoucherTypeID {
			continue
		}

		if strings.EqualFold(existing.Name, series.Name) {
			return errDuplicate("numbering series", series.Name)
		}
	}

	if series.IsDefault {
		for _, existing := range s.series {
			if existing.VoucherTypeID == series.VoucherTypeID {
				existing.IsDefault = false
			}
		}
	}

	series.ID = uuid.New()
	series.CreatedAt = s.now()

	stored := *series
	s.series[series.ID] = &stored

	return nil
}

func (s *Store) getSeries(tenantID, voucherTypeID, id uuid.UUID) (*numbering.Series, error) {
	series, ok := s.series[id]
	if !ok || series.TenantID != tenantID || series.VoucherTypeID != voucherTypeID {
		return nil, numbering.ErrNotFound
	}

	out := *series

	return &out, nil
}

func (s *Store) GetSeries(_ context.Context, tenantID, voucherTypeID, id uuid.UUID) (*numbering.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getSeries(tenantID, voucherTypeID, id)
}

func (s *Store) ListSeries(_ context.Context, tenantID, voucherTypeID uuid.UUID) ([]*numbering.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []*numbering.Series

	for _, series := range s.series {
		if series.TenantID == tenantID && series.VoucherTypeID == voucherTypeID {
			out := *series
			list = append(list, &out)
		}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	return list, nil
}

// ---- period.Repository

func (s *Store) PostingTotals(_ context.Context, tenantID uuid.UUID, asOf time.Time) (map[string]period.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := make(map[string]period.Totals)

	for _, v := range s.vouchers {
		if v.TenantID != tenantID || v.Date.After(asOf) {
			continue
		}

		for _, e := range v.Entries {
			if l := s.ledgerByName(tenantID, e.LedgerName); l != nil && l.OpeningDate != nil && v.Date.Before(*l.OpeningDate) {
				continue
			}

			key := strings.ToLower(e.LedgerName)

			t, ok := totals[key]
			if !ok {
				t = period.Totals{Debit: decimal.Zero, Credit: decimal.Zero}
			}

			switch e.Type {
			case ledger.Debit:
				t.Debit = t.Debit.Add(e.Amount)
			case ledger.Credit:
				t.Credit = t.Credit.Add(e.Amount)
			}

			totals[key] = t
		}
	}

	return totals, nil
}

// ---- matching.Repository

func (s *Store) FindMatch(_ context.Context, tenantID uuid.UUID, raw string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(raw)

	var best *alias

	for i, a := range s.aliases[tenantID] {
		if !strings.Contains(lower, strings.ToLower(a.pattern)) {
			continue
		}

		if best == nil || len(a.pattern) > len(best.pattern) ||
			(len(a.pattern) == len(best.pattern) && !a.createdAt.Before(best.createdAt)) {
			best = &s.aliases[tenantID][i]
		}
	}

	if best == nil {
		return "", nil
	}

	return best.ledgerName, nil
}

func (s *Store) CreateMapping(_ context.Context, tenantID uuid.UUID, rawPattern, ledgerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.aliases[tenantID] = append(s.aliases[tenantID], alias{
		pattern:    rawPattern,
		ledgerName: ledgerName,
		createdAt:  s.now(),
	})

	return nil
}

// removeSettlement drops the settlement with the id and returns it. The
// caller holds the lock.
func (s *Store) removeSettlement(id uuid.UUID) *bill.Settlement {
	for i, st := range s.settlements {
		if st.ID == id {
			s.settlements = append(s.settlements[:i:i], s.settlements[i+1:]...)
			return st
		}
	}

	return nil
}
