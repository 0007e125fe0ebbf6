package bill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/metrics"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	GetBill(ctx context.Context, tenantID, id uuid.UUID) (*Bill, error)
	ListBills(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Bill, error)
	ListSettlements(ctx context.Context, tenantID, billID uuid.UUID) ([]*Settlement, error)
}

// Tx is a unit of work over the bill book. Rollback after Commit is a no-op.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// ReportCache keeps computed reports per tenant until the tenant's bills change.
type ReportCache interface {
	Load(ctx context.Context, tenantID uuid.UUID, name string, dest any) bool
	Save(ctx context.Context, tenantID uuid.UUID, name string, value any)
	Invalidate(ctx context.Context, tenantID uuid.UUID)
}

type ListFilter struct {
	// Type restricts to one bill type; empty means both.
	Type       Type
	Statuses   []Status
	LedgerName string
}

type Service struct {
	repo   Repository
	cache  ReportCache
	logger *slog.Logger
}

type Option func(*Service)

func WithCache(c ReportCache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		cache:  noCache{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateInput struct {
	Number     string
	LedgerName string
	Type       Type
	// BillDate and DueDate are YYYY-MM-DD; BillDate defaults to today and
	// DueDate to BillDate.
	BillDate  string
	DueDate   string
	Amount    decimal.Decimal
	VoucherID *uuid.UUID
	EntryID   *uuid.UUID
	Remarks   string
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, in CreateInput) (*Bill, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, apperr.Validation("billNumber", "bill number is required")
	}

	ledgerName := strings.TrimSpace(in.LedgerName)
	if ledgerName == "" {
		return nil, apperr.Validation("ledgerName", "ledger name is required")
	}

	if !in.Type.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", in.Type)
	}

	if !money.IsPositive(in.Amount) {
		return nil, apperr.Validation("amount", "amount must be positive")
	}

	billDate, err := calendar.ParseOr(in.BillDate, calendar.Today())
	if err != nil {
		return nil, apperr.Validation("billDate", "%s", err)
	}

	dueDate, err := calendar.ParseOr(in.DueDate, billDate)
	if err != nil {
		return nil, apperr.Validation("dueDate", "%s", err)
	}

	if dueDate.Before(billDate) {
		return nil, apperr.Validation("dueDate", "due date is before the bill date")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.LockOpenBill(ctx, tenantID, ledgerName, number); err == nil {
		return nil, apperr.Validation("billNumber", "bill %q is already open for ledger %q", number, ledgerName)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking bill %q: %w", number, err)
	}

	b := &Bill{
		TenantID:          tenantID,
		Number:            number,
		LedgerName:        ledgerName,
		Type:              in.Type,
		BillDate:          billDate,
		DueDate:           dueDate,
		OriginalAmount:    money.Round(in.Amount),
		OutstandingAmount: money.Round(in.Amount),
		Status:            StatusOpen,
		VoucherID:         in.VoucherID,
		EntryID:           in.EntryID,
		Remarks:           in.Remarks,
	}
	if err := tx.InsertBill(ctx, b); err != nil {
		return nil, fmt.Errorf("creating bill: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing bill: %w", err)
	}

	s.cache.Invalidate(ctx, tenantID)

	return b, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Bill, error) {
	b, err := s.repo.GetBill(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("bill", id)
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Bill, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", filter.Type)
	}

	for _, st := range filter.Statuses {
		if !st.Valid() {
			return nil, apperr.Validation("status", "unknown bill status %q", st)
		}
	}

	return s.repo.ListBills(ctx, tenantID, filter)
}

func (s *Service) Settlements(ctx context.Context, tenantID, billID uuid.UUID) ([]*Settlement, error) {
	if _, err := s.Get(ctx, tenantID, billID); err != nil {
		return nil, err
	}

	return s.repo.ListSettlements(ctx, tenantID, billID)
}

type SettleInput struct {
	VoucherID uuid.UUID
	EntryID   uuid.UUID
	Amount    decimal.Decimal
}

// Settle reduces a bill by a posting that references it, by at most the
// amount of the posting's AGAINST reference. The bill row is locked for the
// whole read-modify-write.
func (s *Service) Settle(ctx context.Context, tenantID, billID uuid.UUID, in SettleInput) (*Bill, error) {
	if !money.IsPositive(in.Amount) {
		return nil, apperr.Validation("amount", "settlement amount must be positive")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := tx.LockBill(ctx, tenantID, billID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("bill", billID)
		}

		return nil, fmt.Errorf("locking bill: %w", err)
	}

	available, ok, err := tx.AgainstReferenceBalance(ctx, tenantID, in.VoucherID, in.EntryID, b.LedgerName, b.Number)
	if err != nil {
		return nil, fmt.Errorf("checking bill reference: %w", err)
	}

	if !ok {
		return nil, apperr.Validation("entryId", "voucher entry does not reference bill %s with AGAINST", b.Number)
	}

	exists, err := tx.SettlementExists(ctx, b.ID, in.EntryID)
	if err != nil {
		return nil, fmt.Errorf("checking settlement: %w", err)
	}

	if exists {
		return nil, apperr.Validation("entryId", "voucher entry has already settled bill %s", b.Number)
	}

	if money.Round(in.Amount).GreaterThan(money.Round(available)) {
		return nil, apperr.Validation("amount", "settlement of %s exceeds the %s the entry's AGAINST reference to bill %s covers",
			money.Round(in.Amount).StringFixed(money.Places), money.Round(available).StringFixed(money.Places), b.Number)
	}

	if _, err := record(ctx, tx, b, in.VoucherID, in.EntryID, in.Amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement: %w", err)
	}

	metrics.BillsSettled.WithLabelValues(string(b.Type)).Inc()
	s.cache.Invalidate(ctx, tenantID)

	s.logger.Info("bill settled",
		"tenant", tenantID,
		"bill", b.Number,
		"amount", money.Round(in.Amount).StringFixed(money.Places),
		"status", b.Status,
	)

	return b, nil
}

// Cancel withdraws an open bill nothing has been settled against.
func (s *Service) Cancel(ctx context.Context, tenantID, billID uuid.UUID) (*Bill, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	b, err := tx.LockBill(ctx, tenantID, billID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("bill", billID)
		}

		return nil, fmt.Errorf("locking bill: %w", err)
	}

	if b.Status != StatusOpen || !money.IsZero(b.Settled()) {
		return nil, apperr.Validation("status", "only open bills without settlements can be cancelled, bill %s is %s", b.Number, b.Status)
	}

	b.Status = StatusCancelled
	if err := tx.UpdateBillBalance(ctx, b); err != nil {
		return nil, fmt.Errorf("cancelling bill: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing cancellation: %w", err)
	}

	s.cache.Invalidate(ctx, tenantID)

	return b, nil
}

type noCache struct{}

func (noCache) Load(context.Context, uuid.UUID, string, any) bool { return false }

func (noCache) Save(context.Context, uuid.UUID, string, any) {}

func (noCache) Invalidate(context.Context, uuid.UUID) {}
