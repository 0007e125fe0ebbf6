package voucher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/metrics"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
)

// ErrNotFound is returned by repositories when a voucher does not exist for the tenant.
var ErrNotFound = errors.New("voucher not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	// maxNumberAttempts bounds how many counter values are skipped because a
	// manual voucher already took them.
	maxNumberAttempts = 100
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=voucher
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	GetVoucher(ctx context.Context, tenantID, id uuid.UUID) (*Voucher, error)
	ListVouchers(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Voucher, error)
}

// Tx is the unit of work a voucher is written in. Counter increments, bill
// updates and voucher rows all commit or roll back together. Rollback after
// Commit is a no-op.
type Tx interface {
	numbering.Counter
	bill.Store

	GetVoucherType(ctx context.Context, tenantID, id uuid.UUID) (*numbering.VoucherType, error)
	GetSeries(ctx context.Context, tenantID, voucherTypeID, id uuid.UUID) (*numbering.Series, error)
	// VoucherNumberExists serialises checks for the same number until the
	// transaction ends, then reports whether it is taken. Numbers are unique
	// per tenant and voucher type across all of the type's series, so the
	// lock is keyed on tenant, type and number and never on the series.
	VoucherNumberExists(ctx context.Context, tenantID, voucherTypeID uuid.UUID, number string) (bool, error)
	LockVoucher(ctx context.Context, tenantID, id uuid.UUID) (*Voucher, error)
	ReversalExists(ctx context.Context, tenantID, voucherID uuid.UUID) (bool, error)
	// InsertVoucher writes the header, entries and bill references and fills
	// in their ids.
	InsertVoucher(ctx context.Context, v *Voucher) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	billCache bill.ReportCache
	logger    *slog.Logger
}

type Option func(*Service)

// WithBillCache invalidates the tenant's bill reports whenever a voucher
// touches the bill book.
func WithBillCache(c bill.ReportCache) Option {
	return func(s *Service) {
		s.billCache = c
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
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create records a voucher. Validation runs before the transaction opens, so
// a rejected voucher never consumes a number.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, in CreateInput) (*Voucher, error) {
	start := time.Now()

	v, category, err := s.create(ctx, tenantID, in)

	metrics.VoucherCreateDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.VoucherFailures.WithLabelValues(metrics.ErrorKind(err)).Inc()
		return nil, err
	}

	metrics.VouchersCreated.WithLabelValues(string(category)).Inc()

	s.logger.Info("voucher created",
		"tenant", tenantID,
		"number", v.VoucherNumber,
		"total", v.TotalAmount.StringFixed(money.Places),
		"entries", len(v.Entries),
	)

	return v, nil
}

func (s *Service) create(ctx context.Context, tenantID uuid.UUID, in CreateInput) (*Voucher, numbering.Category, error) {
	total, err := Validate(in.Entries)
	if err != nil {
		return nil, "", err
	}

	date, err := calendar.ParseOr(strings.TrimSpace(in.Date), calendar.Today())
	if err != nil {
		return nil, "", apperr.Validation("date", "%s", err)
	}

	entries, err := buildEntries(in.Entries, date)
	if err != nil {
		return nil, "", err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	vt, err := loadType(ctx, tx, tenantID, in.VoucherTypeID)
	if err != nil {
		return nil, "", err
	}

	if in.NumberingSeriesID != nil {
		if _, err := tx.GetSeries(ctx, tenantID, vt.ID, *in.NumberingSeriesID); err != nil {
			if errors.Is(err, numbering.ErrNotFound) {
				return nil, "", apperr.NotFound("numbering series", *in.NumberingSeriesID)
			}

			return nil, "", fmt.Errorf("loading numbering series: %w", err)
		}
	}

	number, err := assignNumber(ctx, tx, tenantID, vt, in.NumberingSeriesID, in.VoucherNumber)
	if err != nil {
		return nil, "", err
	}

	v := &Voucher{
		TenantID:      tenantID,
		VoucherTypeID: vt.ID,
		SeriesID:      in.NumberingSeriesID,
		VoucherNumber: number,
		Date:          date,
		Reference:     strings.TrimSpace(in.Reference),
		Narration:     in.Narration,
		TotalAmount:   total,
		CreatedBy:     in.CreatedBy,
		Entries:       entries,
	}
	if err := tx.InsertVoucher(ctx, v); err != nil {
		return nil, "", fmt.Errorf("inserting voucher: %w", err)
	}

	postings := Postings(v)
	if len(postings) > 0 {
		if _, err := bill.Apply(ctx, tx, postings); err != nil {
			return nil, "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("committing voucher: %w", err)
	}

	if len(postings) > 0 && s.billCache != nil {
		s.billCache.Invalidate(ctx, tenantID)
	}

	return v, vt.Category, nil
}

func loadType(ctx context.Context, tx Tx, tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	vt, err := tx.GetVoucherType(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, numbering.ErrNotFound) {
			return nil, apperr.NotFound("voucher type", id)
		}

		return nil, fmt.Errorf("loading voucher type: %w", err)
	}

	if !vt.IsActive {
		return nil, apperr.Validation("voucherTypeId", "voucher type %q is inactive", vt.Name)
	}

	return vt, nil
}

// assignNumber takes the supplied manual number or reserves the next one from
// the counter. Unless the type allows duplicates, counter values already used
// by manual vouchers are skipped.
func assignNumber(ctx context.Context, tx Tx, tenantID uuid.UUID, vt *numbering.VoucherType, seriesID *uuid.UUID, manual string) (string, error) {
	manual = strings.TrimSpace(manual)

	switch {
	case vt.Method == numbering.MethodManual && manual == "":
		return "", apperr.Validation("voucherNumber", "voucher type %q is numbered manually, a voucher number is required", vt.Name)

	case manual != "" && vt.Method == numbering.MethodAutomatic && !vt.AllowManualOverride:
		return "", apperr.Validation("voucherNumber", "voucher type %q does not accept manual numbers", vt.Name)

	case manual != "":
		if vt.AllowDuplicates {
			return manual, nil
		}

		taken, err := tx.VoucherNumberExists(ctx, tenantID, vt.ID, manual)
		if err != nil {
			return "", fmt.Errorf("checking voucher number: %w", err)
		}

		if taken {
			return "", apperr.Validation("voucherNumber", "voucher number %q is already used", manual)
		}

		return manual, nil
	}

	for range maxNumberAttempts {
		number, err := numbering.Reserve(ctx, tx, tenantID, vt.ID, seriesID)
		if err != nil {
			return "", err
		}

		if vt.AllowDuplicates {
			return number, nil
		}

		taken, err := tx.VoucherNumberExists(ctx, tenantID, vt.ID, number)
		if err != nil {
			return "", fmt.Errorf("checking voucher number: %w", err)
		}

		if !taken {
			return number, nil
		}
	}

	return "", apperr.Conflict("reserving voucher number",
		fmt.Errorf("%d consecutive numbers of %q are already in use", maxNumberAttempts, vt.Name))
}

func buildEntries(inputs []EntryInput, date time.Time) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(inputs))

	for i, in := range inputs {
		e := &Entry{
			LineNo:       i + 1,
			LedgerName:   strings.TrimSpace(in.LedgerName),
			LedgerCode:   strings.TrimSpace(in.LedgerCode),
			Type:         in.Type,
			Amount:       money.Round(in.Amount),
			Narration:    in.Narration,
			CostCenter:   in.CostCenter,
			CostCategory: in.CostCategory,
		}

		for _, ref := range in.BillReferences {
			br := &BillReference{
				Reference: strings.TrimSpace(ref.Reference),
				Amount:    money.Round(ref.Amount),
				Type:      ref.Type,
				Remarks:   ref.Remarks,
			}

			if ref.DueDate != "" {
				due, err := calendar.Parse(ref.DueDate)
				if err != nil {
					return nil, apperr.Validation("dueDate", "%s", err)
				}

				if due.Before(date) {
					return nil, apperr.Validation("dueDate", "due date of bill %q is before the voucher date", br.Reference)
				}

				br.DueDate = &due
			}

			e.BillReferences = append(e.BillReferences, br)
		}

		entries = append(entries, e)
	}

	return entries, nil
}

// Postings turns the bill references of a stored voucher into bill book postings.
func Postings(v *Voucher) []bill.Posting {
	var postings []bill.Posting

	for _, e := range v.Entries {
		for _, ref := range e.BillReferences {
			postings = append(postings, bill.Posting{
				TenantID:   v.TenantID,
				VoucherID:  v.ID,
				EntryID:    e.ID,
				LedgerName: e.LedgerName,
				Side:       e.Type,
				Date:       v.Date,
				Reference:  ref.Reference,
				Amount:     ref.Amount,
				RefType:    ref.Type,
				DueDate:    ref.DueDate,
				Remarks:    ref.Remarks,
			})
		}
	}

	return postings
}

// Reverse records a voucher of the same type with every posting on the
// opposite side. A voucher can be reversed once and reversals cannot be
// reversed. In the same transaction the original comes off the bill book:
// its settlements are given back and the bills it opened are cancelled.
func (s *Service) Reverse(ctx context.Context, tenantID, id uuid.UUID, in ReverseInput) (*Voucher, error) {
	date, err := calendar.ParseOr(strings.TrimSpace(in.Date), calendar.Today())
	if err != nil {
		return nil, apperr.Validation("date", "%s", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	original, err := tx.LockVoucher(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("voucher", id)
		}

		return nil, fmt.Errorf("loading voucher: %w", err)
	}

	if original.ReversalOf != nil {
		return nil, apperr.Validation("id", "voucher %s is itself a reversal", original.VoucherNumber)
	}

	reversed, err := tx.ReversalExists(ctx, tenantID, original.ID)
	if err != nil {
		return nil, fmt.Errorf("checking reversal: %w", err)
	}

	if reversed {
		return nil, apperr.Validation("id", "voucher %s has already been reversed", original.VoucherNumber)
	}

	if date.Before(original.Date) {
		return nil, apperr.Validation("date", "reversal date is before the voucher date %s", original.Date.Format(time.DateOnly))
	}

	vt, err := loadType(ctx, tx, tenantID, original.VoucherTypeID)
	if err != nil {
		return nil, err
	}

	number, err := assignNumber(ctx, tx, tenantID, vt, original.SeriesID, in.VoucherNumber)
	if err != nil {
		return nil, err
	}

	narration := in.Narration
	if narration == "" {
		narration = "Reversal of " + original.VoucherNumber
	}

	v := &Voucher{
		TenantID:      tenantID,
		VoucherTypeID: original.VoucherTypeID,
		SeriesID:      original.SeriesID,
		VoucherNumber: number,
		Date:          date,
		Reference:     original.VoucherNumber,
		Narration:     narration,
		TotalAmount:   original.TotalAmount,
		CreatedBy:     in.CreatedBy,
		ReversalOf:    &original.ID,
	}

	for _, e := range original.Entries {
		v.Entries = append(v.Entries, &Entry{
			LineNo:       e.LineNo,
			LedgerName:   e.LedgerName,
			LedgerCode:   e.LedgerCode,
			Type:         e.Type.Opposite(),
			Amount:       e.Amount,
			Narration:    e.Narration,
			CostCenter:   e.CostCenter,
			CostCategory: e.CostCategory,
		})
	}

	if err := tx.InsertVoucher(ctx, v); err != nil {
		return nil, fmt.Errorf("inserting reversal: %w", err)
	}

	unwound, err := bill.Unwind(ctx, tx, tenantID, original.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reversal: %w", err)
	}

	if !unwound.Empty() && s.billCache != nil {
		s.billCache.Invalidate(ctx, tenantID)
	}

	metrics.VouchersCreated.WithLabelValues(string(vt.Category)).Inc()

	s.logger.Info("voucher reversed",
		"tenant", tenantID,
		"original", original.VoucherNumber,
		"number", v.VoucherNumber,
		"bills_restored", len(unwound.Restored),
		"bills_cancelled", len(unwound.Cancelled),
	)

	return v, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Voucher, error) {
	v, err := s.repo.GetVoucher(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("voucher", id)
		}

		return nil, fmt.Errorf("getting voucher: %w", err)
	}

	return v, nil
}

// List returns vouchers newest first. The limit defaults to DefaultListLimit
// and never exceeds MaxListLimit.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Voucher, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return nil, apperr.Validation("toDate", "toDate is before fromDate")
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}

	vouchers, err := s.repo.ListVouchers(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}

	return vouchers, nil
}
