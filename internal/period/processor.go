// Package period runs the period-end jobs of a tenant's books: closing the
// income and expense ledgers, charging depreciation and carrying balances
// into the next year.
package period

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/metrics"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

// Totals are the posted debits and credits of one ledger.
type Totals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

//go:generate mockgen -source=processor.go -destination=repository_mock.go -package=period
type Repository interface {
	// PostingTotals sums the postings of every ledger name dated up to and
	// including asOf, keyed by lower-cased ledger name. Postings dated before
	// a ledger's opening date are left out.
	PostingTotals(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (map[string]Totals, error)
}

type Ledgers interface {
	List(ctx context.Context, tenantID uuid.UUID, categories ...ledger.Category) ([]*ledger.Ledger, error)
	Ensure(ctx context.Context, tenantID uuid.UUID, name string, category ledger.Category) (*ledger.Ledger, error)
	SetOpeningBalances(ctx context.Context, tenantID uuid.UUID, balances []ledger.OpeningBalance) error
}

type Vouchers interface {
	Create(ctx context.Context, tenantID uuid.UUID, in voucher.CreateInput) (*voucher.Voucher, error)
}

type VoucherTypes interface {
	FindByCategory(ctx context.Context, tenantID uuid.UUID, category numbering.Category) (*numbering.VoucherType, error)
}

type Config struct {
	// CapitalLedger receives the net profit or loss; created under CAPITAL if missing.
	CapitalLedger string
	// DepreciationLedger is debited with depreciation; created under INDIRECT_EXPENSE if missing.
	DepreciationLedger string
	// DepreciationRate is the percentage used when a run does not give one.
	DepreciationRate decimal.Decimal
	// AssetCategories select the ledgers that depreciate.
	AssetCategories []ledger.Category
}

func DefaultConfig() Config {
	return Config{
		CapitalLedger:      "Capital Account",
		DepreciationLedger: "Depreciation",
		DepreciationRate:   decimal.NewFromInt(10),
		AssetCategories:    []ledger.Category{ledger.CategoryFixedAsset},
	}
}

type Processor struct {
	repo     Repository
	ledgers  Ledgers
	vouchers Vouchers
	types    VoucherTypes
	cfg      Config
	logger   *slog.Logger
}

func NewProcessor(repo Repository, ledgers Ledgers, vouchers Vouchers, types VoucherTypes, cfg Config) *Processor {
	def := DefaultConfig()

	if cfg.CapitalLedger == "" {
		cfg.CapitalLedger = def.CapitalLedger
	}

	if cfg.DepreciationLedger == "" {
		cfg.DepreciationLedger = def.DepreciationLedger
	}

	if cfg.DepreciationRate.IsZero() {
		cfg.DepreciationRate = def.DepreciationRate
	}

	if len(cfg.AssetCategories) == 0 {
		cfg.AssetCategories = def.AssetCategories
	}

	return &Processor{
		repo:     repo,
		ledgers:  ledgers,
		vouchers: vouchers,
		types:    types,
		cfg:      cfg,
		logger:   slog.Default(),
	}
}

// LedgerBalance is the running balance of a ledger at a date.
type LedgerBalance struct {
	Ledger *ledger.Ledger
	// Signed is positive for a debit balance and negative for a credit balance.
	Signed decimal.Decimal
}

// Balances computes the running balance of each ledger as of asOf: the signed
// opening balance plus the debits and minus the credits posted since the
// ledger's opening date.
func (p *Processor) Balances(ctx context.Context, tenantID uuid.UUID, ledgers []*ledger.Ledger, asOf time.Time) ([]LedgerBalance, error) {
	totals, err := p.repo.PostingTotals(ctx, tenantID, calendar.Date(asOf))
	if err != nil {
		return nil, fmt.Errorf("computing ledger balances: %w", err)
	}

	balances := make([]LedgerBalance, 0, len(ledgers))

	for _, l := range ledgers {
		signed := l.SignedOpening()

		if t, ok := totals[strings.ToLower(l.Name)]; ok {
			signed = signed.Add(t.Debit).Sub(t.Credit)
		}

		balances = append(balances, LedgerBalance{Ledger: l, Signed: money.Round(signed)})
	}

	return balances, nil
}

func (p *Processor) journalType(ctx context.Context, tenantID uuid.UUID) (*numbering.VoucherType, error) {
	vt, err := p.types.FindByCategory(ctx, tenantID, numbering.CategoryJournal)
	if err != nil {
		return nil, fmt.Errorf("finding journal voucher type: %w", err)
	}

	return vt, nil
}

// GenerateClosingEntries zeroes every income and expense ledger as of asOf
// and moves the net result to the capital ledger, in one journal voucher.
func (p *Processor) GenerateClosingEntries(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (v *voucher.Voucher, err error) {
	defer func() { metrics.PeriodRuns.WithLabelValues("closing", metrics.Outcome(err)).Inc() }()

	asOf = calendar.Date(asOf)

	nominal, err := p.ledgers.List(ctx, tenantID, ledger.NominalCategories()...)
	if err != nil {
		return nil, fmt.Errorf("listing income and expense ledgers: %w", err)
	}

	balances, err := p.Balances(ctx, tenantID, nominal, asOf)
	if err != nil {
		return nil, err
	}

	entries, net := closingEntries(balances)
	if len(entries) == 0 {
		return nil, apperr.Validation("asOf", "no income or expense balances to close as of %s", asOf.Format(time.DateOnly))
	}

	if !net.IsZero() {
		capital, err := p.ledgers.Ensure(ctx, tenantID, p.cfg.CapitalLedger, ledger.CategoryCapital)
		if err != nil {
			return nil, fmt.Errorf("resolving capital ledger: %w", err)
		}

		// A net debit across income and expense is a loss, charged to capital.
		side := ledger.Credit
		if net.IsPositive() {
			side = ledger.Debit
		}

		narration := "Net profit transferred to capital"
		if side == ledger.Debit {
			narration = "Net loss transferred to capital"
		}

		entries = append(entries, voucher.EntryInput{
			LedgerName: capital.Name,
			LedgerCode: capital.Code,
			Type:       side,
			Amount:     net.Abs(),
			Narration:  narration,
		})
	}

	vt, err := p.journalType(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	v, err = p.vouchers.Create(ctx, tenantID, voucher.CreateInput{
		VoucherTypeID: vt.ID,
		Date:          asOf.Format(time.DateOnly),
		Narration:     "Closing entries as of " + asOf.Format(time.DateOnly),
		Entries:       entries,
	})
	if err != nil {
		return nil, fmt.Errorf("posting closing voucher: %w", err)
	}

	p.logger.Info("closing entries posted", "tenant", tenantID, "as_of", asOf.Format(time.DateOnly), "voucher", v.VoucherNumber, "net", net.StringFixed(money.Places))

	return v, nil
}

// closingEntries returns one reversing entry per non-zero balance and the
// signed net of the balances closed.
func closingEntries(balances []LedgerBalance) ([]voucher.EntryInput, decimal.Decimal) {
	var entries []voucher.EntryInput

	net := decimal.Zero

	for _, b := range balances {
		if b.Signed.IsZero() {
			continue
		}

		bal := ledger.BalanceOf(b.Signed)
		entries = append(entries, voucher.EntryInput{
			LedgerName: b.Ledger.Name,
			LedgerCode: b.Ledger.Code,
			Type:       bal.Type.Opposite(),
			Amount:     bal.Amount,
			Narration:  "Closing balance transfer",
		})

		net = net.Add(b.Signed)
	}

	return entries, net
}

// RunDepreciation charges rate percent of the book value of every asset
// ledger with a debit balance as of asOf. A nil rate uses the configured one.
func (p *Processor) RunDepreciation(ctx context.Context, tenantID uuid.UUID, asOf time.Time, rate *decimal.Decimal) (v *voucher.Voucher, err error) {
	defer func() { metrics.PeriodRuns.WithLabelValues("depreciation", metrics.Outcome(err)).Inc() }()

	asOf = calendar.Date(asOf)

	r := p.cfg.DepreciationRate
	if rate != nil {
		r = *rate
	}

	if !r.IsPositive() || r.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperr.Validation("rate", "depreciation rate must be above 0 and at most 100, got %s", r)
	}

	assets, err := p.ledgers.List(ctx, tenantID, p.cfg.AssetCategories...)
	if err != nil {
		return nil, fmt.Errorf("listing asset ledgers: %w", err)
	}

	balances, err := p.Balances(ctx, tenantID, assets, asOf)
	if err != nil {
		return nil, err
	}

	charges := depreciationCharges(balances, r)
	if len(charges) == 0 {
		return nil, apperr.Validation("asOf", "no asset ledgers to depreciate as of %s", asOf.Format(time.DateOnly))
	}

	expense, err := p.ledgers.Ensure(ctx, tenantID, p.cfg.DepreciationLedger, ledger.CategoryIndirectExpense)
	if err != nil {
		return nil, fmt.Errorf("resolving depreciation ledger: %w", err)
	}

	entries := make([]voucher.EntryInput, 0, 2*len(charges))
	for _, c := range charges {
		narration := fmt.Sprintf("Depreciation on %s at %s%%", c.ledger.Name, r.String())

		entries = append(entries,
			voucher.EntryInput{
				LedgerName: expense.Name,
				LedgerCode: expense.Code,
				Type:       ledger.Debit,
				Amount:     c.amount,
				Narration:  narration,
			},
			voucher.EntryInput{
				LedgerName: c.ledger.Name,
				LedgerCode: c.ledger.Code,
				Type:       ledger.Credit,
				Amount:     c.amount,
				Narration:  narration,
			},
		)
	}

	vt, err := p.journalType(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	v, err = p.vouchers.Create(ctx, tenantID, voucher.CreateInput{
		VoucherTypeID: vt.ID,
		Date:          asOf.Format(time.DateOnly),
		Narration:     fmt.Sprintf("Depreciation at %s%% as of %s", r.String(), asOf.Format(time.DateOnly)),
		Entries:       entries,
	})
	if err != nil {
		return nil, fmt.Errorf("posting depreciation voucher: %w", err)
	}

	p.logger.Info("depreciation posted", "tenant", tenantID, "as_of", asOf.Format(time.DateOnly), "voucher", v.VoucherNumber, "assets", len(charges))

	return v, nil
}

type charge struct {
	ledger *ledger.Ledger
	amount decimal.Decimal
}

func depreciationCharges(balances []LedgerBalance, rate decimal.Decimal) []charge {
	var charges []charge

	for _, b := range balances {
		if !b.Signed.IsPositive() {
			continue
		}

		amount := money.Round(b.Signed.Mul(rate).Div(decimal.NewFromInt(100)))
		if amount.IsZero() {
			continue
		}

		charges = append(charges, charge{ledger: b.Ledger, amount: amount})
	}

	return charges
}

type CarryForwardSummary struct {
	YearEnd   time.Time
	YearStart time.Time
	Balances  []ledger.OpeningBalance
}

// CarryForwardBalances makes every ledger's balance at yearEnd its opening
// balance from yearStart. Running it again for the same dates changes nothing.
func (p *Processor) CarryForwardBalances(ctx context.Context, tenantID uuid.UUID, yearEnd, yearStart time.Time) (summary *CarryForwardSummary, err error) {
	defer func() { metrics.PeriodRuns.WithLabelValues("carry_forward", metrics.Outcome(err)).Inc() }()

	yearEnd, yearStart = calendar.Date(yearEnd), calendar.Date(yearStart)

	if !yearStart.After(yearEnd) {
		return nil, apperr.Validation("yearStart", "year start %s must be after year end %s",
			yearStart.Format(time.DateOnly), yearEnd.Format(time.DateOnly))
	}

	all, err := p.ledgers.List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing ledgers: %w", err)
	}

	if len(all) == 0 {
		return nil, apperr.Validation("tenant", "no ledgers to carry forward")
	}

	balances, err := p.Balances(ctx, tenantID, all, yearEnd)
	if err != nil {
		return nil, err
	}

	summary = &CarryForwardSummary{YearEnd: yearEnd, YearStart: yearStart}

	for _, b := range balances {
		bal := ledger.BalanceOf(b.Signed)
		summary.Balances = append(summary.Balances, ledger.OpeningBalance{
			LedgerID:    b.Ledger.ID,
			LedgerName:  b.Ledger.Name,
			Amount:      bal.Amount,
			Type:        bal.Type,
			OpeningDate: yearStart,
		})
	}

	if err := p.ledgers.SetOpeningBalances(ctx, tenantID, summary.Balances); err != nil {
		return nil, fmt.Errorf("writing opening balances: %w", err)
	}

	p.logger.Info("balances carried forward", "tenant", tenantID, "year_end", yearEnd.Format(time.DateOnly), "ledgers", len(summary.Balances))

	return summary, nil
}
