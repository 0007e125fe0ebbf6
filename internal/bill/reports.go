package bill

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

var outstandingStatuses = []Status{StatusOpen, StatusPartial}

type AgingBucket struct {
	Label string
	// MinDays and MaxDays bound the days overdue, both inclusive.
	MinDays int
	MaxDays int
	Amount  decimal.Decimal
	Count   int
}

type AgingReport struct {
	Type    Type
	AsOn    time.Time
	Buckets []AgingBucket
	Total   decimal.Decimal
	Count   int
}

func agingBuckets() []AgingBucket {
	return []AgingBucket{
		{Label: "Current", MinDays: math.MinInt, MaxDays: 0},
		{Label: "1-30", MinDays: 1, MaxDays: 30},
		{Label: "31-60", MinDays: 31, MaxDays: 60},
		{Label: "61-90", MinDays: 61, MaxDays: 90},
		{Label: "90+", MinDays: 91, MaxDays: math.MaxInt},
	}
}

// DaysOverdue is the number of days between the due date and asOn; zero or
// negative means the bill is not yet due.
func DaysOverdue(b *Bill, asOn time.Time) int {
	return calendar.DaysBetween(b.DueDate, asOn)
}

// AgingReport buckets the outstanding bills of a type by days overdue.
func (s *Service) AgingReport(ctx context.Context, tenantID uuid.UUID, billType Type, asOn time.Time) (*AgingReport, error) {
	if !billType.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", billType)
	}

	asOn = calendar.Date(asOn)
	key := fmt.Sprintf("aging:%s:%s", billType, asOn.Format(time.DateOnly))

	var report AgingReport
	if s.cache.Load(ctx, tenantID, key, &report) {
		return &report, nil
	}

	bills, err := s.repo.ListBills(ctx, tenantID, ListFilter{Type: billType, Statuses: outstandingStatuses})
	if err != nil {
		return nil, fmt.Errorf("building aging report: %w", err)
	}

	report = AgingReport{
		Type:    billType,
		AsOn:    asOn,
		Buckets: agingBuckets(),
		Total:   decimal.Zero,
	}
	for i := range report.Buckets {
		report.Buckets[i].Amount = decimal.Zero
	}

	for _, b := range bills {
		days := DaysOverdue(b, asOn)

		for i := range report.Buckets {
			bucket := &report.Buckets[i]
			if days < bucket.MinDays || days > bucket.MaxDays {
				continue
			}

			bucket.Amount = bucket.Amount.Add(b.OutstandingAmount)
			bucket.Count++

			break
		}

		report.Total = report.Total.Add(b.OutstandingAmount)
		report.Count++
	}

	report.Total = money.Round(report.Total)

	s.cache.Save(ctx, tenantID, key, report)

	return &report, nil
}

type LedgerOutstanding struct {
	LedgerName string
	Amount     decimal.Decimal
	Count      int
	// OldestDueDate is the earliest due date among the ledger's bills.
	OldestDueDate time.Time
}

// OutstandingByLedger totals open and partially settled bills per ledger,
// largest amount first.
func (s *Service) OutstandingByLedger(ctx context.Context, tenantID uuid.UUID, billType Type) ([]LedgerOutstanding, error) {
	if !billType.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", billType)
	}

	key := "outstanding:" + string(billType)

	var summary []LedgerOutstanding
	if s.cache.Load(ctx, tenantID, key, &summary) {
		return summary, nil
	}

	bills, err := s.repo.ListBills(ctx, tenantID, ListFilter{Type: billType, Statuses: outstandingStatuses})
	if err != nil {
		return nil, fmt.Errorf("summarising outstanding bills: %w", err)
	}

	byLedger := make(map[string]*LedgerOutstanding)

	for _, b := range bills {
		k := strings.ToLower(b.LedgerName)

		row, ok := byLedger[k]
		if !ok {
			row = &LedgerOutstanding{LedgerName: b.LedgerName, Amount: decimal.Zero, OldestDueDate: b.DueDate}
			byLedger[k] = row
		}

		row.Amount = row.Amount.Add(b.OutstandingAmount)
		row.Count++

		if b.DueDate.Before(row.OldestDueDate) {
			row.OldestDueDate = b.DueDate
		}
	}

	summary = make([]LedgerOutstanding, 0, len(byLedger))
	for _, row := range byLedger {
		row.Amount = money.Round(row.Amount)
		summary = append(summary, *row)
	}

	sort.Slice(summary, func(i, j int) bool {
		if c := summary[i].Amount.Cmp(summary[j].Amount); c != 0 {
			return c > 0
		}

		return summary[i].LedgerName < summary[j].LedgerName
	})

	s.cache.Save(ctx, tenantID, key, summary)

	return summary, nil
}

type Reminder struct {
	Bill        *Bill
	DaysOverdue int
	Overdue     bool
}

const defaultReminderDays = 7

// Reminders lists outstanding bills that are overdue or fall due within the
// given number of days, earliest due date first.
func (s *Service) Reminders(ctx context.Context, tenantID uuid.UUID, billType Type, asOn time.Time, withinDays int) ([]Reminder, error) {
	if !billType.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", billType)
	}

	if withinDays < 0 {
		return nil, apperr.Validation("withinDays", "must not be negative")
	}

	if withinDays == 0 {
		withinDays = defaultReminderDays
	}

	asOn = calendar.Date(asOn)

	bills, err := s.repo.ListBills(ctx, tenantID, ListFilter{Type: billType, Statuses: outstandingStatuses})
	if err != nil {
		return nil, fmt.Errorf("listing bills for reminders: %w", err)
	}

	var reminders []Reminder

	for _, b := range bills {
		days := DaysOverdue(b, asOn)
		if days < -withinDays {
			continue
		}

		reminders = append(reminders, Reminder{Bill: b, DaysOverdue: days, Overdue: days > 0})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Bill.DueDate.Before(reminders[j].Bill.DueDate)
	})

	return reminders, nil
}

type CashFlowWeek struct {
	Start   time.Time
	End     time.Time
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

type CashFlowProjection struct {
	AsOn         time.Time
	Weeks        []CashFlowWeek
	TotalInflow  decimal.Decimal
	TotalOutflow decimal.Decimal
}

const (
	defaultProjectionWeeks = 4
	maxProjectionWeeks     = 52
)

// CashFlowProjection spreads outstanding receivables (inflow) and payables
// (outflow) over weeks by due date. Overdue amounts land in the first week;
// bills due after the last week are left out.
func (s *Service) CashFlowProjection(ctx context.Context, tenantID uuid.UUID, asOn time.Time, weeks int) (*CashFlowProjection, error) {
	if weeks < 0 || weeks > maxProjectionWeeks {
		return nil, apperr.Validation("weeks", "must be between 1 and %d", maxProjectionWeeks)
	}

	if weeks == 0 {
		weeks = defaultProjectionWeeks
	}

	asOn = calendar.Date(asOn)

	bills, err := s.repo.ListBills(ctx, tenantID, ListFilter{Statuses: outstandingStatuses})
	if err != nil {
		return nil, fmt.Errorf("projecting cash flow: %w", err)
	}

	p := &CashFlowProjection{
		AsOn:         asOn,
		Weeks:        make([]CashFlowWeek, weeks),
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	for i := range p.Weeks {
		start := asOn.AddDate(0, 0, 7*i)
		p.Weeks[i] = CashFlowWeek{
			Start:   start,
			End:     start.AddDate(0, 0, 6),
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
		}
	}

	for _, b := range bills {
		idx := 0
		if days := calendar.DaysBetween(asOn, b.DueDate); days > 0 {
			idx = days / 7
		}

		if idx >= weeks {
			continue
		}

		w := &p.Weeks[idx]

		switch b.Type {
		case TypeReceivable:
			w.Inflow = w.Inflow.Add(b.OutstandingAmount)
			p.TotalInflow = p.TotalInflow.Add(b.OutstandingAmount)
		case TypePayable:
			w.Outflow = w.Outflow.Add(b.OutstandingAmount)
			p.TotalOutflow = p.TotalOutflow.Add(b.OutstandingAmount)
		}
	}

	for i := range p.Weeks {
		w := &p.Weeks[i]
		w.Inflow = money.Round(w.Inflow)
		w.Outflow = money.Round(w.Outflow)
		w.Net = w.Inflow.Sub(w.Outflow)
	}

	p.TotalInflow = money.Round(p.TotalInflow)
	p.TotalOutflow = money.Round(p.TotalOutflow)

	return p, nil
}

type Analytics struct {
	Type             Type
	AsOn             time.Time
	Counts           map[Status]int
	TotalBilled      decimal.Decimal
	TotalSettled     decimal.Decimal
	TotalOutstanding decimal.Decimal
	OverdueAmount    decimal.Decimal
	OverdueCount     int
	// CollectionRate is the settled share of the billed amount, in percent.
	CollectionRate     decimal.Decimal
	AverageDaysOverdue decimal.Decimal
}

// Analytics summarises every bill of a type. Cancelled bills are counted but
// left out of the amounts.
func (s *Service) Analytics(ctx context.Context, tenantID uuid.UUID, billType Type, asOn time.Time) (*Analytics, error) {
	if !billType.Valid() {
		return nil, apperr.Validation("billType", "unknown bill type %q", billType)
	}

	asOn = calendar.Date(asOn)
	key := fmt.Sprintf("analytics:%s:%s", billType, asOn.Format(time.DateOnly))

	var a Analytics
	if s.cache.Load(ctx, tenantID, key, &a) {
		return &a, nil
	}

	bills, err := s.repo.ListBills(ctx, tenantID, ListFilter{Type: billType})
	if err != nil {
		return nil, fmt.Errorf("calculating bill metrics: %w", err)
	}

	a = Analytics{
		Type:             billType,
		AsOn:             asOn,
		Counts:           make(map[Status]int),
		TotalBilled:      decimal.Zero,
		TotalSettled:     decimal.Zero,
		TotalOutstanding: decimal.Zero,
		OverdueAmount:    decimal.Zero,
	}

	overdueDays := 0

	for _, b := range bills {
		a.Counts[b.Status]++

		if b.Status == StatusCancelled {
			continue
		}

		a.TotalBilled = a.TotalBilled.Add(b.OriginalAmount)
		a.TotalSettled = a.TotalSettled.Add(b.Settled())
		a.TotalOutstanding = a.TotalOutstanding.Add(b.OutstandingAmount)

		if days := DaysOverdue(b, asOn); b.Status.Outstanding() && days > 0 {
			a.OverdueAmount = a.OverdueAmount.Add(b.OutstandingAmount)
			a.OverdueCount++
			overdueDays += days
		}
	}

	a.TotalBilled = money.Round(a.TotalBilled)
	a.TotalSettled = money.Round(a.TotalSettled)
	a.TotalOutstanding = money.Round(a.TotalOutstanding)
	a.OverdueAmount = money.Round(a.OverdueAmount)

	a.CollectionRate = decimal.Zero
	if a.TotalBilled.IsPositive() {
		a.CollectionRate = money.Round(a.TotalSettled.Mul(decimal.NewFromInt(100)).Div(a.TotalBilled))
	}

	a.AverageDaysOverdue = decimal.Zero
	if a.OverdueCount > 0 {
		a.AverageDaysOverdue = money.Round(decimal.NewFromInt(int64(overdueDays)).Div(decimal.NewFromInt(int64(a.OverdueCount))))
	}

	s.cache.Save(ctx, tenantID, key, a)

	return &a, nil
}
