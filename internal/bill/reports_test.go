package bill_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
)

var asOn = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

func receivable(number, ledgerName string, dueDaysAgo int, original, outstanding string, status bill.Status) *bill.Bill {
	return &bill.Bill{
		ID:                uuid.New(),
		Number:            number,
		LedgerName:        ledgerName,
		Type:              bill.TypeReceivable,
		BillDate:          asOn.AddDate(0, 0, -dueDaysAgo-30),
		DueDate:           asOn.AddDate(0, 0, -dueDaysAgo),
		OriginalAmount:    amount(original),
		OutstandingAmount: amount(outstanding),
		Status:            status,
	}
}

func TestService_AgingReport(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)

	repo.EXPECT().
		ListBills(gomock.Any(), tenant, bill.ListFilter{
			Type:     bill.TypeReceivable,
			Statuses: []bill.Status{bill.StatusOpen, bill.StatusPartial},
		}).
		Return([]*bill.Bill{
			receivable("A", "Acme", -5, "100", "100", bill.StatusOpen),
			receivable("B", "Acme", 0, "50", "50", bill.StatusOpen),
			receivable("C", "Beta", 30, "200", "120", bill.StatusPartial),
			receivable("D", "Beta", 31, "10", "10", bill.StatusOpen),
			receivable("E", "Gamma", 120, "70", "70", bill.StatusOpen),
		}, nil)

	report, err := newService(repo).AgingReport(context.Background(), tenant, bill.TypeReceivable, asOn)
	require.NoError(t, err)

	want := map[string]string{
		"Current": "150.00",
		"1-30":    "120.00",
		"31-60":   "10.00",
		"61-90":   "0.00",
		"90+":     "70.00",
	}

	require.Len(t, report.Buckets, len(want))

	for _, b := range report.Buckets {
		assert.Equal(t, want[b.Label], b.Amount.StringFixed(2), b.Label)
	}

	assert.Equal(t, "350.00", report.Total.StringFixed(2))
	assert.Equal(t, 5, report.Count)
}

func TestService_AgingReportUsesCache(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)
	cache := bill.NewMockReportCache(ctrl)

	cache.EXPECT().
		Load(gomock.Any(), tenant, "aging:PAYABLE:2026-06-30", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, dest any) bool {
			dest.(*bill.AgingReport).Count = 42
			return true
		})

	report, err := newService(repo, bill.WithCache(cache)).AgingReport(context.Background(), tenant, bill.TypePayable, asOn)
	require.NoError(t, err)
	assert.Equal(t, 42, report.Count)
}

func TestService_OutstandingByLedger(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)

	repo.EXPECT().
		ListBills(gomock.Any(), tenant, gomock.Any()).
		Return([]*bill.Bill{
			receivable("A", "Acme", 10, "100", "100", bill.StatusOpen),
			receivable("B", "acme", 40, "50", "25", bill.StatusPartial),
			receivable("C", "Beta", 5, "500", "500", bill.StatusOpen),
		}, nil)

	summary, err := newService(repo).OutstandingByLedger(context.Background(), tenant, bill.TypeReceivable)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Beta", summary[0].LedgerName)
	assert.Equal(t, "500.00", summary[0].Amount.StringFixed(2))

	assert.Equal(t, "125.00", summary[1].Amount.StringFixed(2))
	assert.Equal(t, 2, summary[1].Count)
	assert.Equal(t, asOn.AddDate(0, 0, -40), summary[1].OldestDueDate)
}

func TestService_Reminders(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)

	repo.EXPECT().
		ListBills(gomock.Any(), tenant, gomock.Any()).
		Return([]*bill.Bill{
			receivable("FAR", "Acme", -30, "10", "10", bill.StatusOpen),
			receivable("SOON", "Acme", -7, "10", "10", bill.StatusOpen),
			receivable("LATE", "Acme", 3, "10", "10", bill.StatusOpen),
		}, nil)

	reminders, err := newService(repo).Reminders(context.Background(), tenant, bill.TypeReceivable, asOn, 0)
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	assert.Equal(t, "LATE", reminders[0].Bill.Number)
	assert.True(t, reminders[0].Overdue)
	assert.Equal(t, 3, reminders[0].DaysOverdue)

	assert.Equal(t, "SOON", reminders[1].Bill.Number)
	assert.False(t, reminders[1].Overdue)
}

func TestService_CashFlowProjection(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)

	payable := receivable("P", "Supplier", -8, "40", "40", bill.StatusOpen)
	payable.Type = bill.TypePayable

	repo.EXPECT().
		ListBills(gomock.Any(), tenant, gomock.Any()).
		Return([]*bill.Bill{
			receivable("OVERDUE", "Acme", 10, "100", "100", bill.StatusOpen),
			receivable("THIS", "Acme", -3, "20", "20", bill.StatusOpen),
			receivable("BEYOND", "Acme", -60, "999", "999", bill.StatusOpen),
			payable,
		}, nil)

	p, err := newService(repo).CashFlowProjection(context.Background(), tenant, asOn, 4)
	require.NoError(t, err)
	require.Len(t, p.Weeks, 4)

	assert.Equal(t, "120.00", p.Weeks[0].Inflow.StringFixed(2))
	assert.Equal(t, "40.00", p.Weeks[1].Outflow.StringFixed(2))
	assert.Equal(t, "-40.00", p.Weeks[1].Net.StringFixed(2))
	assert.Equal(t, "120.00", p.TotalInflow.StringFixed(2))
	assert.Equal(t, "40.00", p.TotalOutflow.StringFixed(2))

	_, err = newService(repo).CashFlowProjection(context.Background(), tenant, asOn, 53)
	assert.Error(t, err)
}

func TestService_Analytics(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := bill.NewMockRepository(ctrl)

	repo.EXPECT().
		ListBills(gomock.Any(), tenant, bill.ListFilter{Type: bill.TypeReceivable}).
		Return([]*bill.Bill{
			receivable("A", "Acme", 10, "100", "100", bill.StatusOpen),
			receivable("B", "Acme", 20, "200", "50", bill.StatusPartial),
			receivable("C", "Acme", 5, "100", "0", bill.StatusSettled),
			receivable("D", "Acme", 5, "999", "999", bill.StatusCancelled),
		}, nil)

	a, err := newService(repo).Analytics(context.Background(), tenant, bill.TypeReceivable, asOn)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Counts[bill.StatusCancelled])
	assert.Equal(t, "400.00", a.TotalBilled.StringFixed(2))
	assert.Equal(t, "250.00", a.TotalSettled.StringFixed(2))
	assert.Equal(t, "150.00", a.TotalOutstanding.StringFixed(2))
	assert.Equal(t, "150.00", a.OverdueAmount.StringFixed(2))
	assert.Equal(t, 2, a.OverdueCount)
	assert.Equal(t, "62.50", a.CollectionRate.StringFixed(2))
	assert.Equal(t, "15.00", a.AverageDaysOverdue.StringFixed(2))
}
