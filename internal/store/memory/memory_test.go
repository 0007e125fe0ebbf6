package memory_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/store/memory"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type books struct {
	tenant    uuid.UUID
	store     *memory.Store
	ledgers   *ledger.Service
	numbering *numbering.Service
	vouchers  *voucher.Service
	bills     *bill.Service
	types     map[numbering.Category]*numbering.VoucherType
}

func newBooks(t *testing.T) *books {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store := memory.New()

	b := &books{
		tenant:    uuid.New(),
		store:     store,
		ledgers:   ledger.NewService(store),
		numbering: numbering.NewService(store),
		vouchers:  voucher.NewService(store.Vouchers(), voucher.WithLogger(logger)),
		bills:     bill.NewService(store.Bills(), bill.WithLogger(logger)),
		types:     make(map[numbering.Category]*numbering.VoucherType),
	}

	created, err := b.numbering.SeedDefaults(context.Background(), b.tenant)
	require.NoError(t, err)
	require.Len(t, created, len(numbering.DefaultTypes))

	for _, vt := range created {
		b.types[vt.Category] = vt
	}

	return b
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pair(debit, credit, value string) []voucher.EntryInput {
	return []voucher.EntryInput{
		{LedgerName: debit, Type: ledger.Debit, Amount: amount(value)},
		{LedgerName: credit, Type: ledger.Credit, Amount: amount(value)},
	}
}

func TestFirstSalesVoucher(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	sales := b.types[numbering.CategorySales]

	v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: sales.ID,
		Date:          "2026-04-01",
		Entries:       pair("Customer A", "Sales", "500"),
	})
	require.NoError(t, err)

	assert.Equal(t, "SAL/1", v.VoucherNumber)
	assert.Equal(t, "500.00", v.TotalAmount.StringFixed(2))

	debit, credit := v.Totals()
	assert.True(t, debit.Equal(credit))

	vt, err := b.numbering.GetVoucherType(ctx, b.tenant, sales.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), vt.NextNumber)

	next, err := b.numbering.NextVoucherNumber(ctx, b.tenant, sales.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "SAL/2", next)
}

func TestCounterAdvancesOncePerVoucher(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	journal := b.types[numbering.CategoryJournal]

	const n = 5

	for i := range n {
		v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: journal.ID,
			Date:          "2026-04-01",
			Entries:       pair("Rent", "Bank", "100"),
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("JV/%d", i+1), v.VoucherNumber)
	}

	// Rejected before the transaction: no number is used.
	_, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: journal.ID,
		Entries: []voucher.EntryInput{
			{LedgerName: "Rent", Type: ledger.Debit, Amount: amount("100")},
			{LedgerName: "Bank", Type: ledger.Credit, Amount: amount("99.99")},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	vt, err := b.numbering.GetVoucherType(ctx, b.tenant, journal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1+n), vt.NextNumber)
}

func TestFailedVoucherRollsBackNumber(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	sales := b.types[numbering.CategorySales]

	in := voucher.CreateInput{
		VoucherTypeID: sales.ID,
		Date:          "2026-04-01",
		Entries: []voucher.EntryInput{
			{
				LedgerName: "Customer A",
				Type:       ledger.Debit,
				Amount:     amount("1000"),
				BillReferences: []voucher.BillReferenceInput{
					{Reference: "INV-1", Amount: amount("1000"), Type: bill.RefNew},
				},
			},
			{LedgerName: "Sales", Type: ledger.Credit, Amount: amount("1000")},
		},
	}

	first, err := b.vouchers.Create(ctx, b.tenant, in)
	require.NoError(t, err)
	assert.Equal(t, "SAL/1", first.VoucherNumber)

	// The second NEW reference to INV-1 fails after the number was reserved.
	_, err = b.vouchers.Create(ctx, b.tenant, in)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	in.Entries[0].BillReferences[0].Reference = "INV-2"

	second, err := b.vouchers.Create(ctx, b.tenant, in)
	require.NoError(t, err)
	assert.Equal(t, "SAL/2", second.VoucherNumber)
}

func TestConcurrentVouchersGetDistinctNumbers(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	journal := b.types[numbering.CategoryJournal]

	const k = 25

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]bool)
		errs    []error
	)

	for range k {
		wg.Go(func() {
			v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
				VoucherTypeID: journal.ID,
				Date:          "2026-04-01",
				Entries:       pair("Rent", "Bank", "10"),
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, err)
				return
			}

			numbers[v.VoucherNumber] = true
		})
	}

	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, numbers, k)

	for i := 1; i <= k; i++ {
		assert.True(t, numbers[fmt.Sprintf("JV/%d", i)], "missing JV/%d", i)
	}

	vt, err := b.numbering.GetVoucherType(ctx, b.tenant, journal.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(k+1), vt.NextNumber)
}

// interleavedTypes runs during after every voucher type read, standing in for
// a voucher posted between an admin's read and write of the type.
type interleavedTypes struct {
	*memory.Store
	during func()
}

func (r interleavedTypes) GetVoucherType(ctx context.Context, tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	vt, err := r.Store.GetVoucherType(ctx, tenantID, id)
	if r.during != nil {
		r.during()
	}

	return vt, err
}

func TestTypeUpdateKeepsConcurrentReservations(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	sales := b.types[numbering.CategorySales]

	post := func() string {
		v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: sales.ID,
			Date:          "2026-04-01",
			Entries:       pair("Customer A", "Sales", "10"),
		})
		require.NoError(t, err)

		return v.VoucherNumber
	}

	_, err := b.numbering.UpdateVoucherType(ctx, b.tenant, sales.ID, numbering.UpdateTypeParams{AllowDuplicates: new(true)})
	require.NoError(t, err)

	assert.Equal(t, "SAL/1", post())

	var raced string

	admin := numbering.NewService(interleavedTypes{Store: b.store, during: func() { raced = post() }})

	vt, err := admin.UpdateVoucherType(ctx, b.tenant, sales.ID, numbering.UpdateTypeParams{
		Prefix:          new("S-"),
		AllowDuplicates: new(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "SAL/2", raced)
	assert.Equal(t, int64(3), vt.NextNumber)

	assert.Equal(t, "S-3", post())

	// A stale counter value loses to the reservation made meanwhile.
	vt, err = admin.UpdateVoucherType(ctx, b.tenant, sales.ID, numbering.UpdateTypeParams{NextNumber: new(int64(4))})
	require.NoError(t, err)
	assert.Equal(t, "S-4", raced)
	assert.Equal(t, int64(5), vt.NextNumber)
	assert.Equal(t, "S-5", post())
}

func TestAutomaticNumberSkipsManualOverride(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	vt, err := b.numbering.CreateVoucherType(ctx, b.tenant, numbering.CreateTypeParams{
		Name:                "Cash Sales",
		Category:            numbering.CategorySales,
		Prefix:              "CS-",
		AllowManualOverride: true,
	})
	require.NoError(t, err)

	create := func(number string) (*voucher.Voucher, error) {
		return b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: vt.ID,
			VoucherNumber: number,
			Date:          "2026-04-01",
			Entries:       pair("Cash", "Sales", "50"),
		})
	}

	manual, err := create("CS-2")
	require.NoError(t, err)
	assert.Equal(t, "CS-2", manual.VoucherNumber)

	_, err = create("CS-2")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	first, err := create("")
	require.NoError(t, err)
	assert.Equal(t, "CS-1", first.VoucherNumber)

	second, err := create("")
	require.NoError(t, err)
	assert.Equal(t, "CS-3", second.VoucherNumber)
}

func TestNumberingSeries(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	sales := b.types[numbering.CategorySales]

	series, err := b.numbering.CreateNumberingSeries(ctx, b.tenant, sales.ID, numbering.CreateSeriesParams{
		Name:        "Branch",
		Prefix:      "BR/",
		Suffix:      "/26",
		StartNumber: 100,
	})
	require.NoError(t, err)

	v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID:     sales.ID,
		NumberingSeriesID: &series.ID,
		Date:              "2026-04-01",
		Entries:           pair("Customer A", "Sales", "75"),
	})
	require.NoError(t, err)
	assert.Equal(t, "BR/100/26", v.VoucherNumber)

	// The type's own counter is untouched.
	next, err := b.numbering.NextVoucherNumber(ctx, b.tenant, sales.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "SAL/1", next)

	other := uuid.New()
	_, err = b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID:     sales.ID,
		NumberingSeriesID: &other,
		Entries:           pair("Customer A", "Sales", "75"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSeriesShareTypeNumberSpace(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	sales := b.types[numbering.CategorySales]

	first, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: sales.ID,
		Date:          "2026-04-01",
		Entries:       pair("Customer A", "Sales", "75"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SAL/1", first.VoucherNumber)

	series, err := b.numbering.CreateNumberingSeries(ctx, b.tenant, sales.ID, numbering.CreateSeriesParams{
		Name:        "Counter",
		Prefix:      "SAL/",
		StartNumber: 1,
	})
	require.NoError(t, err)

	v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID:     sales.ID,
		NumberingSeriesID: &series.ID,
		Date:              "2026-04-01",
		Entries:           pair("Customer A", "Sales", "75"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SAL/2", v.VoucherNumber)
}

func TestBillLifecycleThroughVouchers(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	invoice, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: b.types[numbering.CategorySales].ID,
		Date:          "2026-04-01",
		Entries: []voucher.EntryInput{
			{
				LedgerName: "Customer A",
				Type:       ledger.Debit,
				Amount:     amount("1000"),
				BillReferences: []voucher.BillReferenceInput{
					{Reference: "INV-1", Amount: amount("1000"), Type: bill.RefNew, DueDate: "2026-05-01"},
				},
			},
			{LedgerName: "Sales", Type: ledger.Credit, Amount: amount("1000")},
		},
	})
	require.NoError(t, err)

	bills, err := b.bills.List(ctx, b.tenant, bill.ListFilter{})
	require.NoError(t, err)
	require.Len(t, bills, 1)

	opened := bills[0]
	assert.Equal(t, bill.TypeReceivable, opened.Type)
	assert.Equal(t, bill.StatusOpen, opened.Status)
	assert.Equal(t, "1000.00", opened.OutstandingAmount.StringFixed(2))
	assert.Equal(t, invoice.ID, *opened.VoucherID)

	receipt := func(value string) (*voucher.Voucher, error) {
		return b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: b.types[numbering.CategoryReceipt].ID,
			Date:          "2026-04-10",
			Entries: []voucher.EntryInput{
				{LedgerName: "Bank", Type: ledger.Debit, Amount: amount(value)},
				{
					LedgerName: "customer a",
					Type:       ledger.Credit,
					Amount:     amount(value),
					BillReferences: []voucher.BillReferenceInput{
						{Reference: "INV-1", Amount: amount(value), Type: bill.RefAgainst},
					},
				},
			},
		})
	}

	_, err = receipt("400")
	require.NoError(t, err)

	partial, err := b.bills.Get(ctx, b.tenant, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPartial, partial.Status)
	assert.Equal(t, "600.00", partial.OutstandingAmount.StringFixed(2))

	_, err = receipt("600")
	require.NoError(t, err)

	settled, err := b.bills.Get(ctx, b.tenant, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusSettled, settled.Status)
	assert.True(t, settled.OutstandingAmount.IsZero())

	settlements, err := b.bills.Settlements(ctx, b.tenant, opened.ID)
	require.NoError(t, err)
	assert.Len(t, settlements, 2)

	// The bill is no longer open, so the reference is kept on the entry only.
	extra, err := receipt("1")
	require.NoError(t, err)
	assert.NotEmpty(t, extra.VoucherNumber)

	after, err := b.bills.Get(ctx, b.tenant, opened.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusSettled, after.Status)
	assert.True(t, after.OutstandingAmount.IsZero())
}

func TestSettleRequiresAgainstReference(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	created, err := b.bills.Create(ctx, b.tenant, bill.CreateInput{
		Number:     "PB-7",
		LedgerName: "Supplier X",
		Type:       bill.TypePayable,
		BillDate:   "2026-04-01",
		DueDate:    "2026-04-30",
		Amount:     amount("250"),
	})
	require.NoError(t, err)

	payment, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: b.types[numbering.CategoryPayment].ID,
		Date:          "2026-04-05",
		Entries: []voucher.EntryInput{
			{
				LedgerName: "Supplier X",
				Type:       ledger.Debit,
				Amount:     amount("100"),
				BillReferences: []voucher.BillReferenceInput{
					{Reference: "PB-7", Amount: amount("100"), Type: bill.RefOnAccount},
				},
			},
			{LedgerName: "Bank", Type: ledger.Credit, Amount: amount("100")},
		},
	})
	require.NoError(t, err)

	entry := payment.Entries[0]

	_, err = b.bills.Settle(ctx, b.tenant, created.ID, bill.SettleInput{
		VoucherID: payment.ID,
		EntryID:   entry.ID,
		Amount:    amount("100"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = b.bills.Settle(ctx, b.tenant, uuid.New(), bill.SettleInput{
		VoucherID: payment.ID,
		EntryID:   entry.ID,
		Amount:    amount("100"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	got, err := b.bills.Get(ctx, b.tenant, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "250.00", got.OutstandingAmount.StringFixed(2))
}

func TestSettleLimitedByAgainstReference(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	receipt, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: b.types[numbering.CategoryReceipt].ID,
		Date:          "2026-04-02",
		Entries: []voucher.EntryInput{
			{LedgerName: "Bank", Type: ledger.Debit, Amount: amount("10")},
			{
				LedgerName: "Customer B",
				Type:       ledger.Credit,
				Amount:     amount("10"),
				BillReferences: []voucher.BillReferenceInput{
					{Reference: "INV-9", Amount: amount("10"), Type: bill.RefAgainst},
				},
			},
		},
	})
	require.NoError(t, err)

	created, err := b.bills.Create(ctx, b.tenant, bill.CreateInput{
		Number:     "INV-9",
		LedgerName: "Customer B",
		Type:       bill.TypeReceivable,
		BillDate:   "2026-04-01",
		DueDate:    "2026-04-30",
		Amount:     amount("1000"),
	})
	require.NoError(t, err)

	entry := receipt.Entries[1]

	_, err = b.bills.Settle(ctx, b.tenant, created.ID, bill.SettleInput{
		VoucherID: receipt.ID,
		EntryID:   entry.ID,
		Amount:    amount("1000"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = b.bills.Settle(ctx, b.tenant, created.ID, bill.SettleInput{
		VoucherID: receipt.ID,
		EntryID:   entry.ID,
		Amount:    amount("10"),
	})
	require.NoError(t, err)

	got, err := b.bills.Get(ctx, b.tenant, created.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPartial, got.Status)
	assert.Equal(t, "990.00", got.OutstandingAmount.StringFixed(2))
}

func TestReverseUnwindsBills(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	sale := func(number string) *voucher.Voucher {
		t.Helper()

		v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: b.types[numbering.CategorySales].ID,
			Date:          "2026-04-01",
			Entries: []voucher.EntryInput{
				{
					LedgerName: "Customer A",
					Type:       ledger.Debit,
					Amount:     amount("1000"),
					BillReferences: []voucher.BillReferenceInput{
						{Reference: number, Amount: amount("1000"), Type: bill.RefNew},
					},
				},
				{LedgerName: "Sales", Type: ledger.Credit, Amount: amount("1000")},
			},
		})
		require.NoError(t, err)

		return v
	}

	receipt := func(number, value string) *voucher.Voucher {
		t.Helper()

		v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: b.types[numbering.CategoryReceipt].ID,
			Date:          "2026-04-10",
			Entries: []voucher.EntryInput{
				{LedgerName: "Bank", Type: ledger.Debit, Amount: amount(value)},
				{
					LedgerName: "Customer A",
					Type:       ledger.Credit,
					Amount:     amount(value),
					BillReferences: []voucher.BillReferenceInput{
						{Reference: number, Amount: amount(value), Type: bill.RefAgainst},
					},
				},
			},
		})
		require.NoError(t, err)

		return v
	}

	billFor := func(v *voucher.Voucher) *bill.Bill {
		t.Helper()

		list, err := b.bills.List(ctx, b.tenant, bill.ListFilter{})
		require.NoError(t, err)

		for _, got := range list {
			if got.VoucherID != nil && *got.VoucherID == v.ID {
				return got
			}
		}

		t.Fatalf("no bill opened by %s", v.VoucherNumber)

		return nil
	}

	t.Run("ReceiptRestoresBill", func(t *testing.T) {
		invoice := sale("INV-1")
		paid := receipt("INV-1", "400")

		_, err := b.vouchers.Reverse(ctx, b.tenant, paid.ID, voucher.ReverseInput{Date: "2026-04-11"})
		require.NoError(t, err)

		got, err := b.bills.Get(ctx, b.tenant, billFor(invoice).ID)
		require.NoError(t, err)
		assert.Equal(t, bill.StatusOpen, got.Status)
		assert.Equal(t, "1000.00", got.OutstandingAmount.StringFixed(2))

		settlements, err := b.bills.Settlements(ctx, b.tenant, got.ID)
		require.NoError(t, err)
		assert.Empty(t, settlements)
	})

	t.Run("SaleCancelsOpenedBill", func(t *testing.T) {
		invoice := sale("INV-2")
		opened := billFor(invoice)

		_, err := b.vouchers.Reverse(ctx, b.tenant, invoice.ID, voucher.ReverseInput{Date: "2026-04-02"})
		require.NoError(t, err)

		got, err := b.bills.Get(ctx, b.tenant, opened.ID)
		require.NoError(t, err)
		assert.Equal(t, bill.StatusCancelled, got.Status)
	})

	t.Run("SaleSettledByOthersIsRejected", func(t *testing.T) {
		invoice := sale("INV-3")
		opened := billFor(invoice)
		paid := receipt("INV-3", "300")

		_, err := b.vouchers.Reverse(ctx, b.tenant, invoice.ID, voucher.ReverseInput{Date: "2026-04-12"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))

		got, err := b.bills.Get(ctx, b.tenant, opened.ID)
		require.NoError(t, err)
		assert.Equal(t, bill.StatusPartial, got.Status)
		assert.Equal(t, "700.00", got.OutstandingAmount.StringFixed(2))

		_, err = b.vouchers.Reverse(ctx, b.tenant, paid.ID, voucher.ReverseInput{Date: "2026-04-12"})
		require.NoError(t, err)

		_, err = b.vouchers.Reverse(ctx, b.tenant, invoice.ID, voucher.ReverseInput{Date: "2026-04-12"})
		require.NoError(t, err)

		got, err = b.bills.Get(ctx, b.tenant, opened.ID)
		require.NoError(t, err)
		assert.Equal(t, bill.StatusCancelled, got.Status)
	})
}

func TestReverseVoucher(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	journal := b.types[numbering.CategoryJournal]

	original, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: journal.ID,
		Date:          "2026-04-01",
		Entries:       pair("Rent", "Bank", "300"),
	})
	require.NoError(t, err)

	_, err = b.vouchers.Reverse(ctx, b.tenant, original.ID, voucher.ReverseInput{Date: "2026-03-31"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	reversal, err := b.vouchers.Reverse(ctx, b.tenant, original.ID, voucher.ReverseInput{Date: "2026-04-02"})
	require.NoError(t, err)

	assert.Equal(t, "JV/2", reversal.VoucherNumber)
	assert.Equal(t, original.VoucherNumber, reversal.Reference)
	assert.Equal(t, "Reversal of JV/1", reversal.Narration)
	require.NotNil(t, reversal.ReversalOf)
	assert.Equal(t, original.ID, *reversal.ReversalOf)

	require.Len(t, reversal.Entries, 2)
	assert.Equal(t, ledger.Credit, reversal.Entries[0].Type)
	assert.Equal(t, ledger.Debit, reversal.Entries[1].Type)

	_, err = b.vouchers.Reverse(ctx, b.tenant, original.ID, voucher.ReverseInput{Date: "2026-04-03"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = b.vouchers.Reverse(ctx, b.tenant, reversal.ID, voucher.ReverseInput{Date: "2026-04-03"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestTenantIsolation(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)

	v, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
		VoucherTypeID: b.types[numbering.CategoryJournal].ID,
		Date:          "2026-04-01",
		Entries:       pair("Rent", "Bank", "10"),
	})
	require.NoError(t, err)

	other := uuid.New()

	_, err = b.vouchers.Get(ctx, other, v.ID)
	assert.True(t, apperr.IsNotFound(err))

	_, err = b.vouchers.Create(ctx, other, voucher.CreateInput{
		VoucherTypeID: b.types[numbering.CategoryJournal].ID,
		Entries:       pair("Rent", "Bank", "10"),
	})
	assert.True(t, apperr.IsNotFound(err))

	list, err := b.vouchers.List(ctx, other, voucher.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListVouchersNewestFirst(t *testing.T) {
	ctx := context.Background()
	b := newBooks(t)
	journal := b.types[numbering.CategoryJournal]

	for _, date := range []string{"2026-04-01", "2026-04-03", "2026-04-02"} {
		_, err := b.vouchers.Create(ctx, b.tenant, voucher.CreateInput{
			VoucherTypeID: journal.ID,
			Date:          date,
			Entries:       pair("Rent", "Bank", "10"),
		})
		require.NoError(t, err)
	}

	from := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	list, err := b.vouchers.List(ctx, b.tenant, voucher.ListFilter{FromDate: &from})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-04-03", list[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2026-04-02", list[1].Date.Format(time.DateOnly))

	limited, err := b.vouchers.List(ctx, b.tenant, voucher.ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFindMatchTreatsPatternLiterally(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	tenant := uuid.New()

	require.NoError(t, s.CreateMapping(ctx, tenant, "50%_off", "Promotions"))

	got, err := s.FindMatch(ctx, tenant, "500 xoff")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.FindMatch(ctx, tenant, "PROMO 50%_OFF MAY")
	require.NoError(t, err)
	assert.Equal(t, "Promotions", got)
}
