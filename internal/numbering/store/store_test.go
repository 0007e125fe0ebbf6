package store_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgr/internal/database/dbtest"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering/store"
)

func createType(t *testing.T, s *store.Store, next int64) *numbering.VoucherType {
	t.Helper()

	vt := &numbering.VoucherType{
		TenantID:   uuid.New(),
		Name:       "Sales",
		Category:   numbering.CategorySales,
		Method:     numbering.MethodAutomatic,
		Behavior:   numbering.BehaviorRenumber,
		Prefix:     "SAL/",
		NextNumber: next,
		IsActive:   true,
	}
	require.NoError(t, s.CreateVoucherType(context.Background(), vt))

	return vt
}

func TestIncrementTypeCounter(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	s := store.New(db)

	vt := createType(t, s, 7)

	t.Run("ReturnsValueBeforeIncrement", func(t *testing.T) {
		r, err := s.IncrementTypeCounter(ctx, vt.TenantID, vt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), r.Value)
		assert.Equal(t, "SAL/", r.Prefix)

		got, err := s.GetVoucherType(ctx, vt.TenantID, vt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(8), got.NextNumber)
	})

	t.Run("RollbackReleasesNumber", func(t *testing.T) {
		dbTx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)

		r, err := store.NewQueries(dbTx).IncrementTypeCounter(ctx, vt.TenantID, vt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(8), r.Value)
		require.NoError(t, dbTx.Rollback())

		r, err = s.IncrementTypeCounter(ctx, vt.TenantID, vt.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(8), r.Value)
	})

	t.Run("OtherTenantNotFound", func(t *testing.T) {
		_, err := s.IncrementTypeCounter(ctx, uuid.New(), vt.ID)
		assert.ErrorIs(t, err, numbering.ErrNotFound)
	})
}

func TestIncrementTypeCounterConcurrent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	s := store.New(db)

	vt := createType(t, s, 1)

	const workers = 20

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)

	for range workers {
		wg.Go(func() {
			err := withTx(ctx, db, func(q *store.Queries) error {
				r, err := q.IncrementTypeCounter(ctx, vt.TenantID, vt.ID)
				if err != nil {
					return err
				}

				mu.Lock()
				seen[r.Value] = true
				mu.Unlock()

				return nil
			})
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	assert.Len(t, seen, workers)

	for n := range int64(workers) {
		assert.True(t, seen[n+1], "number %d not issued", n+1)
	}
}

func withTx(ctx context.Context, db *sql.DB, fn func(q *store.Queries) error) error {
	dbTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbTx.Rollback()

	if err := fn(store.NewQueries(dbTx)); err != nil {
		return err
	}

	return dbTx.Commit()
}

func TestUpdateVoucherTypeCounter(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	s := store.New(db)

	tests := []struct {
		name            string
		allowDuplicates bool
		nextNumber      *int64
		want            int64
	}{
		{name: "NilLeavesCounter", want: 10},
		{name: "MovesForward", nextNumber: new(int64(25)), want: 25},
		{name: "StaleValueIgnored", nextNumber: new(int64(3)), want: 10},
		{name: "DuplicatesAllowMovingBack", allowDuplicates: true, nextNumber: new(int64(3)), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vt := createType(t, s, 10)
			vt.Prefix = "S-"
			vt.AllowDuplicates = tt.allowDuplicates

			require.NoError(t, s.UpdateVoucherType(ctx, vt, tt.nextNumber))
			assert.Equal(t, tt.want, vt.NextNumber)
			assert.NotNil(t, vt.UpdatedAt)

			got, err := s.GetVoucherType(ctx, vt.TenantID, vt.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.NextNumber)
			assert.Equal(t, "S-", got.Prefix)
		})
	}

	t.Run("CounterReservedInBetween", func(t *testing.T) {
		vt := createType(t, s, 10)

		// A voucher posted after vt was read moves the counter to 11.
		_, err := s.IncrementTypeCounter(ctx, vt.TenantID, vt.ID)
		require.NoError(t, err)

		require.NoError(t, s.UpdateVoucherType(ctx, vt, new(int64(10))))
		assert.Equal(t, int64(11), vt.NextNumber)
	})

	t.Run("Missing", func(t *testing.T) {
		vt := createType(t, s, 1)
		vt.ID = uuid.New()

		err := s.UpdateVoucherType(ctx, vt, nil)
		assert.ErrorIs(t, err, numbering.ErrNotFound)
	})
}
