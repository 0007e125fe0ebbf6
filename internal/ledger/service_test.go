package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
)

func TestService_Create(t *testing.T) {
	tenant := uuid.New()
	groupID := uuid.New()

	type testCase struct {
		name      string
		params    ledger.CreateParams
		setupMock func(m *ledger.MockRepository)
		wantErr   func(error) bool
		check     func(t *testing.T, l *ledger.Ledger)
	}

	tests := []testCase{
		{
			name:   "Success",
			params: ledger.CreateParams{Name: "Bank", Category: ledger.CategoryCurrentAsset},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetLedgerByName(gomock.Any(), tenant, "Bank").Return(nil, ledger.ErrNotFound)
				m.EXPECT().
					CreateLedger(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *ledger.Ledger) error {
						l.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, l *ledger.Ledger) {
				assert.Equal(t, ledger.Debit, l.OpeningBalanceType)
				assert.Equal(t, ledger.CategoryCurrentAsset, l.Category)
			},
		},
		{
			name:   "TakesGroupCategory",
			params: ledger.CreateParams{Name: "Rent", GroupID: &groupID, Category: ledger.CategoryCapital},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetGroup(gomock.Any(), tenant, groupID).
					Return(&ledger.Group{ID: groupID, Category: ledger.CategoryIndirectExpense}, nil)
				m.EXPECT().GetLedgerByName(gomock.Any(), tenant, "Rent").Return(nil, ledger.ErrNotFound)
				m.EXPECT().CreateLedger(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, l *ledger.Ledger) {
				assert.Equal(t, ledger.CategoryIndirectExpense, l.Category)
			},
		},
		{
			name:   "UnknownGroup",
			params: ledger.CreateParams{Name: "Rent", GroupID: &groupID},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetGroup(gomock.Any(), tenant, groupID).Return(nil, ledger.ErrNotFound)
			},
			wantErr: apperr.IsNotFound,
		},
		{
			name:    "NegativeOpening",
			params:  ledger.CreateParams{Name: "Bank", Category: ledger.CategoryCurrentAsset, OpeningBalance: decimal.NewFromInt(-1)},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "UnknownCategory",
			params:  ledger.CreateParams{Name: "Bank", Category: "MISC"},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "DuplicateName",
			params: ledger.CreateParams{Name: "bank", Category: ledger.CategoryCurrentAsset},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetLedgerByName(gomock.Any(), tenant, "bank").Return(&ledger.Ledger{Name: "Bank"}, nil)
			},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "RepoError",
			params: ledger.CreateParams{Name: "Bank", Category: ledger.CategoryCurrentAsset},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().GetLedgerByName(gomock.Any(), tenant, "Bank").Return(nil, errors.New("db error"))
			},
			wantErr: func(err error) bool { return err != nil && !apperr.IsValidation(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := ledger.NewService(repo).Create(context.Background(), tenant, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_Ensure(t *testing.T) {
	tenant := uuid.New()

	t.Run("Existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := ledger.NewMockRepository(ctrl)

		repo.EXPECT().
			GetLedgerByName(gomock.Any(), tenant, "Capital Account").
			Return(&ledger.Ledger{Name: "Capital Account", Category: ledger.CategoryCapital}, nil)

		l, err := ledger.NewService(repo).Ensure(context.Background(), tenant, "Capital Account", ledger.CategoryCapital)
		require.NoError(t, err)
		assert.Equal(t, "Capital Account", l.Name)
	})

	t.Run("Created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := ledger.NewMockRepository(ctrl)

		repo.EXPECT().
			GetLedgerByName(gomock.Any(), tenant, "Depreciation").
			Return(nil, ledger.ErrNotFound).
			Times(2)
		repo.EXPECT().CreateLedger(gomock.Any(), gomock.Any()).Return(nil)

		l, err := ledger.NewService(repo).Ensure(context.Background(), tenant, "Depreciation", ledger.CategoryIndirectExpense)
		require.NoError(t, err)
		assert.Equal(t, ledger.CategoryIndirectExpense, l.Category)
	})
}

func TestCategory_Nominal(t *testing.T) {
	tests := []struct {
		category ledger.Category
		want     bool
	}{
		{ledger.CategoryDirectIncome, true},
		{ledger.CategoryIndirectExpense, true},
		{ledger.CategoryFixedAsset, false},
		{ledger.CategoryCapital, false},
		{ledger.CategoryLoan, false},
		{"UNKNOWN", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Nominal())
		})
	}

	assert.Len(t, ledger.NominalCategories(), 4)
}

func TestBalanceOf(t *testing.T) {
	credit := ledger.BalanceOf(decimal.RequireFromString("-120.456"))
	assert.Equal(t, ledger.Credit, credit.Type)
	assert.Equal(t, "120.46", credit.Amount.StringFixed(2))

	debit := ledger.BalanceOf(decimal.Zero)
	assert.Equal(t, ledger.Debit, debit.Type)
	assert.True(t, debit.Amount.IsZero())
}
