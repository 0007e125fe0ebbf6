package numbering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
)

func TestService_CreateVoucherType(t *testing.T) {
	tenant := uuid.New()

	type testCase struct {
		name      string
		params    numbering.CreateTypeParams
		setupMock func(m *numbering.MockRepository)
		wantErr   func(error) bool
		check     func(t *testing.T, vt *numbering.VoucherType)
	}

	tests := []testCase{
		{
			name:   "Defaults",
			params: numbering.CreateTypeParams{Name: " Sales ", Category: numbering.CategorySales, Prefix: "SAL/"},
			setupMock: func(m *numbering.MockRepository) {
				m.EXPECT().
					GetVoucherTypeByName(gomock.Any(), tenant, "Sales").
					Return(nil, numbering.ErrNotFound)
				m.EXPECT().
					CreateVoucherType(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, vt *numbering.VoucherType) error {
						vt.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, vt *numbering.VoucherType) {
				assert.Equal(t, "Sales", vt.Name)
				assert.Equal(t, numbering.MethodAutomatic, vt.Method)
				assert.Equal(t, numbering.BehaviorRenumber, vt.Behavior)
				assert.Equal(t, int64(1), vt.NextNumber)
				assert.True(t, vt.IsActive)
				assert.NotEqual(t, uuid.Nil, vt.ID)
			},
		},
		{
			name:    "MissingName",
			params:  numbering.CreateTypeParams{Category: numbering.CategorySales},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "UnknownCategory",
			params:  numbering.CreateTypeParams{Name: "Odd", Category: "BARTER"},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "NegativeStart",
			params:  numbering.CreateTypeParams{Name: "Sales", Category: numbering.CategorySales, StartNumber: -4},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "DuplicateName",
			params: numbering.CreateTypeParams{Name: "Sales", Category: numbering.CategorySales},
			setupMock: func(m *numbering.MockRepository) {
				m.EXPECT().
					GetVoucherTypeByName(gomock.Any(), tenant, "Sales").
					Return(&numbering.VoucherType{Name: "Sales"}, nil)
			},
			wantErr: apperr.IsValidation,
		},
		{
			name:   "RepoError",
			params: numbering.CreateTypeParams{Name: "Sales", Category: numbering.CategorySales},
			setupMock: func(m *numbering.MockRepository) {
				m.EXPECT().
					GetVoucherTypeByName(gomock.Any(), tenant, "Sales").
					Return(nil, errors.New("db error"))
			},
			wantErr: func(err error) bool { return err != nil && !apperr.IsValidation(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := numbering.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := numbering.NewService(repo)
			got, err := svc.CreateVoucherType(context.Background(), tenant, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_UpdateVoucherType(t *testing.T) {
	tenant := uuid.New()
	id := uuid.New()

	existing := func() *numbering.VoucherType {
		return &numbering.VoucherType{
			ID:         id,
			TenantID:   tenant,
			Name:       "Sales",
			Category:   numbering.CategorySales,
			Method:     numbering.MethodAutomatic,
			Behavior:   numbering.BehaviorRenumber,
			NextNumber: 10,
			IsActive:   true,
		}
	}

	t.Run("MovesCounterForward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := numbering.NewMockRepository(ctrl)

		repo.EXPECT().GetVoucherType(gomock.Any(), tenant, id).Return(existing(), nil)
		repo.EXPECT().
			UpdateVoucherType(gomock.Any(), gomock.Any(), new(int64(50))).
			DoAndReturn(func(_ context.Context, vt *numbering.VoucherType, next *int64) error {
				vt.NextNumber = *next
				return nil
			})

		got, err := numbering.NewService(repo).UpdateVoucherType(context.Background(), tenant, id, numbering.UpdateTypeParams{
			NextNumber: new(int64(50)),
			Prefix:     new("S-"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), got.NextNumber)
		assert.Equal(t, "S-", got.Prefix)
	})

	t.Run("LeavesCounterAloneWithoutNextNumber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := numbering.NewMockRepository(ctrl)

		repo.EXPECT().GetVoucherType(gomock.Any(), tenant, id).Return(existing(), nil)
		repo.EXPECT().UpdateVoucherType(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)

		_, err := numbering.NewService(repo).UpdateVoucherType(context.Background(), tenant, id, numbering.UpdateTypeParams{
			Prefix: new("S-"),
		})
		require.NoError(t, err)
	})

	t.Run("RefusesToMoveCounterBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := numbering.NewMockRepository(ctrl)

		repo.EXPECT().GetVoucherType(gomock.Any(), tenant, id).Return(existing(), nil)

		_, err := numbering.NewService(repo).UpdateVoucherType(context.Background(), tenant, id, numbering.UpdateTypeParams{
			NextNumber: new(int64(3)),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := numbering.NewMockRepository(ctrl)

		repo.EXPECT().GetVoucherType(gomock.Any(), tenant, id).Return(nil, numbering.ErrNotFound)

		_, err := numbering.NewService(repo).UpdateVoucherType(context.Background(), tenant, id, numbering.UpdateTypeParams{
			IsActive: new(false),
		})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_NextVoucherNumber(t *testing.T) {
	tenant := uuid.New()
	typeID := uuid.New()
	seriesID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := numbering.NewMockRepository(ctrl)

	repo.EXPECT().
		GetVoucherType(gomock.Any(), tenant, typeID).
		Return(&numbering.VoucherType{ID: typeID, Prefix: "SAL/", NextNumber: 7}, nil).
		Times(2)
	repo.EXPECT().
		GetSeries(gomock.Any(), tenant, typeID, seriesID).
		Return(&numbering.Series{Prefix: "B/", Suffix: "/26", NextNumber: 3}, nil)

	svc := numbering.NewService(repo)

	got, err := svc.NextVoucherNumber(context.Background(), tenant, typeID, nil)
	require.NoError(t, err)
	assert.Equal(t, "SAL/7", got)

	got, err = svc.NextVoucherNumber(context.Background(), tenant, typeID, &seriesID)
	require.NoError(t, err)
	assert.Equal(t, "B/3/26", got)
}

func TestService_SeedDefaults(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := numbering.NewMockRepository(ctrl)

	repo.EXPECT().
		GetVoucherTypeByName(gomock.Any(), tenant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, name string) (*numbering.VoucherType, error) {
			if name == "Journal" {
				return &numbering.VoucherType{Name: name}, nil
			}

			return nil, numbering.ErrNotFound
		}).
		AnyTimes()
	repo.EXPECT().
		CreateVoucherType(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(numbering.DefaultTypes) - 1)

	created, err := numbering.NewService(repo).SeedDefaults(context.Background(), tenant)
	require.NoError(t, err)
	assert.Len(t, created, len(numbering.DefaultTypes)-1)

	for _, vt := range created {
		assert.NotEqual(t, "Journal", vt.Name)
	}
}

type fakeCounter struct {
	typeNext   int64
	seriesNext int64
}

func (c *fakeCounter) IncrementTypeCounter(context.Context, uuid.UUID, uuid.UUID) (numbering.Reservation, error) {
	r := numbering.Reservation{Prefix: "JV/", Value: c.typeNext}
	c.typeNext++

	return r, nil
}

func (c *fakeCounter) IncrementSeriesCounter(_ context.Context, _, _, seriesID uuid.UUID) (numbering.Reservation, error) {
	if seriesID == uuid.Nil {
		return numbering.Reservation{}, numbering.ErrNotFound
	}

	r := numbering.Reservation{Prefix: "S", Suffix: "X", Value: c.seriesNext}
	c.seriesNext++

	return r, nil
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	c := &fakeCounter{typeNext: 1, seriesNext: 40}

	for _, want := range []string{"JV/1", "JV/2", "JV/3"} {
		got, err := numbering.Reserve(ctx, c, uuid.New(), uuid.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	series := uuid.New()

	got, err := numbering.Reserve(ctx, c, uuid.New(), uuid.New(), &series)
	require.NoError(t, err)
	assert.Equal(t, "S40X", got)
	assert.Equal(t, int64(4), c.typeNext)

	_, err = numbering.Reserve(ctx, c, uuid.New(), uuid.New(), &uuid.Nil)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
