package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/matching"
)

func TestService_Resolve(t *testing.T) {
	tenant := uuid.New()

	tests := []struct {
		name      string
		raw       string
		setupMock func(m *matching.MockRepository)
		want      string
		wantErr   bool
	}{
		{
			name: "Learned",
			raw:  "  TRF ACME LDA 0042 ",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), tenant, "TRF ACME LDA 0042").Return("Acme Ltd", nil)
			},
			want: "Acme Ltd",
		},
		{
			name: "FallsBackToRaw",
			raw:  "Petty Cash",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), tenant, "Petty Cash").Return("", nil)
			},
			want: "Petty Cash",
		},
		{
			name: "RepoError",
			raw:  "Bank",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), tenant, "Bank").Return("", errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := matching.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := matching.NewService(repo).Resolve(context.Background(), tenant, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	tenant := uuid.New()

	ctrl := gomock.NewController(t)
	repo := matching.NewMockRepository(ctrl)

	repo.EXPECT().CreateMapping(gomock.Any(), tenant, "ACME", "Acme Ltd").Return(nil)

	svc := matching.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), tenant, " ACME ", "Acme Ltd"))

	err := svc.Learn(context.Background(), tenant, "", "Acme Ltd")
	assert.True(t, apperr.IsValidation(err))

	err = svc.Learn(context.Background(), tenant, "ACME", " ")
	assert.True(t, apperr.IsValidation(err))
}
