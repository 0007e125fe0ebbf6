package database_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantConflict bool
	}{
		{name: "SerializationFailure", err: &pgconn.PgError{Code: "40001"}, wantConflict: true},
		{name: "Deadlock", err: &pgconn.PgError{Code: "40P01"}, wantConflict: true},
		{name: "UniqueViolation", err: &pgconn.PgError{Code: "23505"}, wantConflict: true},
		{name: "SyntaxError", err: &pgconn.PgError{Code: "42601"}, wantConflict: false},
		{name: "Plain", err: errors.New("connection reset"), wantConflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := database.Wrap("inserting voucher", tt.err)

			assert.Equal(t, tt.wantConflict, apperr.IsConflict(got))
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), "inserting voucher")
		})
	}

	assert.NoError(t, database.Wrap("noop", nil))
}
