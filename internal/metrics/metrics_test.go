package metrics_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/metrics"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "Nil", err: nil, want: "none"},
		{name: "Validation", err: apperr.Validation("amount", "must be positive"), want: "validation"},
		{name: "WrappedNotFound", err: fmt.Errorf("loading: %w", apperr.NotFound("bill", 1)), want: "not_found"},
		{name: "Conflict", err: apperr.Conflict("creating voucher", errors.New("40001")), want: "conflict"},
		{name: "Other", err: errors.New("boom"), want: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.ErrorKind(tt.err))
		})
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", metrics.Outcome(nil))
	assert.Equal(t, "validation", metrics.Outcome(apperr.Validation("", "nothing to post")))
}
