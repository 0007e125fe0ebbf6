package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		conflict   bool
		message    string
	}{
		{
			name:       "Validation",
			err:        apperr.Validation("entries", "need at least %d entries", 2),
			validation: true,
			message:    "entries: need at least 2 entries",
		},
		{
			name:     "NotFound",
			err:      apperr.NotFound("voucher type", "abc"),
			notFound: true,
			message:  "voucher type abc not found",
		},
		{
			name:     "Conflict",
			err:      apperr.Conflict("creating voucher", errors.New("serialization failure")),
			conflict: true,
			message:  "creating voucher: concurrent modification, retry the operation: serialization failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)

			assert.Equal(t, tt.validation, apperr.IsValidation(wrapped))
			assert.Equal(t, tt.notFound, apperr.IsNotFound(wrapped))
			assert.Equal(t, tt.conflict, apperr.IsConflict(wrapped))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestValidationError_NoField(t *testing.T) {
	err := apperr.Validation("", "nothing to close")
	assert.Equal(t, "nothing to close", err.Error())

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
