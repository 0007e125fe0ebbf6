package numbering

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

// ErrNotFound is returned by counters and repositories when the voucher type
// or series does not exist for the tenant.
var ErrNotFound = errors.New("numbering record not found")

// Reservation is the counter state observed by one increment.
type Reservation struct {
	Prefix string
	Suffix string
	Value  int64
}

func (r Reservation) Number() string {
	return Format(r.Prefix, r.Value, r.Suffix)
}

// Counter increments a stored counter and returns the value it held before.
// Implementations must do the read and the increment in one statement on the
// caller's transaction.
type Counter interface {
	IncrementTypeCounter(ctx context.Context, tenantID, voucherTypeID uuid.UUID) (Reservation, error)
	IncrementSeriesCounter(ctx context.Context, tenantID, voucherTypeID, seriesID uuid.UUID) (Reservation, error)
}

// Reserve issues the next voucher number from the series when one is given,
// otherwise from the voucher type itself.
func Reserve(ctx context.Context, c Counter, tenantID, voucherTypeID uuid.UUID, seriesID *uuid.UUID) (string, error) {
	var (
		r   Reservation
		err error
	)

	if seriesID != nil {
		r, err = c.IncrementSeriesCounter(ctx, tenantID, voucherTypeID, *seriesID)
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("numbering series", *seriesID)
		}
	} else {
		r, err = c.IncrementTypeCounter(ctx, tenantID, voucherTypeID)
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("voucher type", voucherTypeID)
		}
	}

	if err != nil {
		return "", fmt.Errorf("reserving voucher number: %w", err)
	}

	return r.Number(), nil
}
