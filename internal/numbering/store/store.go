package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/database"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
)

// Queries runs the numbering statements against a database or a transaction.
type Queries struct {
	q database.Querier
}

func NewQueries(q database.Querier) *Queries {
	return &Queries{q: q}
}

type Store struct {
	*Queries
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{Queries: NewQueries(db), db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTypeColumns = `
	id, tenant_id, name, category, numbering_method, numbering_behavior, prefix, suffix,
	next_number, allow_manual_override, allow_duplicates, is_active, created_at, updated_at
`

func scanVoucherType(s scanner) (*numbering.VoucherType, error) {
	var vt numbering.VoucherType

	var category, method, behavior string

	if err := s.Scan(
		&vt.ID, &vt.TenantID, &vt.Name, &category, &method, &behavior, &vt.Prefix, &vt.Suffix,
		&vt.NextNumber, &vt.AllowManualOverride, &vt.AllowDuplicates, &vt.IsActive, &vt.CreatedAt, &vt.UpdatedAt,
	); err != nil {
		return nil, err
	}

	vt.Category = numbering.Category(category)
	vt.Method = numbering.Method(method)
	vt.Behavior = numbering.Behavior(behavior)

	return &vt, nil
}

const selectSeriesColumns = `
	id, tenant_id, voucher_type_id, name, prefix, suffix, start_number, next_number, is_default, created_at, updated_at
`

func scanSeries(s scanner) (*numbering.Series, error) {
	var series numbering.Series

	if err := s.Scan(
		&series.ID, &series.TenantID, &series.VoucherTypeID, &series.Name, &series.Prefix, &series.Suffix,
		&series.StartNumber, &series.NextNumber, &series.IsDefault, &series.CreatedAt, &series.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &series, nil
}

// IncrementTypeCounter bumps the voucher type counter and returns the value
// it held before, in a single statement.
func (q *Queries) IncrementTypeCounter(ctx context.Context, tenantID, voucherTypeID uuid.UUID) (numbering.Reservation, error) {
	query := `
		UPDATE voucher_types
		SET next_number = next_number + 1, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING prefix, suffix, next_number - 1
	`

	var r numbering.Reservation

	err := q.q.QueryRowContext(ctx, query, voucherTypeID, tenantID).Scan(&r.Prefix, &r.Suffix, &r.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, numbering.ErrNotFound
		}

		return r, database.Wrap("incrementing voucher type counter", err)
	}

	return r, nil
}

func (q *Queries) IncrementSeriesCounter(ctx context.Context, tenantID, voucherTypeID, seriesID uuid.UUID) (numbering.Reservation, error) {
	query := `
		UPDATE voucher_numbering_series
		SET next_number = next_number + 1, updated_at = NOW()
		WHERE id = $1 AND voucher_type_id = $2 AND tenant_id = $3
		RETURNING prefix, suffix, next_number - 1
	`

	var r numbering.Reservation

	err := q.q.QueryRowContext(ctx, query, seriesID, voucherTypeID, tenantID).Scan(&r.Prefix, &r.Suffix, &r.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, numbering.ErrNotFound
		}

		return r, database.Wrap("incrementing series counter", err)
	}

	return r, nil
}

func (q *Queries) GetVoucherType(ctx context.Context, tenantID, id uuid.UUID) (*numbering.VoucherType, error) {
	query := `SELECT ` + selectTypeColumns + ` FROM voucher_types WHERE id = $1 AND tenant_id = $2`

	vt, err := scanVoucherType(q.q.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, numbering.ErrNotFound
		}

		return nil, fmt.Errorf("getting voucher type: %w", err)
	}

	return vt, nil
}

func (q *Queries) GetVoucherTypeByName(ctx context.Context, tenantID uuid.UUID, name string) (*numbering.VoucherType, error) {
	query := `SELECT ` + selectTypeColumns + ` FROM voucher_types WHERE tenant_id = $1 AND lower(name) = lower($2)`

	vt, err := scanVoucherType(q.q.QueryRowContext(ctx, query, tenantID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, numbering.ErrNotFound
		}

		return nil, fmt.Errorf("getting voucher type: %w", err)
	}

	return vt, nil
}

func (q *Queries) GetSeries(ctx context.Context, tenantID, voucherTypeID, id uuid.UUID) (*numbering.Series, error) {
	query := `SELECT ` + selectSeriesColumns + `
		FROM voucher_numbering_series
		WHERE id = $1 AND voucher_type_id = $2 AND tenant_id = $3`

	series, err := scanSeries(q.q.QueryRowContext(ctx, query, id, voucherTypeID, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, numbering.ErrNotFound
		}

		return nil, fmt.Errorf("getting numbering series: %w", err)
	}

	return series, nil
}

func (s *Store) CreateVoucherType(ctx context.Context, vt *numbering.VoucherType) error {
	query := `
		INSERT INTO voucher_types (
			tenant_id, name, category, numbering_method, numbering_behavior, prefix, suffix,
			next_number, allow_manual_override, allow_duplicates, is_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		vt.TenantID,
		vt.Name,
		vt.Category,
		vt.Method,
		vt.Behavior,
		vt.Prefix,
		vt.Suffix,
		vt.NextNumber,
		vt.AllowManualOverride,
		vt.AllowDuplicates,
		vt.IsActive,
	).Scan(&vt.ID, &vt.CreatedAt)
	if err != nil {
		return database.Wrap("creating voucher type", err)
	}

	return nil
}

func (s *Store) ListVoucherTypes(ctx context.Context, tenantID uuid.UUID) ([]*numbering.VoucherType, error) {
	query := `SELECT ` + selectTypeColumns + ` FROM voucher_types WHERE tenant_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing voucher types: %w", err)
	}
	defer rows.Close()

	var types []*numbering.VoucherType

	for rows.Next() {
		vt, err := scanVoucherType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning voucher type: %w", err)
		}

		types = append(types, vt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating voucher type rows: %w", err)
	}

	return types, nil
}

func (s *Store) UpdateVoucherType(ctx context.Context, vt *numbering.VoucherType, nextNumber *int64) error {
	// The counter is compared and written in the same statement so a number
	// reserved concurrently is never handed out again.
	query := `
		UPDATE voucher_types
		SET name = $1, numbering_method = $2, numbering_behavior = $3, prefix = $4, suffix = $5,
			next_number = CASE
				WHEN $6::BIGINT IS NULL THEN next_number
				WHEN $8 THEN $6::BIGINT
				ELSE GREATEST(next_number, $6::BIGINT)
			END,
			allow_manual_override = $7, allow_duplicates = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10 AND tenant_id = $11
		RETURNING next_number, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		vt.Name,
		vt.Method,
		vt.Behavior,
		vt.Prefix,
		vt.Suffix,
		nextNumber,
		vt.AllowManualOverride,
		vt.AllowDuplicates,
		vt.IsActive,
		vt.ID,
		vt.TenantID,
	).Scan(&vt.NextNumber, &vt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return numbering.ErrNotFound
		}

		return database.Wrap("updating voucher type", err)
	}

	return nil
}

// CreateSeries inserts the series and, when it is the default, clears the
// flag on the other series of the voucher type in the same transaction.
func (s *Store) CreateSeries(ctx context.Context, series *numbering.Series) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if series.IsDefault {
		if _, err := dbTx.ExecContext(ctx, `
			UPDATE voucher_numbering_series
			SET is_default = FALSE, updated_at = NOW()
			WHERE voucher_type_id = $1 AND tenant_id = $2 AND is_default
		`, series.VoucherTypeID, series.TenantID); err != nil {
			return database.Wrap("clearing default series", err)
		}
	}

	query := `
		INSERT INTO voucher_numbering_series (
			tenant_id, voucher_type_id, name, prefix, suffix, start_number, next_number, is_default, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		series.TenantID,
		series.VoucherTypeID,
		series.Name,
		series.Prefix,
		series.Suffix,
		series.StartNumber,
		series.NextNumber,
		series.IsDefault,
	).Scan(&series.ID, &series.CreatedAt)
	if err != nil {
		return database.Wrap("creating numbering series", err)
	}

	if err := dbTx.Commit(); err != nil {
		return database.Wrap("committing numbering series", err)
	}

	return nil
}

func (s *Store) ListSeries(ctx context.Context, tenantID, voucherTypeID uuid.UUID) ([]*numbering.Series, error) {
	query := `SELECT ` + selectSeriesColumns + `
		FROM voucher_numbering_series
		WHERE tenant_id = $1 AND voucher_type_id = $2
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, tenantID, voucherTypeID)
	if err != nil {
		return nil, fmt.Errorf("listing numbering series: %w", err)
	}
	defer rows.Close()

	var list []*numbering.Series

	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning numbering series: %w", err)
		}

		list = append(list, series)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating series rows: %w", err)
	}

	return list, nil
}
