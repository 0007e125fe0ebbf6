package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	billstore "github.com/MrJamesThe3rd/ledgr/internal/bill/store"
	"github.com/MrJamesThe3rd/ledgr/internal/database"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	numberingstore "github.com/MrJamesThe3rd/ledgr/internal/numbering/store"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectVoucherColumns = `
	id, tenant_id, voucher_type_id, numbering_series_id, voucher_number, date,
	reference, narration, total_amount, created_by, reversal_of, created_at
`

func scanVoucher(s scanner) (*voucher.Voucher, error) {
	var v voucher.Voucher

	if err := s.Scan(
		&v.ID, &v.TenantID, &v.VoucherTypeID, &v.SeriesID, &v.VoucherNumber, &v.Date,
		&v.Reference, &v.Narration, &v.TotalAmount, &v.CreatedBy, &v.ReversalOf, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

// loadEntries attaches entries and their bill references to the vouchers.
func loadEntries(ctx context.Context, q database.Querier, vouchers []*voucher.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*voucher.Voucher, len(vouchers))
	ids := make([]string, 0, len(vouchers))

	for _, v := range vouchers {
		byID[v.ID] = v
		ids = append(ids, v.ID.String())
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, voucher_id, line_no, ledger_name, ledger_code, entry_type, amount, narration, cost_center, cost_category
		FROM voucher_entries
		WHERE voucher_id = ANY($1::uuid[])
		ORDER BY voucher_id, line_no ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("loading voucher entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[uuid.UUID]*voucher.Entry)

	for rows.Next() {
		var (
			e         voucher.Entry
			entryType string
		)

		if err := rows.Scan(
			&e.ID, &e.VoucherID, &e.LineNo, &e.LedgerName, &e.LedgerCode, &entryType, &e.Amount,
			&e.Narration, &e.CostCenter, &e.CostCategory,
		); err != nil {
			return fmt.Errorf("scanning voucher entry: %w", err)
		}

		e.Type = ledger.Side(entryType)
		entries[e.ID] = &e

		v := byID[e.VoucherID]
		v.Entries = append(v.Entries, &e)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating voucher entry rows: %w", err)
	}

	refRows, err := q.QueryContext(ctx, `
		SELECT br.id, br.entry_id, br.reference, br.amount, br.ref_type, br.due_date, br.remarks
		FROM bill_references br
		JOIN voucher_entries e ON e.id = br.entry_id
		WHERE e.voucher_id = ANY($1::uuid[])
		ORDER BY br.entry_id
	`, ids)
	if err != nil {
		return fmt.Errorf("loading bill references: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var (
			ref     voucher.BillReference
			refType string
		)

		if err := refRows.Scan(&ref.ID, &ref.EntryID, &ref.Reference, &ref.Amount, &refType, &ref.DueDate, &ref.Remarks); err != nil {
			return fmt.Errorf("scanning bill reference: %w", err)
		}

		ref.Type = bill.RefType(refType)

		if e, ok := entries[ref.EntryID]; ok {
			e.BillReferences = append(e.BillReferences, &ref)
		}
	}

	if err := refRows.Err(); err != nil {
		return fmt.Errorf("iterating bill reference rows: %w", err)
	}

	return nil
}

func (s *Store) GetVoucher(ctx context.Context, tenantID, id uuid.UUID) (*voucher.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM vouchers WHERE id = $1 AND tenant_id = $2`

	v, err := scanVoucher(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, voucher.ErrNotFound
		}

		return nil, fmt.Errorf("getting voucher: %w", err)
	}

	if err := loadEntries(ctx, s.db, []*voucher.Voucher{v}); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Store) ListVouchers(ctx context.Context, tenantID uuid.UUID, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM vouchers WHERE tenant_id = $1`
	args := []any{tenantID}
	argIdx := 2

	if filter.VoucherTypeID != nil {
		query += fmt.Sprintf(" AND voucher_type_id = $%d", argIdx)
		args = append(args, *filter.VoucherTypeID)
		argIdx++
	}

	if filter.FromDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.FromDate)
		argIdx++
	}

	if filter.ToDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.ToDate)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []*voucher.Voucher

	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning voucher: %w", err)
		}

		vouchers = append(vouchers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating voucher rows: %w", err)
	}

	if err := loadEntries(ctx, s.db, vouchers); err != nil {
		return nil, err
	}

	return vouchers, nil
}

type (
	counterQueries = numberingstore.Queries
	billQueries    = billstore.Queries
)

// tx runs the numbering and bill statements on the voucher's transaction.
type tx struct {
	*counterQueries
	*billQueries
	dbTx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (voucher.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning voucher tx: %w", err)
	}

	return &tx{
		counterQueries: numberingstore.NewQueries(dbTx),
		billQueries:    billstore.NewQueries(dbTx),
		dbTx:           dbTx,
	}, nil
}

func (t *tx) Commit() error {
	if err := t.dbTx.Commit(); err != nil {
		return database.Wrap("committing voucher", err)
	}

	return nil
}

func (t *tx) Rollback() error {
	if err := t.dbTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

// numberLockKey names the advisory lock for one number of a voucher type.
// The series is left out since series of a type share one number space.
func numberLockKey(tenantID, voucherTypeID uuid.UUID, number string) int64 {
	h := fnv.New64a()
	h.Write(tenantID[:])
	h.Write(voucherTypeID[:])
	h.Write([]byte(number))

	return int64(h.Sum64())
}

func (t *tx) VoucherNumberExists(ctx context.Context, tenantID, voucherTypeID uuid.UUID, number string) (bool, error) {
	if _, err := t.dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", numberLockKey(tenantID, voucherTypeID, number)); err != nil {
		return false, database.Wrap("acquiring voucher number lock", err)
	}

	var exists bool

	err := t.dbTx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vouchers WHERE tenant_id = $1 AND voucher_type_id = $2 AND voucher_number = $3
		)
	`, tenantID, voucherTypeID, number).Scan(&exists)
	if err != nil {
		return false, database.Wrap("checking voucher number", err)
	}

	return exists, nil
}

func (t *tx) LockVoucher(ctx context.Context, tenantID, id uuid.UUID) (*voucher.Voucher, error) {
	query := `SELECT ` + selectVoucherColumns + ` FROM vouchers WHERE id = $1 AND tenant_id = $2 FOR UPDATE`

	v, err := scanVoucher(t.dbTx.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, voucher.ErrNotFound
		}

		return nil, database.Wrap("locking voucher", err)
	}

	if err := loadEntries(ctx, t.dbTx, []*voucher.Voucher{v}); err != nil {
		return nil, err
	}

	return v, nil
}

func (t *tx) ReversalExists(ctx context.Context, tenantID, voucherID uuid.UUID) (bool, error) {
	var exists bool

	err := t.dbTx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM vouchers WHERE tenant_id = $1 AND reversal_of = $2)`,
		tenantID, voucherID,
	).Scan(&exists)
	if err != nil {
		return false, database.Wrap("checking reversal", err)
	}

	return exists, nil
}

func (t *tx) InsertVoucher(ctx context.Context, v *voucher.Voucher) error {
	err := t.dbTx.QueryRowContext(ctx, `
		INSERT INTO vouchers (
			tenant_id, voucher_type_id, numbering_series_id, voucher_number, date,
			reference, narration, total_amount, created_by, reversal_of, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`,
		v.TenantID,
		v.VoucherTypeID,
		v.SeriesID,
		v.VoucherNumber,
		v.Date,
		v.Reference,
		v.Narration,
		v.TotalAmount,
		v.CreatedBy,
		v.ReversalOf,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return database.Wrap("creating voucher", err)
	}

	entryQuery := `
		INSERT INTO voucher_entries (
			voucher_id, line_no, ledger_name, ledger_code, entry_type, amount, narration, cost_center, cost_category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	refQuery := `
		INSERT INTO bill_references (entry_id, reference, amount, ref_type, due_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for _, e := range v.Entries {
		e.VoucherID = v.ID

		err := t.dbTx.QueryRowContext(ctx, entryQuery,
			e.VoucherID,
			e.LineNo,
			e.LedgerName,
			e.LedgerCode,
			e.Type,
			e.Amount,
			e.Narration,
			e.CostCenter,
			e.CostCategory,
		).Scan(&e.ID)
		if err != nil {
			return database.Wrap("creating voucher entry", err)
		}

		for _, ref := range e.BillReferences {
			ref.EntryID = e.ID

			err := t.dbTx.QueryRowContext(ctx, refQuery,
				ref.EntryID,
				ref.Reference,
				ref.Amount,
				ref.Type,
				ref.DueDate,
				ref.Remarks,
			).Scan(&ref.ID)
			if err != nil {
				return database.Wrap("creating bill reference", err)
			}
		}
	}

	return nil
}
