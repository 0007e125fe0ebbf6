package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

// Queries runs the bill statements against a database or a transaction.
// Voucher creation uses it on its own transaction.
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

const selectBillColumns = `
	id, tenant_id, bill_number, ledger_name, bill_type, bill_date, due_date,
	original_amount, outstanding_amount, status, voucher_id, entry_id, remarks, created_at, updated_at
`

func scanBill(s scanner) (*bill.Bill, error) {
	var b bill.Bill

	var billType, status string

	if err := s.Scan(
		&b.ID, &b.TenantID, &b.Number, &b.LedgerName, &billType, &b.BillDate, &b.DueDate,
		&b.OriginalAmount, &b.OutstandingAmount, &status, &b.VoucherID, &b.EntryID, &b.Remarks, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Type = bill.Type(billType)
	b.Status = bill.Status(status)

	return &b, nil
}

func (q *Queries) InsertBill(ctx context.Context, b *bill.Bill) error {
	query := `
		INSERT INTO bills (
			tenant_id, bill_number, ledger_name, bill_type, bill_date, due_date,
			original_amount, outstanding_amount, status, voucher_id, entry_id, remarks, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`

	err := q.q.QueryRowContext(ctx, query,
		b.TenantID,
		b.Number,
		b.LedgerName,
		b.Type,
		b.BillDate,
		b.DueDate,
		b.OriginalAmount,
		b.OutstandingAmount,
		b.Status,
		b.VoucherID,
		b.EntryID,
		b.Remarks,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return database.Wrap("creating bill", err)
	}

	return nil
}

func (q *Queries) LockOpenBill(ctx context.Context, tenantID uuid.UUID, ledgerName, number string) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE tenant_id = $1 AND lower(ledger_name) = lower($2) AND bill_number = $3
			AND status IN ('OPEN', 'PARTIAL')
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE`

	b, err := scanBill(q.q.QueryRowContext(ctx, query, tenantID, ledgerName, strings.TrimSpace(number)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bill.ErrNotFound
		}

		return nil, database.Wrap("locking bill", err)
	}

	return b, nil
}

func (q *Queries) LockBill(ctx context.Context, tenantID, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + ` FROM bills WHERE id = $1 AND tenant_id = $2 FOR UPDATE`

	b, err := scanBill(q.q.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bill.ErrNotFound
		}

		return nil, database.Wrap("locking bill", err)
	}

	return b, nil
}

func (q *Queries) UpdateBillBalance(ctx context.Context, b *bill.Bill) error {
	query := `
		UPDATE bills
		SET outstanding_amount = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4
		RETURNING updated_at
	`

	err := q.q.QueryRowContext(ctx, query, b.OutstandingAmount, b.Status, b.ID, b.TenantID).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bill.ErrNotFound
		}

		return database.Wrap("updating bill", err)
	}

	return nil
}

func (q *Queries) InsertSettlement(ctx context.Context, s *bill.Settlement) error {
	query := `
		INSERT INTO bill_settlements (bill_id, voucher_id, entry_id, amount, settled_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, settled_at
	`

	err := q.q.QueryRowContext(ctx, query, s.BillID, s.VoucherID, s.EntryID, s.Amount).Scan(&s.ID, &s.SettledAt)
	if err != nil {
		return database.Wrap("recording settlement", err)
	}

	return nil
}

func (q *Queries) SettlementExists(ctx context.Context, billID, entryID uuid.UUID) (bool, error) {
	var exists bool

	err := q.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bill_settlements WHERE bill_id = $1 AND entry_id = $2)`,
		billID, entryID,
	).Scan(&exists)
	if err != nil {
		return false, database.Wrap("checking settlement", err)
	}

	return exists, nil
}

func (q *Queries) AgainstReferenceBalance(ctx context.Context, tenantID, voucherID, entryID uuid.UUID, ledgerName, number string) (decimal.Decimal, bool, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(br.amount), 0) - COALESCE((
				SELECT SUM(s.amount)
				FROM bill_settlements s
				JOIN bills b ON b.id = s.bill_id
				WHERE s.entry_id = $3 AND b.tenant_id = $1
					AND lower(b.ledger_name) = lower($4) AND b.bill_number = $5
			), 0)
		FROM bill_references br
		JOIN voucher_entries e ON e.id = br.entry_id
		JOIN vouchers v ON v.id = e.voucher_id
		WHERE v.tenant_id = $1 AND v.id = $2 AND e.id = $3
			AND lower(e.ledger_name) = lower($4)
			AND br.reference = $5 AND br.ref_type = 'AGAINST'
	`

	var (
		refs      int
		available decimal.Decimal
	)

	if err := q.q.QueryRowContext(ctx, query, tenantID, voucherID, entryID, ledgerName, number).Scan(&refs, &available); err != nil {
		return decimal.Zero, false, database.Wrap("checking bill reference", err)
	}

	if refs == 0 {
		return decimal.Zero, false, nil
	}

	return available, true, nil
}

func scanSettlements(rows *sql.Rows) ([]*bill.Settlement, error) {
	defer rows.Close()

	var list []*bill.Settlement

	for rows.Next() {
		var st bill.Settlement
		if err := rows.Scan(&st.ID, &st.BillID, &st.VoucherID, &st.EntryID, &st.Amount, &st.SettledAt); err != nil {
			return nil, fmt.Errorf("scanning settlement: %w", err)
		}

		list = append(list, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement rows: %w", err)
	}

	return list, nil
}

func (q *Queries) VoucherSettlements(ctx context.Context, tenantID, voucherID uuid.UUID) ([]*bill.Settlement, error) {
	query := `
		SELECT s.id, s.bill_id, s.voucher_id, s.entry_id, s.amount, s.settled_at
		FROM bill_settlements s
		JOIN bills b ON b.id = s.bill_id
		WHERE b.tenant_id = $1 AND s.voucher_id = $2
		ORDER BY s.settled_at ASC, s.id ASC
	`

	rows, err := q.q.QueryContext(ctx, query, tenantID, voucherID)
	if err != nil {
		return nil, database.Wrap("listing voucher settlements", err)
	}

	return scanSettlements(rows)
}

func (q *Queries) DeleteSettlement(ctx context.Context, id uuid.UUID) error {
	if _, err := q.q.ExecContext(ctx, `DELETE FROM bill_settlements WHERE id = $1`, id); err != nil {
		return database.Wrap("deleting settlement", err)
	}

	return nil
}

func (q *Queries) LockVoucherBills(ctx context.Context, tenantID, voucherID uuid.UUID) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + `
		FROM bills
		WHERE tenant_id = $1 AND voucher_id = $2
		ORDER BY created_at ASC
		FOR UPDATE`

	rows, err := q.q.QueryContext(ctx, query, tenantID, voucherID)
	if err != nil {
		return nil, database.Wrap("locking voucher bills", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}

type tx struct {
	*Queries
	dbTx *sql.Tx
}

func (t *tx) Commit() error {
	if err := t.dbTx.Commit(); err != nil {
		return database.Wrap("committing", err)
	}

	return nil
}

func (t *tx) Rollback() error {
	if err := t.dbTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func (s *Store) Begin(ctx context.Context) (bill.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning bill tx: %w", err)
	}

	return &tx{Queries: NewQueries(dbTx), dbTx: dbTx}, nil
}

func (s *Store) GetBill(ctx context.Context, tenantID, id uuid.UUID) (*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + ` FROM bills WHERE id = $1 AND tenant_id = $2`

	b, err := scanBill(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bill.ErrNotFound
		}

		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return b, nil
}

func (s *Store) ListBills(ctx context.Context, tenantID uuid.UUID, filter bill.ListFilter) ([]*bill.Bill, error) {
	query := `SELECT ` + selectBillColumns + ` FROM bills WHERE tenant_id = $1`
	args := []any{tenantID}
	argIdx := 2

	if filter.Type != "" {
		query += fmt.Sprintf(" AND bill_type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			placeholders[i] = fmt.Sprintf("$%d", argIdx)
			args = append(args, st)
			argIdx++
		}

		query += " AND status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	if filter.LedgerName != "" {
		query += fmt.Sprintf(" AND lower(ledger_name) = lower($%d)", argIdx)
		args = append(args, filter.LedgerName)
	}

	query += " ORDER BY due_date ASC, bill_number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer rows.Close()

	var bills []*bill.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bill rows: %w", err)
	}

	return bills, nil
}

func (s *Store) ListSettlements(ctx context.Context, tenantID, billID uuid.UUID) ([]*bill.Settlement, error) {
	query := `
		SELECT s.id, s.bill_id, s.voucher_id, s.entry_id, s.amount, s.settled_at
		FROM bill_settlements s
		JOIN bills b ON b.id = s.bill_id
		WHERE b.tenant_id = $1 AND s.bill_id = $2
		ORDER BY s.settled_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID, billID)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}

	return scanSettlements(rows)
}
