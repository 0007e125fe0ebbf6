package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/database"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
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

const selectLedgerColumns = `
	id, tenant_id, name, code, group_id, category,
	opening_balance, opening_balance_type, opening_date, created_at, updated_at
`

func scanLedger(s scanner) (*ledger.Ledger, error) {
	var l ledger.Ledger

	var category, balanceType string

	if err := s.Scan(
		&l.ID, &l.TenantID, &l.Name, &l.Code, &l.GroupID, &category,
		&l.OpeningBalance, &balanceType, &l.OpeningDate, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Category = ledger.Category(category)
	l.OpeningBalanceType = ledger.Side(balanceType)

	return &l, nil
}

func (s *Store) CreateGroup(ctx context.Context, g *ledger.Group) error {
	query := `
		INSERT INTO ledger_groups (tenant_id, name, category, parent_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, g.TenantID, g.Name, g.Category, g.ParentID).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return database.Wrap("creating ledger group", err)
	}

	return nil
}

func (s *Store) GetGroup(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Group, error) {
	query := `
		SELECT id, tenant_id, name, category, parent_id, created_at
		FROM ledger_groups
		WHERE id = $1 AND tenant_id = $2
	`

	var g ledger.Group

	var category string

	err := s.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&g.ID, &g.TenantID, &g.Name, &category, &g.ParentID, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting ledger group: %w", err)
	}

	g.Category = ledger.Category(category)

	return &g, nil
}

func (s *Store) CreateLedger(ctx context.Context, l *ledger.Ledger) error {
	query := `
		INSERT INTO ledgers (tenant_id, name, code, group_id, category, opening_balance, opening_balance_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.TenantID,
		l.Name,
		l.Code,
		l.GroupID,
		l.Category,
		l.OpeningBalance,
		l.OpeningBalanceType,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return database.Wrap("creating ledger", err)
	}

	return nil
}

func (s *Store) GetLedgerByName(ctx context.Context, tenantID uuid.UUID, name string) (*ledger.Ledger, error) {
	query := `SELECT ` + selectLedgerColumns + `
		FROM ledgers
		WHERE tenant_id = $1 AND lower(name) = lower($2)`

	l, err := scanLedger(s.db.QueryRowContext(ctx, query, tenantID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting ledger: %w", err)
	}

	return l, nil
}

func (s *Store) ListLedgers(ctx context.Context, tenantID uuid.UUID, filter ledger.ListFilter) ([]*ledger.Ledger, error) {
	query := `SELECT ` + selectLedgerColumns + `
		FROM ledgers
		WHERE tenant_id = $1`

	args := []any{tenantID}

	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			args = append(args, string(c))
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}

		query += " AND category IN (" + strings.Join(placeholders, ", ") + ")"
	}

	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*ledger.Ledger

	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning ledger: %w", err)
		}

		ledgers = append(ledgers, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ledger rows: %w", err)
	}

	return ledgers, nil
}

// SetOpeningBalances overwrites the opening state of each ledger in one transaction.
func (s *Store) SetOpeningBalances(ctx context.Context, tenantID uuid.UUID, balances []ledger.OpeningBalance) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE ledgers
		SET opening_balance = $1, opening_balance_type = $2, opening_date = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5
	`

	for _, b := range balances {
		res, err := dbTx.ExecContext(ctx, query, b.Amount, b.Type, b.OpeningDate, b.LedgerID, tenantID)
		if err != nil {
			return database.Wrap("updating opening balance", err)
		}

		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("updating opening balance of %q: %w", b.LedgerName, ledger.ErrNotFound)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return database.Wrap("committing opening balances", err)
	}

	return nil
}
