package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// PostingTotals joins postings to the chart of accounts by name, ignoring
// case. Postings on names with no ledger are summed from the beginning.
func (s *Store) PostingTotals(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (map[string]period.Totals, error) {
	query := `
		SELECT
			lower(e.ledger_name),
			COALESCE(SUM(e.amount) FILTER (WHERE e.entry_type = 'DEBIT'), 0),
			COALESCE(SUM(e.amount) FILTER (WHERE e.entry_type = 'CREDIT'), 0)
		FROM voucher_entries e
		JOIN vouchers v ON v.id = e.voucher_id
		LEFT JOIN ledgers l ON l.tenant_id = v.tenant_id AND lower(l.name) = lower(e.ledger_name)
		WHERE v.tenant_id = $1
			AND v.date <= $2
			AND (l.opening_date IS NULL OR v.date >= l.opening_date)
		GROUP BY lower(e.ledger_name)
	`

	rows, err := s.db.QueryContext(ctx, query, tenantID, asOf)
	if err != nil {
		return nil, fmt.Errorf("summing postings: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]period.Totals)

	for rows.Next() {
		var (
			name string
			t    period.Totals
		)

		if err := rows.Scan(&name, &t.Debit, &t.Credit); err != nil {
			return nil, fmt.Errorf("scanning posting totals: %w", err)
		}

		totals[name] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posting totals: %w", err)
	}

	return totals, nil
}
