package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindMatch(ctx context.Context, tenantID uuid.UUID, raw string) (string, error) {
	query := `
		SELECT ledger_name
		FROM ledger_aliases
		WHERE tenant_id = $1 AND strpos(lower($2), lower(raw_pattern)) > 0
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var name string

	err := s.db.QueryRowContext(ctx, query, tenantID, raw).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding ledger alias: %w", err)
	}

	return name, nil
}

func (s *Store) CreateMapping(ctx context.Context, tenantID uuid.UUID, rawPattern, ledgerName string) error {
	query := `
		INSERT INTO ledger_aliases (tenant_id, raw_pattern, ledger_name, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, tenantID, rawPattern, ledgerName); err != nil {
		return database.Wrap("creating ledger alias", err)
	}

	return nil
}
