package matching

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	// FindMatch returns the ledger name of the longest alias pattern contained
	// in raw, ignoring case, or an empty string.
	FindMatch(ctx context.Context, tenantID uuid.UUID, raw string) (string, error)
	CreateMapping(ctx context.Context, tenantID uuid.UUID, rawPattern, ledgerName string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find the ledger a free-text account name refers to.
// Returns empty string if no match found.
func (s *Service) Suggest(ctx context.Context, tenantID uuid.UUID, raw string) (string, error) {
	return s.repo.FindMatch(ctx, tenantID, strings.TrimSpace(raw))
}

// Resolve returns the learned ledger name for raw, or raw itself.
func (s *Service) Resolve(ctx context.Context, tenantID uuid.UUID, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	name, err := s.repo.FindMatch(ctx, tenantID, raw)
	if err != nil {
		return "", err
	}

	if name == "" {
		return raw, nil
	}

	return name, nil
}

// Learn remembers that text containing rawPattern means ledgerName.
func (s *Service) Learn(ctx context.Context, tenantID uuid.UUID, rawPattern, ledgerName string) error {
	rawPattern = strings.TrimSpace(rawPattern)
	if rawPattern == "" {
		return apperr.Validation("rawPattern", "pattern is required")
	}

	ledgerName = strings.TrimSpace(ledgerName)
	if ledgerName == "" {
		return apperr.Validation("ledgerName", "ledger name is required")
	}

	return s.repo.CreateMapping(ctx, tenantID, rawPattern, ledgerName)
}
