package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

// ErrNotFound is returned by repositories when a ledger or group does not exist for the tenant.
var ErrNotFound = errors.New("ledger not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateGroup(ctx context.Context, g *Group) error
	GetGroup(ctx context.Context, tenantID, id uuid.UUID) (*Group, error)

	CreateLedger(ctx context.Context, l *Ledger) error
	// GetLedgerByName matches names case-insensitively.
	GetLedgerByName(ctx context.Context, tenantID uuid.UUID, name string) (*Ledger, error)
	ListLedgers(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Ledger, error)

	// SetOpeningBalances rewrites the opening state of every given ledger atomically.
	SetOpeningBalances(ctx context.Context, tenantID uuid.UUID, balances []OpeningBalance) error
}

type ListFilter struct {
	Categories []Category
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateGroupParams struct {
	Name     string
	Category Category
	ParentID *uuid.UUID
}

func (s *Service) CreateGroup(ctx context.Context, tenantID uuid.UUID, params CreateGroupParams) (*Group, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("name", "group name is required")
	}

	if !params.Category.Valid() {
		return nil, apperr.Validation("category", "unknown category %q", params.Category)
	}

	g := &Group{
		TenantID: tenantID,
		Name:     name,
		Category: params.Category,
		ParentID: params.ParentID,
	}
	if err := s.repo.CreateGroup(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

type CreateParams struct {
	Name               string
	Code               string
	GroupID            *uuid.UUID
	Category           Category
	OpeningBalance     decimal.Decimal
	OpeningBalanceType Side
}

// Create adds a ledger. A ledger placed in a group takes the group's category.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, params CreateParams) (*Ledger, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("name", "ledger name is required")
	}

	category := params.Category

	if params.GroupID != nil {
		g, err := s.repo.GetGroup(ctx, tenantID, *params.GroupID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, apperr.NotFound("ledger group", *params.GroupID)
			}

			return nil, fmt.Errorf("loading ledger group: %w", err)
		}

		category = g.Category
	}

	if !category.Valid() {
		return nil, apperr.Validation("category", "unknown category %q", category)
	}

	if params.OpeningBalance.IsNegative() {
		return nil, apperr.Validation("openingBalance", "opening balance must not be negative; use the balance type")
	}

	balanceType := params.OpeningBalanceType
	if balanceType == "" {
		balanceType = Debit
	}

	if !balanceType.Valid() {
		return nil, apperr.Validation("openingBalanceType", "must be DEBIT or CREDIT")
	}

	if existing, err := s.repo.GetLedgerByName(ctx, tenantID, name); err == nil && existing != nil {
		return nil, apperr.Validation("name", "ledger %q already exists", existing.Name)
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking ledger name: %w", err)
	}

	l := &Ledger{
		TenantID:           tenantID,
		Name:               name,
		Code:               params.Code,
		GroupID:            params.GroupID,
		Category:           category,
		OpeningBalance:     params.OpeningBalance,
		OpeningBalanceType: balanceType,
	}
	if err := s.repo.CreateLedger(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// Lookup resolves a ledger by name, ignoring case.
func (s *Service) Lookup(ctx context.Context, tenantID uuid.UUID, name string) (*Ledger, error) {
	l, err := s.repo.GetLedgerByName(ctx, tenantID, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("ledger", name)
		}

		return nil, fmt.Errorf("looking up ledger: %w", err)
	}

	return l, nil
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, categories ...Category) ([]*Ledger, error) {
	return s.repo.ListLedgers(ctx, tenantID, ListFilter{Categories: categories})
}

// Ensure returns the named ledger, creating it under category when it does not exist yet.
func (s *Service) Ensure(ctx context.Context, tenantID uuid.UUID, name string, category Category) (*Ledger, error) {
	l, err := s.repo.GetLedgerByName(ctx, tenantID, strings.TrimSpace(name))
	if err == nil {
		return l, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("looking up ledger: %w", err)
	}

	return s.Create(ctx, tenantID, CreateParams{Name: name, Category: category})
}

func (s *Service) SetOpeningBalances(ctx context.Context, tenantID uuid.UUID, balances []OpeningBalance) error {
	if len(balances) == 0 {
		return nil
	}

	return s.repo.SetOpeningBalances(ctx, tenantID, balances)
}
