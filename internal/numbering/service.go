package numbering

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=numbering
type Repository interface {
	CreateVoucherType(ctx context.Context, vt *VoucherType) error
	GetVoucherType(ctx context.Context, tenantID, id uuid.UUID) (*VoucherType, error)
	GetVoucherTypeByName(ctx context.Context, tenantID uuid.UUID, name string) (*VoucherType, error)
	ListVoucherTypes(ctx context.Context, tenantID uuid.UUID) ([]*VoucherType, error)
	// UpdateVoucherType writes the settings of vt. The counter is only touched
	// when nextNumber is set, and never moves below its stored value unless
	// vt allows duplicates. vt.NextNumber is refreshed from the stored row.
	UpdateVoucherType(ctx context.Context, vt *VoucherType, nextNumber *int64) error

	// CreateSeries inserts the series; a default series clears the default
	// flag of its siblings in the same transaction.
	CreateSeries(ctx context.Context, s *Series) error
	GetSeries(ctx context.Context, tenantID, voucherTypeID, id uuid.UUID) (*Series, error)
	ListSeries(ctx context.Context, tenantID, voucherTypeID uuid.UUID) ([]*Series, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateTypeParams struct {
	Name                string
	Category            Category
	Method              Method
	Behavior            Behavior
	Prefix              string
	Suffix              string
	StartNumber         int64
	AllowManualOverride bool
	AllowDuplicates     bool
}

func (s *Service) CreateVoucherType(ctx context.Context, tenantID uuid.UUID, params CreateTypeParams) (*VoucherType, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("name", "voucher type name is required")
	}

	if !params.Category.Valid() {
		return nil, apperr.Validation("category", "unknown voucher category %q", params.Category)
	}

	method := params.Method
	if method == "" {
		method = MethodAutomatic
	}

	if !method.Valid() {
		return nil, apperr.Validation("numberingMethod", "unknown numbering method %q", method)
	}

	behavior := params.Behavior
	if behavior == "" {
		behavior = BehaviorRenumber
	}

	if !behavior.Valid() {
		return nil, apperr.Validation("numberingBehavior", "unknown numbering behavior %q", behavior)
	}

	start := params.StartNumber
	if start == 0 {
		start = 1
	}

	if start < 1 {
		return nil, apperr.Validation("startNumber", "must be at least 1")
	}

	if _, err := s.repo.GetVoucherTypeByName(ctx, tenantID, name); err == nil {
		return nil, apperr.Validation("name", "voucher type %q already exists", name)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking voucher type name: %w", err)
	}

	vt := &VoucherType{
		TenantID:            tenantID,
		Name:                name,
		Category:            params.Category,
		Method:              method,
		Behavior:            behavior,
		Prefix:              params.Prefix,
		Suffix:              params.Suffix,
		NextNumber:          start,
		AllowManualOverride: params.AllowManualOverride,
		AllowDuplicates:     params.AllowDuplicates,
		IsActive:            true,
	}
	if err := s.repo.CreateVoucherType(ctx, vt); err != nil {
		return nil, err
	}

	return vt, nil
}

// UpdateTypeParams holds the fields to change; nil fields are left untouched.
type UpdateTypeParams struct {
	Name                *string
	Method              *Method
	Behavior            *Behavior
	Prefix              *string
	Suffix              *string
	NextNumber          *int64
	AllowManualOverride *bool
	AllowDuplicates     *bool
	IsActive            *bool
}

func (s *Service) UpdateVoucherType(ctx context.Context, tenantID, id uuid.UUID, params UpdateTypeParams) (*VoucherType, error) {
	vt, err := s.GetVoucherType(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, apperr.Validation("name", "voucher type name is required")
		}

		if !strings.EqualFold(name, vt.Name) {
			if _, err := s.repo.GetVoucherTypeByName(ctx, tenantID, name); err == nil {
				return nil, apperr.Validation("name", "voucher type %q already exists", name)
			} else if !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("checking voucher type name: %w", err)
			}
		}

		vt.Name = name
	}

	if params.Method != nil {
		if !params.Method.Valid() {
			return nil, apperr.Validation("numberingMethod", "unknown numbering method %q", *params.Method)
		}

		vt.Method = *params.Method
	}

	if params.Behavior != nil {
		if !params.Behavior.Valid() {
			return nil, apperr.Validation("numberingBehavior", "unknown numbering behavior %q", *params.Behavior)
		}

		vt.Behavior = *params.Behavior
	}

	if params.Prefix != nil {
		vt.Prefix = *params.Prefix
	}

	if params.Suffix != nil {
		vt.Suffix = *params.Suffix
	}

	if params.AllowManualOverride != nil {
		vt.AllowManualOverride = *params.AllowManualOverride
	}

	if params.AllowDuplicates != nil {
		vt.AllowDuplicates = *params.AllowDuplicates
	}

	if params.IsActive != nil {
		vt.IsActive = *params.IsActive
	}

	if params.NextNumber != nil {
		next := *params.NextNumber
		if next < 1 {
			return nil, apperr.Validation("nextNumber", "must be at least 1")
		}

		// Moving the counter back would hand out numbers again.
		if next < vt.NextNumber && !vt.AllowDuplicates {
			return nil, apperr.Validation("nextNumber", "cannot move below %d unless duplicates are allowed", vt.NextNumber)
		}
	}

	if err := s.repo.UpdateVoucherType(ctx, vt, params.NextNumber); err != nil {
		return nil, err
	}

	return vt, nil
}

func (s *Service) GetVoucherType(ctx context.Context, tenantID, id uuid.UUID) (*VoucherType, error) {
	vt, err := s.repo.GetVoucherType(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("voucher type", id)
		}

		return nil, fmt.Errorf("getting voucher type: %w", err)
	}

	return vt, nil
}

func (s *Service) GetVoucherTypeByName(ctx context.Context, tenantID uuid.UUID, name string) (*VoucherType, error) {
	vt, err := s.repo.GetVoucherTypeByName(ctx, tenantID, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("voucher type", name)
		}

		return nil, fmt.Errorf("getting voucher type: %w", err)
	}

	return vt, nil
}

func (s *Service) ListVoucherTypes(ctx context.Context, tenantID uuid.UUID) ([]*VoucherType, error) {
	return s.repo.ListVoucherTypes(ctx, tenantID)
}

// FindByCategory returns the first active voucher type of the category, by name.
func (s *Service) FindByCategory(ctx context.Context, tenantID uuid.UUID, category Category) (*VoucherType, error) {
	types, err := s.repo.ListVoucherTypes(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing voucher types: %w", err)
	}

	for _, vt := range types {
		if vt.Category == category && vt.IsActive {
			return vt, nil
		}
	}

	return nil, apperr.NotFound("voucher type for category", category)
}

type CreateSeriesParams struct {
	Name        string
	Prefix      string
	Suffix      string
	StartNumber int64
	IsDefault   bool
}

func (s *Service) CreateNumberingSeries(ctx context.Context, tenantID, voucherTypeID uuid.UUID, params CreateSeriesParams) (*Series, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("name", "series name is required")
	}

	start := params.StartNumber
	if start == 0 {
		start = 1
	}

	if start < 1 {
		return nil, apperr.Validation("startNumber", "must be at least 1")
	}

	// The series must hang off a voucher type of the same tenant.
	if _, err := s.GetVoucherType(ctx, tenantID, voucherTypeID); err != nil {
		return nil, err
	}

	series := &Series{
		TenantID:      tenantID,
		VoucherTypeID: voucherTypeID,
		Name:          name,
		Prefix:        params.Prefix,
		Suffix:        params.Suffix,
		StartNumber:   start,
		NextNumber:    start,
		IsDefault:     params.IsDefault,
	}
	if err := s.repo.CreateSeries(ctx, series); err != nil {
		return nil, err
	}

	return series, nil
}

func (s *Service) ListSeries(ctx context.Context, tenantID, voucherTypeID uuid.UUID) ([]*Series, error) {
	return s.repo.ListSeries(ctx, tenantID, voucherTypeID)
}

// NextVoucherNumber previews the number the next voucher would receive.
// Nothing is reserved; a concurrent voucher may take it first.
func (s *Service) NextVoucherNumber(ctx context.Context, tenantID, voucherTypeID uuid.UUID, seriesID *uuid.UUID) (string, error) {
	vt, err := s.GetVoucherType(ctx, tenantID, voucherTypeID)
	if err != nil {
		return "", err
	}

	if seriesID == nil {
		return Format(vt.Prefix, vt.NextNumber, vt.Suffix), nil
	}

	series, err := s.repo.GetSeries(ctx, tenantID, voucherTypeID, *seriesID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("numbering series", *seriesID)
		}

		return "", fmt.Errorf("getting numbering series: %w", err)
	}

	return Format(series.Prefix, series.NextNumber, series.Suffix), nil
}

// DefaultTypes are the voucher types every tenant starts with.
var DefaultTypes = []CreateTypeParams{
	{Name: "Payment", Category: CategoryPayment, Prefix: "PMT/"},
	{Name: "Receipt", Category: CategoryReceipt, Prefix: "RCT/"},
	{Name: "Contra", Category: CategoryContra, Prefix: "CTR/"},
	{Name: "Journal", Category: CategoryJournal, Prefix: "JV/"},
	{Name: "Sales", Category: CategorySales, Prefix: "SAL/"},
	{Name: "Purchase", Category: CategoryPurchase, Prefix: "PUR/"},
	{Name: "Debit Note", Category: CategoryDebitNote, Prefix: "DN/"},
	{Name: "Credit Note", Category: CategoryCreditNote, Prefix: "CN/"},
}

// SeedDefaults creates the default voucher types the tenant does not have yet.
func (s *Service) SeedDefaults(ctx context.Context, tenantID uuid.UUID) ([]*VoucherType, error) {
	var created []*VoucherType

	for _, params := range DefaultTypes {
		_, err := s.repo.GetVoucherTypeByName(ctx, tenantID, params.Name)
		if err == nil {
			continue
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("checking voucher type %q: %w", params.Name, err)
		}

		vt, err := s.CreateVoucherType(ctx, tenantID, params)
		if err != nil {
			return nil, fmt.Errorf("seeding voucher type %q: %w", params.Name, err)
		}

		created = append(created, vt)
	}

	return created, nil
}
