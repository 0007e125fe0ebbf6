package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/importer/journal"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type VoucherCreator interface {
	Create(ctx context.Context, tenantID uuid.UUID, in voucher.CreateInput) (*voucher.Voucher, error)
}

type VoucherTypes interface {
	GetVoucherTypeByName(ctx context.Context, tenantID uuid.UUID, name string) (*numbering.VoucherType, error)
}

// LedgerResolver maps the ledger text of an export onto a ledger name.
type LedgerResolver interface {
	Resolve(ctx context.Context, tenantID uuid.UUID, raw string) (string, error)
}

type Service struct {
	journalImporter Importer
	vouchers        VoucherCreator
	types           VoucherTypes
	ledgers         LedgerResolver
	logger          *slog.Logger
}

func NewService(vouchers VoucherCreator, types VoucherTypes, ledgers LedgerResolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		journalImporter: journal.NewParser(),
		vouchers:        vouchers,
		types:           types,
		ledgers:         ledgers,
		logger:          logger,
	}
}

// Import reads an export and posts each voucher in it on its own. A voucher
// that fails does not stop the others; the error is returned only when the
// file itself cannot be read.
func (s *Service) Import(ctx context.Context, tenantID uuid.UUID, format Format, r io.Reader, createdBy *uuid.UUID) (*Result, error) {
	var importer Importer

	switch format {
	case FormatJournal, "":
		format = FormatJournal
		importer = s.journalImporter
	default:
		return nil, apperr.Validation("format", "unknown import format %q", format)
	}

	j, err := importer.Parse(r)
	if err != nil {
		return nil, apperr.Validation("file", "%v", err)
	}

	res := &Result{
		Format:  format,
		Layout:  j.Profile,
		Charset: j.Charset,
		Created: []Posted{},
		Failed:  []Failed{},
	}

	types := make(map[string]uuid.UUID)

	for _, d := range j.Vouchers {
		v, err := s.post(ctx, tenantID, d, types, createdBy)
		if err != nil {
			res.Failed = append(res.Failed, Failed{Row: d.Row, Reference: d.Reference, Error: err.Error()})
			continue
		}

		res.Created = append(res.Created, Posted{
			Row:           d.Row,
			Reference:     d.Reference,
			VoucherID:     v.ID.String(),
			VoucherNumber: v.VoucherNumber,
		})
	}

	s.logger.Info("journal imported",
		"tenant", tenantID,
		"layout", res.Layout,
		"charset", res.Charset,
		"created", len(res.Created),
		"failed", len(res.Failed),
	)

	return res, nil
}

func (s *Service) post(ctx context.Context, tenantID uuid.UUID, d journal.Draft, types map[string]uuid.UUID, createdBy *uuid.UUID) (*voucher.Voucher, error) {
	if len(d.Problems) > 0 {
		return nil, errors.New(strings.Join(d.Problems, "; "))
	}

	typeID, err := s.voucherType(ctx, tenantID, d.VoucherType, types)
	if err != nil {
		return nil, err
	}

	in := voucher.CreateInput{
		VoucherTypeID: typeID,
		Date:          d.Date.Format(time.DateOnly),
		Reference:     d.Reference,
		Narration:     d.Narration,
		CreatedBy:     createdBy,
	}

	for _, line := range d.Lines {
		name, err := s.ledgers.Resolve(ctx, tenantID, line.Ledger)
		if err != nil {
			return nil, fmt.Errorf("row %d: resolving ledger %q: %w", line.Row, line.Ledger, err)
		}

		entry := voucher.EntryInput{
			LedgerName: name,
			Type:       line.Side,
			Amount:     line.Amount,
			Narration:  line.Narration,
		}

		if line.Bill != "" {
			entry.BillReferences = []voucher.BillReferenceInput{{
				Reference: line.Bill,
				Amount:    line.Amount,
				Type:      line.BillType,
				DueDate:   line.DueDate,
			}}
		}

		in.Entries = append(in.Entries, entry)
	}

	return s.vouchers.Create(ctx, tenantID, in)
}

func (s *Service) voucherType(ctx context.Context, tenantID uuid.UUID, name string, cache map[string]uuid.UUID) (uuid.UUID, error) {
	key := strings.ToLower(name)
	if id, ok := cache[key]; ok {
		return id, nil
	}

	if name == "" {
		return uuid.Nil, apperr.Validation("voucherType", "voucher type is required")
	}

	vt, err := s.types.GetVoucherTypeByName(ctx, tenantID, name)
	if err != nil {
		return uuid.Nil, err
	}

	cache[key] = vt.ID

	return vt.ID, nil
}
