package voucher

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type voucherResponse struct {
	ID            uuid.UUID       `json:"id"`
	VoucherTypeID uuid.UUID       `json:"voucher_type_id"`
	SeriesID      *uuid.UUID      `json:"numbering_series_id,omitempty"`
	VoucherNumber string          `json:"voucher_number"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference,omitempty"`
	Narration     string          `json:"narration,omitempty"`
	TotalAmount   string          `json:"total_amount"`
	CreatedBy     *uuid.UUID      `json:"created_by,omitempty"`
	ReversalOf    *uuid.UUID      `json:"reversal_of,omitempty"`
	Entries       []entryResponse `json:"entries"`
	CreatedAt     time.Time       `json:"created_at"`
}

type entryResponse struct {
	ID             uuid.UUID               `json:"id"`
	LineNo         int                     `json:"line_no"`
	LedgerName     string                  `json:"ledger_name"`
	LedgerCode     string                  `json:"ledger_code,omitempty"`
	Type           ledger.Side             `json:"type"`
	Amount         string                  `json:"amount"`
	Narration      string                  `json:"narration,omitempty"`
	CostCenter     string                  `json:"cost_center,omitempty"`
	CostCategory   string                  `json:"cost_category,omitempty"`
	BillReferences []billReferenceResponse `json:"bill_references,omitempty"`
}

type billReferenceResponse struct {
	Reference string       `json:"reference"`
	Amount    string       `json:"amount"`
	Type      bill.RefType `json:"type"`
	DueDate   string       `json:"due_date,omitempty"`
	Remarks   string       `json:"remarks,omitempty"`
}

func toResponse(v *voucher.Voucher) voucherResponse {
	resp := voucherResponse{
		ID:            v.ID,
		VoucherTypeID: v.VoucherTypeID,
		SeriesID:      v.SeriesID,
		VoucherNumber: v.VoucherNumber,
		Date:          api.Date(v.Date),
		Reference:     v.Reference,
		Narration:     v.Narration,
		TotalAmount:   api.Amount(v.TotalAmount),
		CreatedBy:     v.CreatedBy,
		ReversalOf:    v.ReversalOf,
		Entries:       make([]entryResponse, 0, len(v.Entries)),
		CreatedAt:     v.CreatedAt,
	}

	for _, e := range v.Entries {
		entry := entryResponse{
			ID:           e.ID,
			LineNo:       e.LineNo,
			LedgerName:   e.LedgerName,
			LedgerCode:   e.LedgerCode,
			Type:         e.Type,
			Amount:       api.Amount(e.Amount),
			Narration:    e.Narration,
			CostCenter:   e.CostCenter,
			CostCategory: e.CostCategory,
		}

		for _, ref := range e.BillReferences {
			entry.BillReferences = append(entry.BillReferences, billReferenceResponse{
				Reference: ref.Reference,
				Amount:    api.Amount(ref.Amount),
				Type:      ref.Type,
				DueDate:   api.OptionalDate(ref.DueDate),
				Remarks:   ref.Remarks,
			})
		}

		resp.Entries = append(resp.Entries, entry)
	}

	return resp
}

func toResponseList(vs []*voucher.Voucher) []voucherResponse {
	resp := make([]voucherResponse, len(vs))
	for i, v := range vs {
		resp[i] = toResponse(v)
	}

	return resp
}
