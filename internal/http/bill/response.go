package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
)

type billResponse struct {
	ID                uuid.UUID   `json:"id"`
	Number            string      `json:"bill_number"`
	LedgerName        string      `json:"ledger_name"`
	Type              bill.Type   `json:"type"`
	BillDate          string      `json:"bill_date"`
	DueDate           string      `json:"due_date"`
	OriginalAmount    string      `json:"original_amount"`
	OutstandingAmount string      `json:"outstanding_amount"`
	Status            bill.Status `json:"status"`
	VoucherID         *uuid.UUID  `json:"voucher_id,omitempty"`
	EntryID           *uuid.UUID  `json:"entry_id,omitempty"`
	Remarks           string      `json:"remarks,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"`
}

func toResponse(b *bill.Bill) billResponse {
	return billResponse{
		ID:                b.ID,
		Number:            b.Number,
		LedgerName:        b.LedgerName,
		Type:              b.Type,
		BillDate:          api.Date(b.BillDate),
		DueDate:           api.Date(b.DueDate),
		OriginalAmount:    api.Amount(b.OriginalAmount),
		OutstandingAmount: api.Amount(b.OutstandingAmount),
		Status:            b.Status,
		VoucherID:         b.VoucherID,
		EntryID:           b.EntryID,
		Remarks:           b.Remarks,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func toResponseList(bills []*bill.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	return resp
}

type settlementResponse struct {
	ID        uuid.UUID `json:"id"`
	BillID    uuid.UUID `json:"bill_id"`
	VoucherID uuid.UUID `json:"voucher_id"`
	EntryID   uuid.UUID `json:"entry_id"`
	Amount    string    `json:"amount"`
	SettledAt time.Time `json:"settled_at"`
}

type agingBucketResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

type agingResponse struct {
	Type    bill.Type             `json:"type"`
	AsOn    string                `json:"as_on"`
	Buckets []agingBucketResponse `json:"buckets"`
	Total   string                `json:"total"`
	Count   int                   `json:"count"`
}

func toAgingResponse(r *bill.AgingReport) agingResponse {
	resp := agingResponse{
		Type:    r.Type,
		AsOn:    api.Date(r.AsOn),
		Buckets: make([]agingBucketResponse, 0, len(r.Buckets)),
		Total:   api.Amount(r.Total),
		Count:   r.Count,
	}

	for _, b := range r.Buckets {
		resp.Buckets = append(resp.Buckets, agingBucketResponse{Label: b.Label, Amount: api.Amount(b.Amount), Count: b.Count})
	}

	return resp
}

type outstandingResponse struct {
	LedgerName    string `json:"ledger_name"`
	Amount        string `json:"amount"`
	Count         int    `json:"count"`
	OldestDueDate string `json:"oldest_due_date"`
}

type reminderResponse struct {
	Bill        billResponse `json:"bill"`
	DaysOverdue int          `json:"days_overdue"`
	Overdue     bool         `json:"overdue"`
}

type cashFlowWeekResponse struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	Net     string `json:"net"`
}

type cashFlowResponse struct {
	AsOn         string                 `json:"as_on"`
	Weeks        []cashFlowWeekResponse `json:"weeks"`
	TotalInflow  string                 `json:"total_inflow"`
	TotalOutflow string                 `json:"total_outflow"`
}

func toCashFlowResponse(p *bill.CashFlowProjection) cashFlowResponse {
	resp := cashFlowResponse{
		AsOn:         api.Date(p.AsOn),
		Weeks:        make([]cashFlowWeekResponse, 0, len(p.Weeks)),
		TotalInflow:  api.Amount(p.TotalInflow),
		TotalOutflow: api.Amount(p.TotalOutflow),
	}

	for _, wk := range p.Weeks {
		resp.Weeks = append(resp.Weeks, cashFlowWeekResponse{
			Start:   api.Date(wk.Start),
			End:     api.Date(wk.End),
			Inflow:  api.Amount(wk.Inflow),
			Outflow: api.Amount(wk.Outflow),
			Net:     api.Amount(wk.Net),
		})
	}

	return resp
}

type analyticsResponse struct {
	Type               bill.Type           `json:"type"`
	AsOn               string              `json:"as_on"`
	Counts             map[bill.Status]int `json:"counts"`
	TotalBilled        string              `json:"total_billed"`
	TotalSettled       string              `json:"total_settled"`
	TotalOutstanding   string              `json:"total_outstanding"`
	OverdueAmount      string              `json:"overdue_amount"`
	OverdueCount       int                 `json:"overdue_count"`
	CollectionRate     string              `json:"collection_rate"`
	AverageDaysOverdue string              `json:"average_days_overdue"`
}

func toAnalyticsResponse(a *bill.Analytics) analyticsResponse {
	return analyticsResponse{
		Type:               a.Type,
		AsOn:               api.Date(a.AsOn),
		Counts:             a.Counts,
		TotalBilled:        api.Amount(a.TotalBilled),
		TotalSettled:       api.Amount(a.TotalSettled),
		TotalOutstanding:   api.Amount(a.TotalOutstanding),
		OverdueAmount:      api.Amount(a.OverdueAmount),
		OverdueCount:       a.OverdueCount,
		CollectionRate:     api.Amount(a.CollectionRate),
		AverageDaysOverdue: api.Amount(a.AverageDaysOverdue),
	}
}
