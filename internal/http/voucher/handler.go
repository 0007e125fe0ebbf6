package voucher

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
)

type Handler struct {
	svc *voucher.Service
}

func NewHandler(svc *voucher.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/reverse", h.reverse)
}

type billReferenceRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Type      bill.RefType    `json:"type"`
	DueDate   string          `json:"due_date"`
	Remarks   string          `json:"remarks"`
}

type entryRequest struct {
	LedgerName     string                 `json:"ledger_name"`
	LedgerCode     string                 `json:"ledger_code"`
	Type           ledger.Side            `json:"type"`
	Amount         decimal.Decimal        `json:"amount"`
	Narration      string                 `json:"narration"`
	CostCenter     string                 `json:"cost_center"`
	CostCategory   string                 `json:"cost_category"`
	BillReferences []billReferenceRequest `json:"bill_references"`
}

type createVoucherRequest struct {
	VoucherTypeID     uuid.UUID      `json:"voucher_type_id"`
	NumberingSeriesID *uuid.UUID     `json:"numbering_series_id"`
	VoucherNumber     string         `json:"voucher_number"`
	Date              string         `json:"date"`
	Reference         string         `json:"reference"`
	Narration         string         `json:"narration"`
	CreatedBy         *uuid.UUID     `json:"created_by"`
	Entries           []entryRequest `json:"entries"`
}

func (req createVoucherRequest) input() voucher.CreateInput {
	in := voucher.CreateInput{
		VoucherTypeID:     req.VoucherTypeID,
		NumberingSeriesID: req.NumberingSeriesID,
		VoucherNumber:     req.VoucherNumber,
		Date:              req.Date,
		Reference:         req.Reference,
		Narration:         req.Narration,
		CreatedBy:         req.CreatedBy,
		Entries:           make([]voucher.EntryInput, 0, len(req.Entries)),
	}

	for _, e := range req.Entries {
		entry := voucher.EntryInput{
			LedgerName:   e.LedgerName,
			LedgerCode:   e.LedgerCode,
			Type:         e.Type,
			Amount:       e.Amount,
			Narration:    e.Narration,
			CostCenter:   e.CostCenter,
			CostCategory: e.CostCategory,
		}

		for _, ref := range e.BillReferences {
			entry.BillReferences = append(entry.BillReferences, voucher.BillReferenceInput(ref))
		}

		in.Entries = append(in.Entries, entry)
	}

	return in
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVoucherRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	v, err := h.svc.Create(r.Context(), api.TenantID(r.Context()), req.input())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(v))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	typeID, err := api.OptionalID("voucher_type_id", q.Get("voucher_type_id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	filter := voucher.ListFilter{VoucherTypeID: typeID}

	if from, err := api.DateQuery(r, "from_date", time.Time{}); err != nil {
		api.Error(w, r, err)
		return
	} else if !from.IsZero() {
		filter.FromDate = new(from)
	}

	if to, err := api.DateQuery(r, "to_date", time.Time{}); err != nil {
		api.Error(w, r, err)
		return
	} else if !to.IsZero() {
		filter.ToDate = new(to)
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			api.Error(w, r, apperr.Validation("limit", "limit must be a number"))
			return
		}

		filter.Limit = limit
	}

	vs, err := h.svc.List(r.Context(), api.TenantID(r.Context()), filter)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(vs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	v, err := h.svc.Get(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(v))
}

type reverseRequest struct {
	Date          string     `json:"date"`
	Narration     string     `json:"narration"`
	VoucherNumber string     `json:"voucher_number"`
	CreatedBy     *uuid.UUID `json:"created_by"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req reverseRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	v, err := h.svc.Reverse(r.Context(), api.TenantID(r.Context()), id, voucher.ReverseInput(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(v))
}
