package bill

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
)

type Handler struct {
	svc *bill.Service
}

func NewHandler(svc *bill.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/aging", h.aging)
		r.Get("/outstanding", h.outstanding)
		r.Get("/reminders", h.reminders)
		r.Get("/cash-flow", h.cashFlow)
		r.Get("/analytics", h.analytics)
	})

	r.Get("/{id}", h.get)
	r.Get("/{id}/settlements", h.settlements)
	r.Post("/{id}/settle", h.settle)
	r.Post("/{id}/cancel", h.cancel)
}

func billType(r *http.Request) bill.Type {
	return bill.Type(strings.ToUpper(r.URL.Query().Get("type")))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := bill.ListFilter{
		Type:       billType(r),
		LedgerName: q.Get("ledger"),
	}

	for _, v := range q["status"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, bill.Status(strings.ToUpper(s)))
			}
		}
	}

	bills, err := h.svc.List(r.Context(), api.TenantID(r.Context()), filter)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponseList(bills))
}

type createBillRequest struct {
	Number     string          `json:"bill_number"`
	LedgerName string          `json:"ledger_name"`
	Type       bill.Type       `json:"type"`
	BillDate   string          `json:"bill_date"`
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	VoucherID  *uuid.UUID      `json:"voucher_id"`
	EntryID    *uuid.UUID      `json:"entry_id"`
	Remarks    string          `json:"remarks"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	b, err := h.svc.Create(r.Context(), api.TenantID(r.Context()), bill.CreateInput(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(b))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	b, err := h.svc.Get(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(b))
}

func (h *Handler) settlements(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	settlements, err := h.svc.Settlements(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]settlementResponse, len(settlements))
	for i, s := range settlements {
		resp[i] = settlementResponse{
			ID:        s.ID,
			BillID:    s.BillID,
			VoucherID: s.VoucherID,
			EntryID:   s.EntryID,
			Amount:    api.Amount(s.Amount),
			SettledAt: s.SettledAt,
		}
	}

	api.JSON(w, http.StatusOK, resp)
}

type settleRequest struct {
	VoucherID uuid.UUID       `json:"voucher_id"`
	EntryID   uuid.UUID       `json:"entry_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req settleRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	b, err := h.svc.Settle(r.Context(), api.TenantID(r.Context()), id, bill.SettleInput(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(b))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	b, err := h.svc.Cancel(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(b))
}

func (h *Handler) aging(w http.ResponseWriter, r *http.Request) {
	asOn, err := api.DateQuery(r, "as_on", calendar.Today())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	report, err := h.svc.AgingReport(r.Context(), api.TenantID(r.Context()), billType(r), asOn)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toAgingResponse(report))
}

func (h *Handler) outstanding(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.OutstandingByLedger(r.Context(), api.TenantID(r.Context()), billType(r))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]outstandingResponse, len(summary))
	for i, s := range summary {
		resp[i] = outstandingResponse{
			LedgerName:    s.LedgerName,
			Amount:        api.Amount(s.Amount),
			Count:         s.Count,
			OldestDueDate: api.Date(s.OldestDueDate),
		}
	}

	api.JSON(w, http.StatusOK, resp)
}

func intQuery(r *http.Request, name string) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.Validation(name, "%s must be a number", name)
	}

	return n, nil
}

func (h *Handler) reminders(w http.ResponseWriter, r *http.Request) {
	asOn, err := api.DateQuery(r, "as_on", calendar.Today())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	within, err := intQuery(r, "within_days")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	reminders, err := h.svc.Reminders(r.Context(), api.TenantID(r.Context()), billType(r), asOn, within)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]reminderResponse, len(reminders))
	for i, rm := range reminders {
		resp[i] = reminderResponse{Bill: toResponse(rm.Bill), DaysOverdue: rm.DaysOverdue, Overdue: rm.Overdue}
	}

	api.JSON(w, http.StatusOK, resp)
}

func (h *Handler) cashFlow(w http.ResponseWriter, r *http.Request) {
	asOn, err := api.DateQuery(r, "as_on", calendar.Today())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	weeks, err := intQuery(r, "weeks")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	p, err := h.svc.CashFlowProjection(r.Context(), api.TenantID(r.Context()), asOn, weeks)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toCashFlowResponse(p))
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	asOn, err := api.DateQuery(r, "as_on", calendar.Today())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	a, err := h.svc.Analytics(r.Context(), api.TenantID(r.Context()), billType(r), asOn)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toAnalyticsResponse(a))
}
