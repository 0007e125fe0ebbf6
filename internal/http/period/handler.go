package period

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/calendar"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	ledgerHandler "github.com/MrJamesThe3rd/ledgr/internal/http/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/period"
)

type Handler struct {
	processor *period.Processor
	ledgers   *ledger.Service
}

func NewHandler(processor *period.Processor, ledgers *ledger.Service) *Handler {
	return &Handler{processor: processor, ledgers: ledgers}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/trial-balance", h.trialBalance)
	r.Post("/close", h.close)
	r.Post("/depreciation", h.depreciation)
	r.Post("/carry-forward", h.carryForward)
}

type postedResponse struct {
	VoucherID     string `json:"voucher_id"`
	VoucherNumber string `json:"voucher_number"`
	Date          string `json:"date"`
	TotalAmount   string `json:"total_amount"`
	Entries       int    `json:"entries"`
}

type balanceResponse struct {
	LedgerName string          `json:"ledger_name"`
	Category   ledger.Category `json:"category"`
	Amount     string          `json:"amount"`
	Type       ledger.Side     `json:"type"`
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, apperr.Validation(field, "%s is required", field)
	}

	t, err := calendar.Parse(s)
	if err != nil {
		return time.Time{}, apperr.Validation(field, "%v", err)
	}

	return t, nil
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := api.DateQuery(r, "as_of", calendar.Today())
	if err != nil {
		api.Error(w, r, err)
		return
	}

	cats, err := ledgerHandler.ParseCategories(r.URL.Query()["category"])
	if err != nil {
		api.Error(w, r, err)
		return
	}

	tenantID := api.TenantID(r.Context())

	ledgers, err := h.ledgers.List(r.Context(), tenantID, cats...)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	balances, err := h.processor.Balances(r.Context(), tenantID, ledgers, asOf)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]balanceResponse, len(balances))
	for i, b := range balances {
		bal := ledger.BalanceOf(b.Signed)
		resp[i] = balanceResponse{
			LedgerName: b.Ledger.Name,
			Category:   b.Ledger.Category,
			Amount:     api.Amount(bal.Amount),
			Type:       bal.Type,
		}
	}

	api.JSON(w, http.StatusOK, resp)
}

type closeRequest struct {
	AsOf string `json:"as_of"`
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	var req closeRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	asOf, err := parseDate("as_of", req.AsOf)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	v, err := h.processor.GenerateClosingEntries(r.Context(), api.TenantID(r.Context()), asOf)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, postedResponse{
		VoucherID:     v.ID.String(),
		VoucherNumber: v.VoucherNumber,
		Date:          api.Date(v.Date),
		TotalAmount:   api.Amount(v.TotalAmount),
		Entries:       len(v.Entries),
	})
}

type depreciationRequest struct {
	AsOf string `json:"as_of"`
	// Rate is a percentage; omitted means the configured rate.
	Rate *decimal.Decimal `json:"rate"`
}

func (h *Handler) depreciation(w http.ResponseWriter, r *http.Request) {
	var req depreciationRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	asOf, err := parseDate("as_of", req.AsOf)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	v, err := h.processor.RunDepreciation(r.Context(), api.TenantID(r.Context()), asOf, req.Rate)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, postedResponse{
		VoucherID:     v.ID.String(),
		VoucherNumber: v.VoucherNumber,
		Date:          api.Date(v.Date),
		TotalAmount:   api.Amount(v.TotalAmount),
		Entries:       len(v.Entries),
	})
}

type carryForwardRequest struct {
	YearEnd   string `json:"year_end"`
	YearStart string `json:"year_start"`
}

type carriedResponse struct {
	LedgerName string      `json:"ledger_name"`
	Amount     string      `json:"amount"`
	Type       ledger.Side `json:"type"`
}

type carryForwardResponse struct {
	YearEnd   string            `json:"year_end"`
	YearStart string            `json:"year_start"`
	Balances  []carriedResponse `json:"balances"`
}

func (h *Handler) carryForward(w http.ResponseWriter, r *http.Request) {
	var req carryForwardRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	yearEnd, err := parseDate("year_end", req.YearEnd)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	yearStart, err := parseDate("year_start", req.YearStart)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	summary, err := h.processor.CarryForwardBalances(r.Context(), api.TenantID(r.Context()), yearEnd, yearStart)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := carryForwardResponse{
		YearEnd:   api.Date(summary.YearEnd),
		YearStart: api.Date(summary.YearStart),
		Balances:  make([]carriedResponse, 0, len(summary.Balances)),
	}

	for _, b := range summary.Balances {
		resp.Balances = append(resp.Balances, carriedResponse{
			LedgerName: b.LedgerName,
			Amount:     api.Amount(b.Amount),
			Type:       b.Type,
		})
	}

	api.JSON(w, http.StatusOK, resp)
}
