package ledger

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/lookup", h.lookup)
	r.Post("/groups", h.createGroup)
}

type ledgerResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Code               string          `json:"code,omitempty"`
	GroupID            *uuid.UUID      `json:"group_id,omitempty"`
	Category           ledger.Category `json:"category"`
	OpeningBalance     string          `json:"opening_balance"`
	OpeningBalanceType ledger.Side     `json:"opening_balance_type"`
	OpeningDate        string          `json:"opening_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toResponse(l *ledger.Ledger) ledgerResponse {
	return ledgerResponse{
		ID:                 l.ID,
		Name:               l.Name,
		Code:               l.Code,
		GroupID:            l.GroupID,
		Category:           l.Category,
		OpeningBalance:     api.Amount(l.OpeningBalance),
		OpeningBalanceType: l.OpeningBalanceType,
		OpeningDate:        api.OptionalDate(l.OpeningDate),
		CreatedAt:          l.CreatedAt,
	}
}

// ParseCategories reads repeated or comma separated category values.
func ParseCategories(values []string) ([]ledger.Category, error) {
	var cats []ledger.Category

	for _, v := range values {
		for _, raw := range strings.Split(v, ",") {
			if raw = strings.TrimSpace(raw); raw == "" {
				continue
			}

			c := ledger.Category(strings.ToUpper(raw))
			if !c.Valid() {
				return nil, apperr.Validation("category", "unknown category %q", raw)
			}

			cats = append(cats, c)
		}
	}

	return cats, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := ParseCategories(r.URL.Query()["category"])
	if err != nil {
		api.Error(w, r, err)
		return
	}

	ledgers, err := h.svc.List(r.Context(), api.TenantID(r.Context()), cats...)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]ledgerResponse, len(ledgers))
	for i, l := range ledgers {
		resp[i] = toResponse(l)
	}

	api.JSON(w, http.StatusOK, resp)
}

type createLedgerRequest struct {
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	GroupID            *uuid.UUID      `json:"group_id"`
	Category           ledger.Category `json:"category"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceType ledger.Side     `json:"opening_balance_type"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLedgerRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), api.TenantID(r.Context()), ledger.CreateParams(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toResponse(l))
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		api.Error(w, r, apperr.Validation("name", "name query parameter is required"))
		return
	}

	l, err := h.svc.Lookup(r.Context(), api.TenantID(r.Context()), name)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(l))
}

type groupRequest struct {
	Name     string          `json:"name"`
	Category ledger.Category `json:"category"`
	ParentID *uuid.UUID      `json:"parent_id"`
}

type groupResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  ledger.Category `json:"category"`
	ParentID  *uuid.UUID      `json:"parent_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	g, err := h.svc.CreateGroup(r.Context(), api.TenantID(r.Context()), ledger.CreateGroupParams(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, groupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Category:  g.Category,
		ParentID:  g.ParentID,
		CreatedAt: g.CreatedAt,
	})
}
