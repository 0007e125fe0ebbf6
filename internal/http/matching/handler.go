package matching

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	RawName    string `json:"raw_name"`
	LedgerName string `json:"ledger_name"`
	Matched    bool   `json:"matched"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw_name")
	if raw == "" {
		api.Error(w, r, apperr.Validation("raw_name", "raw_name query parameter is required"))
		return
	}

	name, err := h.svc.Suggest(r.Context(), api.TenantID(r.Context()), raw)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, suggestResponse{RawName: raw, LedgerName: name, Matched: name != ""})
}

type learnRequest struct {
	RawPattern string `json:"raw_pattern"`
	LedgerName string `json:"ledger_name"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	if err := h.svc.Learn(r.Context(), api.TenantID(r.Context()), req.RawPattern, req.LedgerName); err != nil {
		api.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
