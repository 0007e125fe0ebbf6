package numbering

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
)

type Handler struct {
	svc *numbering.Service
}

func NewHandler(svc *numbering.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/seed", h.seed)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Get("/{id}/next-number", h.nextNumber)
	r.Get("/{id}/series", h.listSeries)
	r.Post("/{id}/series", h.createSeries)
}

type voucherTypeResponse struct {
	ID                  uuid.UUID          `json:"id"`
	Name                string             `json:"name"`
	Category            numbering.Category `json:"category"`
	Method              numbering.Method   `json:"numbering_method"`
	Behavior            numbering.Behavior `json:"numbering_behavior"`
	Prefix              string             `json:"prefix"`
	Suffix              string             `json:"suffix"`
	NextNumber          int64              `json:"next_number"`
	AllowManualOverride bool               `json:"allow_manual_override"`
	AllowDuplicates     bool               `json:"allow_duplicates"`
	IsActive            bool               `json:"is_active"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           *time.Time         `json:"updated_at,omitempty"`
}

func toTypeResponse(vt *numbering.VoucherType) voucherTypeResponse {
	return voucherTypeResponse{
		ID:                  vt.ID,
		Name:                vt.Name,
		Category:            vt.Category,
		Method:              vt.Method,
		Behavior:            vt.Behavior,
		Prefix:              vt.Prefix,
		Suffix:              vt.Suffix,
		NextNumber:          vt.NextNumber,
		AllowManualOverride: vt.AllowManualOverride,
		AllowDuplicates:     vt.AllowDuplicates,
		IsActive:            vt.IsActive,
		CreatedAt:           vt.CreatedAt,
		UpdatedAt:           vt.UpdatedAt,
	}
}

func toTypeResponseList(vts []*numbering.VoucherType) []voucherTypeResponse {
	resp := make([]voucherTypeResponse, len(vts))
	for i, vt := range vts {
		resp[i] = toTypeResponse(vt)
	}

	return resp
}

type seriesResponse struct {
	ID            uuid.UUID  `json:"id"`
	VoucherTypeID uuid.UUID  `json:"voucher_type_id"`
	Name          string     `json:"name"`
	Prefix        string     `json:"prefix"`
	Suffix        string     `json:"suffix"`
	StartNumber   int64      `json:"start_number"`
	NextNumber    int64      `json:"next_number"`
	IsDefault     bool       `json:"is_default"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toSeriesResponse(s *numbering.Series) seriesResponse {
	return seriesResponse{
		ID:            s.ID,
		VoucherTypeID: s.VoucherTypeID,
		Name:          s.Name,
		Prefix:        s.Prefix,
		Suffix:        s.Suffix,
		StartNumber:   s.StartNumber,
		NextNumber:    s.NextNumber,
		IsDefault:     s.IsDefault,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	vts, err := h.svc.ListVoucherTypes(r.Context(), api.TenantID(r.Context()))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toTypeResponseList(vts))
}

type createTypeRequest struct {
	Name                string             `json:"name"`
	Category            numbering.Category `json:"category"`
	Method              numbering.Method   `json:"numbering_method"`
	Behavior            numbering.Behavior `json:"numbering_behavior"`
	Prefix              string             `json:"prefix"`
	Suffix              string             `json:"suffix"`
	StartNumber         int64              `json:"start_number"`
	AllowManualOverride bool               `json:"allow_manual_override"`
	AllowDuplicates     bool               `json:"allow_duplicates"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	vt, err := h.svc.CreateVoucherType(r.Context(), api.TenantID(r.Context()), numbering.CreateTypeParams(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toTypeResponse(vt))
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.SeedDefaults(r.Context(), api.TenantID(r.Context()))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toTypeResponseList(created))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	vt, err := h.svc.GetVoucherType(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toTypeResponse(vt))
}

type updateTypeRequest struct {
	Name                *string             `json:"name,omitempty"`
	Method              *numbering.Method   `json:"numbering_method,omitempty"`
	Behavior            *numbering.Behavior `json:"numbering_behavior,omitempty"`
	Prefix              *string             `json:"prefix,omitempty"`
	Suffix              *string             `json:"suffix,omitempty"`
	NextNumber          *int64              `json:"next_number,omitempty"`
	AllowManualOverride *bool               `json:"allow_manual_override,omitempty"`
	AllowDuplicates     *bool               `json:"allow_duplicates,omitempty"`
	IsActive            *bool               `json:"is_active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req updateTypeRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	vt, err := h.svc.UpdateVoucherType(r.Context(), api.TenantID(r.Context()), id, numbering.UpdateTypeParams(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, toTypeResponse(vt))
}

type nextNumberResponse struct {
	VoucherTypeID uuid.UUID  `json:"voucher_type_id"`
	SeriesID      *uuid.UUID `json:"numbering_series_id,omitempty"`
	VoucherNumber string     `json:"voucher_number"`
}

func (h *Handler) nextNumber(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	seriesID, err := api.OptionalID("series_id", r.URL.Query().Get("series_id"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	number, err := h.svc.NextVoucherNumber(r.Context(), api.TenantID(r.Context()), id, seriesID)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusOK, nextNumberResponse{VoucherTypeID: id, SeriesID: seriesID, VoucherNumber: number})
}

func (h *Handler) listSeries(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	series, err := h.svc.ListSeries(r.Context(), api.TenantID(r.Context()), id)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	resp := make([]seriesResponse, len(series))
	for i, s := range series {
		resp[i] = toSeriesResponse(s)
	}

	api.JSON(w, http.StatusOK, resp)
}

type createSeriesRequest struct {
	Name        string `json:"name"`
	Prefix      string `json:"prefix"`
	Suffix      string `json:"suffix"`
	StartNumber int64  `json:"start_number"`
	IsDefault   bool   `json:"is_default"`
}

func (h *Handler) createSeries(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDParam(r, "id")
	if err != nil {
		api.Error(w, r, err)
		return
	}

	var req createSeriesRequest
	if err := api.Decode(r, &req); err != nil {
		api.Error(w, r, err)
		return
	}

	s, err := h.svc.CreateNumberingSeries(r.Context(), api.TenantID(r.Context()), id, numbering.CreateSeriesParams(req))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	api.JSON(w, http.StatusCreated, toSeriesResponse(s))
}
