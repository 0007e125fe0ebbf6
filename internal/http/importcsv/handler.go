package importcsv

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/importer"
)

const maxUpload = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

// importCSV posts every voucher of an uploaded journal. It answers 201 when
// all vouchers were created and 207 when some of them failed.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		api.Error(w, r, apperr.Validation("file", "failed to parse form: %v", err))
		return
	}

	createdBy, err := api.OptionalID("created_by", r.FormValue("created_by"))
	if err != nil {
		api.Error(w, r, err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		api.Error(w, r, apperr.Validation("file", "file field is required"))
		return
	}
	defer file.Close()

	format := importer.Format(r.FormValue("format"))

	result, err := h.svc.Import(r.Context(), api.TenantID(r.Context()), format, file, createdBy)
	if err != nil {
		api.Error(w, r, err)
		return
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}

	api.JSON(w, status, result)
}
