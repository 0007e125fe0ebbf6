package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/http/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/http/importcsv"
	"github.com/MrJamesThe3rd/ledgr/internal/http/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/http/matching"
	"github.com/MrJamesThe3rd/ledgr/internal/http/numbering"
	"github.com/MrJamesThe3rd/ledgr/internal/http/period"
	"github.com/MrJamesThe3rd/ledgr/internal/http/voucher"
)

type Handlers struct {
	Vouchers     *voucher.Handler
	VoucherTypes *numbering.Handler
	Ledgers      *ledger.Handler
	Bills        *bill.Handler
	Period       *period.Handler
	Matching     *matching.Handler
	Import       *importcsv.Handler
}

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(api.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", api.TenantHeader},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(api.Tenant)

		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/vouchers", h.Vouchers.Routes)
			r.Route("/voucher-types", h.VoucherTypes.Routes)
			r.Route("/ledgers", h.Ledgers.Routes)
			r.Route("/bills", h.Bills.Routes)
			r.Route("/period", h.Period.Routes)
			r.Route("/matching", h.Matching.Routes)
		})

		r.Route("/import", h.Import.Routes)
	})

	return router
}
