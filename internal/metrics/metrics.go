// Package metrics holds the Prometheus collectors of the service. They are
// registered on the default registry and served by promhttp at /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MrJamesThe3rd/ledgr/internal/apperr"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledgr_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	VouchersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_vouchers_created_total",
			Help: "Vouchers committed, by voucher category.",
		},
		[]string{"category"},
	)

	VoucherFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_voucher_failures_total",
			Help: "Voucher creations that did not commit, by error kind.",
		},
		[]string{"kind"},
	)

	VoucherCreateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledgr_voucher_create_duration_seconds",
			Help:    "Time spent creating a voucher, transaction included.",
			Buckets: prometheus.DefBuckets,
		},
	)

	BillsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_bill_settlements_total",
			Help: "Bill settlements recorded, by bill type.",
		},
		[]string{"type"},
	)

	PeriodRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_period_runs_total",
			Help: "Period-end operations, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledgr_report_cache_lookups_total",
			Help: "Report cache lookups by result.",
		},
		[]string{"result"},
	)
)

// ErrorKind labels an error by its place in the error taxonomy.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, apperr.ErrValidation):
		return "validation"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}

// Outcome labels the result of an operation.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}

	return ErrorKind(err)
}
