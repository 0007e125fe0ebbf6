// Package app wires the services of the engine over one storage backend.
package app

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	billStore "github.com/MrJamesThe3rd/ledgr/internal/bill/store"
	ledgrHttp "github.com/MrJamesThe3rd/ledgr/internal/http"
	billHandler "github.com/MrJamesThe3rd/ledgr/internal/http/bill"
	importHandler "github.com/MrJamesThe3rd/ledgr/internal/http/importcsv"
	ledgerHandler "github.com/MrJamesThe3rd/ledgr/internal/http/ledger"
	matchingHandler "github.com/MrJamesThe3rd/ledgr/internal/http/matching"
	numberingHandler "github.com/MrJamesThe3rd/ledgr/internal/http/numbering"
	periodHandler "github.com/MrJamesThe3rd/ledgr/internal/http/period"
	voucherHandler "github.com/MrJamesThe3rd/ledgr/internal/http/voucher"
	"github.com/MrJamesThe3rd/ledgr/internal/importer"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/ledgr/internal/ledger/store"
	"github.com/MrJamesThe3rd/ledgr/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/ledgr/internal/matching/store"
	"github.com/MrJamesThe3rd/ledgr/internal/numbering"
	numberingStore "github.com/MrJamesThe3rd/ledgr/internal/numbering/store"
	"github.com/MrJamesThe3rd/ledgr/internal/period"
	periodStore "github.com/MrJamesThe3rd/ledgr/internal/period/store"
	"github.com/MrJamesThe3rd/ledgr/internal/store/memory"
	"github.com/MrJamesThe3rd/ledgr/internal/voucher"
	voucherStore "github.com/MrJamesThe3rd/ledgr/internal/voucher/store"
)

// Backend is the set of repositories the services run on.
type Backend struct {
	Ledgers   ledger.Repository
	Numbering numbering.Repository
	Vouchers  voucher.Repository
	Bills     bill.Repository
	Postings  period.Repository
	Aliases   matching.Repository
}

func Postgres(db *sql.DB) Backend {
	return Backend{
		Ledgers:   ledgerStore.New(db),
		Numbering: numberingStore.New(db),
		Vouchers:  voucherStore.New(db),
		Bills:     billStore.New(db),
		Postings:  periodStore.New(db),
		Aliases:   matchingStore.New(db),
	}
}

func Memory(s *memory.Store) Backend {
	return Backend{
		Ledgers:   s,
		Numbering: s,
		Vouchers:  s.Vouchers(),
		Bills:     s.Bills(),
		Postings:  s,
		Aliases:   s,
	}
}

type Services struct {
	Ledgers   *ledger.Service
	Numbering *numbering.Service
	Vouchers  *voucher.Service
	Bills     *bill.Service
	Period    *period.Processor
	Matching  *matching.Service
	Importer  *importer.Service
}

// New builds the services. cache may be nil, which disables report caching.
func New(b Backend, periodCfg period.Config, cache bill.ReportCache, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}

	billOpts := []bill.Option{bill.WithLogger(logger)}
	voucherOpts := []voucher.Option{voucher.WithLogger(logger)}

	if cache != nil {
		billOpts = append(billOpts, bill.WithCache(cache))
		voucherOpts = append(voucherOpts, voucher.WithBillCache(cache))
	}

	s := &Services{
		Ledgers:   ledger.NewService(b.Ledgers),
		Numbering: numbering.NewService(b.Numbering),
		Vouchers:  voucher.NewService(b.Vouchers, voucherOpts...),
		Bills:     bill.NewService(b.Bills, billOpts...),
		Matching:  matching.NewService(b.Aliases),
	}

	s.Period = period.NewProcessor(b.Postings, s.Ledgers, s.Vouchers, s.Numbering, periodCfg)
	s.Importer = importer.NewService(s.Vouchers, s.Numbering, s.Matching, logger)

	return s
}

// Router returns the HTTP API over the services.
func (s *Services) Router(allowedOrigins []string, timeout time.Duration) http.Handler {
	return ledgrHttp.New(ledgrHttp.Handlers{
		Vouchers:     voucherHandler.NewHandler(s.Vouchers),
		VoucherTypes: numberingHandler.NewHandler(s.Numbering),
		Ledgers:      ledgerHandler.NewHandler(s.Ledgers),
		Bills:        billHandler.NewHandler(s.Bills),
		Period:       periodHandler.NewHandler(s.Period, s.Ledgers),
		Matching:     matchingHandler.NewHandler(s.Matching),
		Import:       importHandler.NewHandler(s.Importer),
	}, ledgrHttp.Options{AllowedOrigins: allowedOrigins, Timeout: timeout})
}
