package importer

import (
	"io"

	"github.com/MrJamesThe3rd/ledgr/internal/importer/journal"
)

type Format string

const (
	FormatJournal Format = "journal"
)

type Importer interface {
	Parse(r io.Reader) (*journal.Journal, error)
}

// Result reports an import voucher by voucher.
type Result struct {
	Format  Format   `json:"format"`
	Layout  string   `json:"layout"`
	Charset string   `json:"charset"`
	Created []Posted `json:"created"`
	Failed  []Failed `json:"failed"`
}

type Posted struct {
	Row           int    `json:"row"`
	Reference     string `json:"reference"`
	VoucherID     string `json:"voucher_id"`
	VoucherNumber string `json:"voucher_number"`
}

type Failed struct {
	Row       int    `json:"row"`
	Reference string `json:"reference"`
	Error     string `json:"error"`
}
