package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/bill"
	"github.com/MrJamesThe3rd/ledgr/internal/encoding"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006"}

// Journal is the content of one export file.
type Journal struct {
	Profile  string
	Charset  string
	Vouchers []Draft
}

// Draft is a voucher assembled from consecutive rows sharing date, voucher
// type and reference.
type Draft struct {
	// Row is the file line of the first row.
	Row         int
	Date        time.Time
	VoucherType string
	Reference   string
	Narration   string
	Lines       []Line
	// Problems are row errors found while reading; such a draft is never posted.
	Problems []string
}

type Line struct {
	Row       int
	Ledger    string
	Side      ledger.Side
	Amount    decimal.Decimal
	Narration string
	Bill      string
	BillType  bill.RefType
	DueDate   string
}

// Parser reads ';' separated journal exports in any of the known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Journal, error) {
	text, err := encoding.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(text)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows  [][]string
		lines []int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, record)
		lines = append(lines, line)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no known journal layout: expected Date, Voucher Type, Reference, Ledger and Debit/Credit or Amount columns")
	}

	return &Journal{
		Profile:  profile.Name,
		Charset:  text.Charset,
		Vouchers: parseRows(profile, cols, rows[headerIdx+1:], lines[headerIdx+1:]),
	}, nil
}

// colIndex maps lower-cased header names to their position.
type colIndex map[string]int

func (c colIndex) lookup(name string) int {
	if name == "" {
		return -1
	}

	if idx, ok := c[strings.ToLower(name)]; ok {
		return idx
	}

	return -1
}

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[strings.ToLower(name)] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if cols.lookup(name) < 0 {
			return false
		}
	}

	return true
}

// parseRows groups data rows into drafts. Rows without a readable date are
// footers or subtotals and are skipped. lines holds the file line of each row.
func parseRows(p *Profile, cols colIndex, rows [][]string, lines []int) []Draft {
	var (
		drafts []Draft
		key    string
	)

	for i, row := range rows {
		rowNum := lines[i]

		date, ok := parseDate(cellValue(row, cols.lookup(p.DateCol)))
		if !ok {
			continue
		}

		voucherType := cellValue(row, cols.lookup(p.TypeCol))
		reference := cellValue(row, cols.lookup(p.RefCol))
		narration := cellValue(row, cols.lookup(p.NarrationCol))

		rowKey := date.Format(time.DateOnly) + "\x00" + strings.ToLower(voucherType) + "\x00" + reference
		if len(drafts) == 0 || rowKey != key {
			drafts = append(drafts, Draft{
				Row:         rowNum,
				Date:        date,
				VoucherType: voucherType,
				Reference:   reference,
			})
			key = rowKey
		}

		d := &drafts[len(drafts)-1]
		if d.Narration == "" {
			d.Narration = narration
		}

		line, err := parseLine(p, cols, row)
		if err != nil {
			d.Problems = append(d.Problems, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		line.Row = rowNum
		line.Narration = narration
		d.Lines = append(d.Lines, line)
	}

	return drafts
}

func parseLine(p *Profile, cols colIndex, row []string) (Line, error) {
	side, amount, err := parseAmount(p, cols, row)
	if err != nil {
		return Line{}, err
	}

	line := Line{
		Ledger: cellValue(row, cols.lookup(p.LedgerCol)),
		Side:   side,
		Amount: amount,
		Bill:   cellValue(row, cols.lookup(p.BillCol)),
	}

	if line.Bill == "" {
		return line, nil
	}

	line.BillType = bill.RefNew

	if s := cellValue(row, cols.lookup(p.BillTypeCol)); s != "" {
		line.BillType = bill.RefType(strings.ReplaceAll(strings.ToUpper(s), " ", "_"))
	}

	if s := cellValue(row, cols.lookup(p.DueDateCol)); s != "" {
		due, ok := parseDate(s)
		if !ok {
			return Line{}, fmt.Errorf("unreadable due date %q", s)
		}

		line.DueDate = due.Format(time.DateOnly)
	}

	return line, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseAmount(p *Profile, cols colIndex, row []string) (ledger.Side, decimal.Decimal, error) {
	switch p.AmountMode {
	case amountSplit:
		return parseSplitAmount(cellValue(row, cols.lookup(p.DebitCol)), cellValue(row, cols.lookup(p.CreditCol)))
	case amountSigned:
		return parseSignedAmount(cellValue(row, cols.lookup(p.AmountCol)))
	}

	return "", decimal.Zero, fmt.Errorf("unknown amount layout")
}

func parseSignedAmount(s string) (ledger.Side, decimal.Decimal, error) {
	if s == "" {
		return "", decimal.Zero, fmt.Errorf("missing amount")
	}

	d, err := money.Parse(s)
	if err != nil {
		return "", decimal.Zero, err
	}

	if money.IsNegative(d) {
		return ledger.Credit, d.Neg(), nil
	}

	return ledger.Debit, d, nil
}

func parseSplitAmount(debit, credit string) (ledger.Side, decimal.Decimal, error) {
	var dr, cr decimal.Decimal

	if debit != "" {
		d, err := money.Parse(debit)
		if err != nil {
			return "", decimal.Zero, err
		}

		dr = d.Abs()
	}

	if credit != "" {
		d, err := money.Parse(credit)
		if err != nil {
			return "", decimal.Zero, err
		}

		cr = d.Abs()
	}

	switch {
	case !money.IsZero(dr) && !money.IsZero(cr):
		return "", decimal.Zero, fmt.Errorf("both debit and credit given")
	case !money.IsZero(dr):
		return ledger.Debit, dr, nil
	case !money.IsZero(cr):
		return ledger.Credit, cr, nil
	}

	return "", decimal.Zero, fmt.Errorf("missing amount")
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
