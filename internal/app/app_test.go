package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgr/internal/app"
	"github.com/MrJamesThe3rd/ledgr/internal/http/api"
	"github.com/MrJamesThe3rd/ledgr/internal/period"
	"github.com/MrJamesThe3rd/ledgr/internal/store/memory"
)

type client struct {
	t      *testing.T
	server *httptest.Server
	tenant uuid.UUID
}

func newClient(t *testing.T) *client {
	t.Helper()

	services := app.New(app.Memory(memory.New()), period.DefaultConfig(), nil, slog.New(slog.DiscardHandler))

	server := httptest.NewServer(services.Router([]string{"*"}, 0))
	t.Cleanup(server.Close)

	return &client{t: t, server: server, tenant: uuid.New()}
}

func (c *client) do(req *http.Request, out any) int {
	c.t.Helper()

	req.Header.Set(api.TenantHeader, c.tenant.String())

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func (c *client) call(method, path string, body, out any) int {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.server.URL+path, r)
	require.NoError(c.t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

type voucherType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type voucherBody struct {
	ID            string `json:"id"`
	VoucherNumber string `json:"voucher_number"`
	TotalAmount   string `json:"total_amount"`
	Entries       []struct {
		LedgerName string `json:"ledger_name"`
		Type       string `json:"type"`
		Amount     string `json:"amount"`
	} `json:"entries"`
}

type billBody struct {
	ID                string `json:"id"`
	Number            string `json:"bill_number"`
	Type              string `json:"type"`
	Status            string `json:"status"`
	OutstandingAmount string `json:"outstanding_amount"`
}

func (c *client) seed() map[string]string {
	c.t.Helper()

	var types []voucherType
	require.Equal(c.t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/voucher-types/seed", nil, &types))

	ids := make(map[string]string, len(types))
	for _, vt := range types {
		ids[vt.Category] = vt.ID
	}

	return ids
}

func TestAPI_RequiresTenant(t *testing.T) {
	c := newClient(t)

	resp, err := c.server.Client().Get(c.server.URL + "/api/v1/vouchers")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_VoucherLifecycle(t *testing.T) {
	c := newClient(t)
	types := c.seed()
	require.Len(t, types, 8)

	var preview struct {
		VoucherNumber string `json:"voucher_number"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/voucher-types/"+types["SALES"]+"/next-number", nil, &preview))
	assert.Equal(t, "SAL/1", preview.VoucherNumber)

	sale := map[string]any{
		"voucher_type_id": types["SALES"],
		"date":            "2026-04-02",
		"reference":       "INV-1",
		"entries": []map[string]any{
			{
				"ledger_name": "Beta Stores",
				"type":        "DEBIT",
				"amount":      "500",
				"bill_references": []map[string]any{
					{"reference": "INV-1", "amount": "500", "type": "NEW", "due_date": "2026-05-02"},
				},
			},
			{"ledger_name": "Sales", "type": "CREDIT", "amount": 500},
		},
	}

	var created voucherBody
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/vouchers", sale, &created))
	assert.Equal(t, "SAL/1", created.VoucherNumber)
	assert.Equal(t, "500.00", created.TotalAmount)
	require.Len(t, created.Entries, 2)

	var fetched voucherBody
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/vouchers/"+created.ID, nil, &fetched))
	assert.Equal(t, created.VoucherNumber, fetched.VoucherNumber)

	assert.Equal(t, http.StatusNotFound, c.call(http.MethodGet, "/api/v1/vouchers/"+uuid.NewString(), nil, nil))

	var problem struct {
		Field string `json:"field"`
	}

	unbalanced := map[string]any{
		"voucher_type_id": types["JOURNAL"],
		"entries": []map[string]any{
			{"ledger_name": "Rent", "type": "DEBIT", "amount": "100"},
			{"ledger_name": "Bank", "type": "CREDIT", "amount": "99.99"},
		},
	}
	require.Equal(t, http.StatusBadRequest, c.call(http.MethodPost, "/api/v1/vouchers", unbalanced, &problem))
	assert.Equal(t, "entries", problem.Field)

	var bills []billBody
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/bills?type=receivable", nil, &bills))
	require.Len(t, bills, 1)
	assert.Equal(t, "INV-1", bills[0].Number)
	assert.Equal(t, "500.00", bills[0].OutstandingAmount)

	var reversal voucherBody
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/vouchers/"+created.ID+"/reverse", nil, &reversal))
	assert.Equal(t, "SAL/2", reversal.VoucherNumber)
	assert.Equal(t, "CREDIT", reversal.Entries[0].Type)

	assert.Equal(t, http.StatusBadRequest, c.call(http.MethodPost, "/api/v1/vouchers/"+created.ID+"/reverse", nil, nil))
}

func TestAPI_ImportSettlesBill(t *testing.T) {
	c := newClient(t)
	c.seed()

	csv := `Date;Voucher Type;Reference;Ledger;Debit;Credit;Bill;Bill Type
2026-04-02;Sales;INV-9;Acme;1000;;INV-9;
2026-04-02;Sales;INV-9;Sales;;1000;;
2026-04-10;Receipt;RC-1;Bank;400;;;
2026-04-10;Receipt;RC-1;Acme;;400;INV-9;AGAINST
2026-04-11;Unknown;X-1;Bank;1;;;
2026-04-11;Unknown;X-1;Acme;;1;;
`

	var body bytes.Buffer

	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "daybook.csv")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(csv))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, c.server.URL+"/api/v1/import", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())

	var result struct {
		Layout  string `json:"layout"`
		Created []struct {
			VoucherNumber string `json:"voucher_number"`
		} `json:"created"`
		Failed []struct {
			Reference string `json:"reference"`
		} `json:"failed"`
	}
	require.Equal(t, http.StatusMultiStatus, c.do(req, &result))

	assert.Equal(t, "daybook", result.Layout)
	require.Len(t, result.Created, 2)
	assert.Equal(t, "SAL/1", result.Created[0].VoucherNumber)
	assert.Equal(t, "RCT/1", result.Created[1].VoucherNumber)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "X-1", result.Failed[0].Reference)

	var bills []billBody
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/bills?ledger=acme", nil, &bills))
	require.Len(t, bills, 1)
	assert.Equal(t, "600.00", bills[0].OutstandingAmount)
	assert.Equal(t, "PARTIAL", bills[0].Status)

	var aging struct {
		Total string `json:"total"`
		Count int    `json:"count"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/bills/reports/aging?type=RECEIVABLE&as_on=2026-06-30", nil, &aging))
	assert.Equal(t, "600.00", aging.Total)
	assert.Equal(t, 1, aging.Count)
}

func TestAPI_PeriodClose(t *testing.T) {
	c := newClient(t)
	types := c.seed()

	for _, l := range []map[string]any{
		{"name": "Bank", "category": "CURRENT_ASSET"},
		{"name": "Sales", "category": "DIRECT_INCOME"},
	} {
		require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/ledgers", l, nil))
	}

	sale := map[string]any{
		"voucher_type_id": types["SALES"],
		"date":            "2026-03-01",
		"entries": []map[string]any{
			{"ledger_name": "Bank", "type": "DEBIT", "amount": "700"},
			{"ledger_name": "Sales", "type": "CREDIT", "amount": "700"},
		},
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/vouchers", sale, nil))

	var balances []struct {
		LedgerName string `json:"ledger_name"`
		Amount     string `json:"amount"`
		Type       string `json:"type"`
	}
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/api/v1/period/trial-balance?as_of=2026-03-31&category=direct_income", nil, &balances))
	require.Len(t, balances, 1)
	assert.Equal(t, "700.00", balances[0].Amount)
	assert.Equal(t, "CREDIT", balances[0].Type)

	var closing struct {
		VoucherNumber string `json:"voucher_number"`
		TotalAmount   string `json:"total_amount"`
	}
	require.Equal(t, http.StatusCreated, c.call(http.MethodPost, "/api/v1/period/close", map[string]any{"as_of": "2026-03-31"}, &closing))
	assert.Equal(t, "JV/1", closing.VoucherNumber)
	assert.Equal(t, "700.00", closing.TotalAmount)

	assert.Equal(t, http.StatusBadRequest, c.call(http.MethodPost, "/api/v1/period/close", map[string]any{"as_of": "2026-03-31"}, nil))
	assert.Equal(t, http.StatusBadRequest, c.call(http.MethodPost, "/api/v1/period/close", map[string]any{}, nil))
}

func TestAPI_Metrics(t *testing.T) {
	c := newClient(t)
	c.seed()

	resp, err := c.server.Client().Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ledgr_http_requests_total")
}
