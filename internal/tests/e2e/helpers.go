package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// APIResponse mirrors the gateway envelope with loosely typed data.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

// TestClient wraps HTTP calls to gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TestClient) Post(t *testing.T, path string, body any) (int, APIResponse) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(t, httpReq)
}

func (c *TestClient) Get(t *testing.T, path string) (int, APIResponse) {
	t.Helper()

	httpReq, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(t, err)

	return c.do(t, httpReq)
}

func (c *TestClient) GetRaw(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := c.httpClient.Get(c.baseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func (c *TestClient) do(t *testing.T, httpReq *http.Request) (int, APIResponse) {
	t.Helper()

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var apiResp APIResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &apiResp), string(bodyBytes))
	return resp.StatusCode, apiResp
}

// ProcessorCall is one request the fake processor received.
type ProcessorCall struct {
	Path      string
	Operation string
	Body      string
}

// FakeProcessor answers the Egopay SOAP operations with canned envelopes.
// Order number "missing" is declined with a plain-text reply, payment id
// "broken" gets a SOAP fault and payment id "offline" gets a 503 page.
type FakeProcessor struct {
	*httptest.Server
	user     string
	password string

	mu    sync.Mutex
	calls []ProcessorCall
}

func NewFakeProcessor(t *testing.T, user, password string) *FakeProcessor {
	t.Helper()

	p := &FakeProcessor{user: user, password: password}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.Close)
	return p
}

func (p *FakeProcessor) Calls() []ProcessorCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ProcessorCall(nil), p.calls...)
}

var numberPattern = regexp.MustCompile(`<order><number>([^<]*)</number>`)
var paymentPattern = regexp.MustCompile(`<payment_id>([^<]*)</payment_id>`)

func (p *FakeProcessor) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := string(raw)

	action := strings.Trim(r.Header.Get("SOAPAction"), `"`)
	op := action[strings.LastIndexByte(action, '#')+1:]

	p.mu.Lock()
	p.calls = append(p.calls, ProcessorCall{Path: r.URL.Path, Operation: op, Body: body})
	p.mu.Unlock()

	if user, password, ok := r.BasicAuth(); !ok || user != p.user || password != p.password {
		writeFault(w, "Authorization failed")
		return
	}

	number := firstMatch(numberPattern, body)
	order := fmt.Sprintf("<order><shop_id>16531</shop_id><number>%s</number><order_id>%s</order_id></order>", number, number)

	switch op {
	case "register_online", "register_offline", "register_simple":
		writeReturn(w, op, fmt.Sprintf(
			"<redirect_url>https://sandbox.egopay.ru/payments/request</redirect_url><session>sess-%s</session>", number))
	case "cancel", "reject":
		if number == "missing" {
			writeReturn(w, op, "Order not found")
			return
		}
		writeReturn(w, op, order+"<status>"+op+"ed</status>")
	case "refund":
		switch firstMatch(paymentPattern, body) {
		case "broken":
			writeFault(w, "Payment storage unavailable")
			return
		case "offline":
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		writeReturn(w, op, order+"<status>refunded</status>")
	case "confirm":
		writeReturn(w, op, order+"<status>confirmed</status>")
	case "get_by_order":
		writeReturn(w, op, order+"<status>paid</status>")
	default:
		writeFault(w, "Unknown operation "+op)
	}
}

func firstMatch(pattern *regexp.Regexp, body string) string {
	if m := pattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

func writeReturn(w http.ResponseWriter, op, retval string) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/" xmlns:ns1="urn:egopay">
<SOAP-ENV:Body><ns1:%sResponse><retval>%s</retval></ns1:%sResponse></SOAP-ENV:Body>
</SOAP-ENV:Envelope>`, op, retval, op)
}

func writeFault(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/">
<SOAP-ENV:Body><SOAP-ENV:Fault><faultcode>SOAP-ENV:Server</faultcode><faultstring>%s</faultstring></SOAP-ENV:Fault></SOAP-ENV:Body>
</SOAP-ENV:Envelope>`, reason)
}
