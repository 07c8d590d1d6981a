package e2e

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/egopay-gateway/internal/config"
	"github.com/DanielPopoola/egopay-gateway/internal/gateway"
	"github.com/DanielPopoola/egopay-gateway/internal/infrastructure/soap"
	"github.com/DanielPopoola/egopay-gateway/internal/interfaces/rest/router"
	"github.com/DanielPopoola/egopay-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const (
	orderWsdl  = "../../../resources/wsdl/orderv2.wsdl"
	statusWsdl = "../../../resources/wsdl/statusv4.wsdl"
)

var payer = map[string]any{
	"id":    10,
	"name":  "John Doe",
	"email": "a@b.ru",
	"phone": "+7 (999) 626-45-13",
}

// E2ETestSuite runs the whole HTTP surface against a fake processor over
// real SOAP.
type E2ETestSuite struct {
	suite.Suite
	processor *FakeProcessor
	client    *TestClient
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupTest() {
	t := suite.T()
	logger := slog.New(slog.DiscardHandler)

	suite.processor = NewFakeProcessor(t, "hello", "world")

	registry := prometheus.NewRegistry()
	dialer := soap.NewInstrumentedDialer(
		soap.NewDialer(config.SoapConfig{Timeout: 5 * time.Second, UserAgent: "egopay-gateway/e2e"}),
		metrics.NewChannelMetrics(registry),
		logger,
	)

	gw, err := gateway.New(config.EgopayConfig{
		TestMode:           false,
		OrderWsdl:          orderWsdl,
		StatusWsdl:         statusWsdl,
		LiveOrderEndpoint:  suite.processor.URL + "/order/v2/",
		LiveStatusEndpoint: suite.processor.URL + "/status/v4/",
		ShopID:             "16531",
		User:               "hello",
		Password:           "world",
		Language:           "en",
		Currency:           "RUB",
	}, dialer, logger)
	suite.Require().NoError(err)

	handler, err := router.New(router.Options{
		Gateway:  gw,
		Gatherer: registry,
		Timeout:  5 * time.Second,
		Logger:   logger,
	})
	suite.Require().NoError(err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	suite.client = NewTestClient(server.URL)
}

// ============================================================================
// HAPPY PATH
// ============================================================================

func (suite *E2ETestSuite) TestRegisterOrder() {
	status, resp := suite.client.Post(suite.T(), "/v1/orders/register", map[string]any{
		"order_id": "100500",
		"amount":   "1500",
		"customer": payer,
		"items": []map[string]any{
			{"typename": "service", "number": 2, "amount": "10"},
		},
	})

	suite.Equal(http.StatusOK, status)
	suite.True(resp.Success)
	suite.Equal("https://sandbox.egopay.ru/payments/request?session=sess-100500", resp.Data["redirect_url"])
	suite.Equal("sess-100500", resp.Data["transaction_reference"])

	calls := suite.processor.Calls()
	suite.Require().Len(calls, 1)
	suite.Equal("/order/v2/", calls[0].Path)
	suite.Equal("register_online", calls[0].Operation)
	suite.Contains(calls[0].Body, `<cost><amount>1500.00</amount><currency>RUB</currency></cost>`)
	suite.Contains(calls[0].Body, `<item><name>Language</name><value>en</value></item>`)
	suite.Contains(calls[0].Body, `<customer><email>a@b.ru</email><id>10</id><name>John Doe</name><phone>+7 (999) 626-45-13</phone></customer>`)
	suite.Contains(calls[0].Body, `<typename>service</typename>`)
}

func (suite *E2ETestSuite) TestOrderLifecycle() {
	t := suite.T()

	status, resp := suite.client.Post(t, "/v1/payments/confirm", map[string]any{
		"order_id": "100500", "txn_id": "confirm1_1", "amount": "1500",
	})
	suite.Equal(http.StatusOK, status)
	suite.True(resp.Success)
	suite.Equal("confirmed", resp.Data["status"])

	status, resp = suite.client.Post(t, "/v1/payments/refund", map[string]any{
		"order_id": "100500", "payment_id": "8725", "refund_id": "refund1_1", "amount": "500",
	})
	suite.Equal(http.StatusOK, status)
	suite.True(resp.Success)
	suite.Equal("refunded", resp.Data["status"])

	status, resp = suite.client.Post(t, "/v1/orders/reject", map[string]any{"order_id": "100501"})
	suite.Equal(http.StatusOK, status)
	suite.Equal("rejected", resp.Data["status"])

	var ops []string
	for _, call := range suite.processor.Calls() {
		ops = append(ops, call.Operation)
	}
	suite.Equal([]string{"confirm", "refund", "reject"}, ops)
}

func (suite *E2ETestSuite) TestOrderStatus_UsesStatusService() {
	status, resp := suite.client.Get(suite.T(), "/v1/orders/16531/100500/status")

	suite.Equal(http.StatusOK, status)
	suite.True(resp.Success)
	suite.Equal("100500", resp.Data["order_id"])
	suite.Equal("paid", resp.Data["status"])

	calls := suite.processor.Calls()
	suite.Require().Len(calls, 1)
	suite.Equal("/status/v4/", calls[0].Path)
	suite.Equal("get_by_order", calls[0].Operation)
}

// ============================================================================
// FAILURES
// ============================================================================

func (suite *E2ETestSuite) TestDeclinedOperationIsData() {
	status, resp := suite.client.Post(suite.T(), "/v1/orders/cancel", map[string]any{"order_id": "missing"})

	suite.Equal(http.StatusOK, status)
	suite.False(resp.Success)
	suite.Equal("Order not found", resp.Data["fault"])
}

func (suite *E2ETestSuite) TestSoapFaultIsData() {
	status, resp := suite.client.Post(suite.T(), "/v1/payments/refund", map[string]any{
		"order_id": "100500", "payment_id": "broken", "refund_id": "refund1_2", "amount": "1",
	})

	suite.Equal(http.StatusOK, status)
	suite.False(resp.Success)
	suite.Nil(resp.Error)
	suite.Equal("Payment storage unavailable", resp.Data["fault"])
}

func (suite *E2ETestSuite) TestProcessorOutageIsBadGateway() {
	status, resp := suite.client.Post(suite.T(), "/v1/payments/refund", map[string]any{
		"order_id": "100500", "payment_id": "offline", "refund_id": "refund1_3", "amount": "1",
	})

	suite.Equal(http.StatusBadGateway, status)
	suite.False(resp.Success)
	suite.Require().NotNil(resp.Error)
	suite.Equal("TRANSPORT_ERROR", resp.Error.Code)
}

func (suite *E2ETestSuite) TestInvalidRequestsNeverReachProcessor() {
	t := suite.T()

	status, resp := suite.client.Post(t, "/v1/orders/register", map[string]any{
		"order_id": "1", "amount": "10",
	})
	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("INVALID_REQUEST", resp.Error.Code)

	status, resp = suite.client.Post(t, "/v1/payments/confirm", map[string]any{
		"order_id": "1", "txn_id": "t", "amount": "10", "currency": "GBP",
	})
	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("INVALID_REQUEST", resp.Error.Code)

	suite.Empty(suite.processor.Calls())
}

// ============================================================================
// SURFACE
// ============================================================================

func (suite *E2ETestSuite) TestHealthAndDocs() {
	t := suite.T()

	status, resp := suite.client.Get(t, "/healthz")
	suite.Equal(http.StatusOK, status)
	suite.Equal("Egopayment", resp.Data["gateway"])
	suite.Equal(false, resp.Data["test_mode"])

	status, body := suite.client.GetRaw(t, "/docs/openapi.json")
	suite.Equal(http.StatusOK, status)
	suite.Contains(body, `"openapi": "3.0.3"`)
}

func (suite *E2ETestSuite) TestMetricsCountOutcomes() {
	t := suite.T()

	suite.client.Post(t, "/v1/orders/cancel", map[string]any{"order_id": "100500"})
	suite.client.Post(t, "/v1/orders/cancel", map[string]any{"order_id": "missing"})

	status, body := suite.client.GetRaw(t, "/metrics")
	suite.Equal(http.StatusOK, status)
	suite.True(strings.Contains(body, `egopay_soap_calls_total{operation="cancel",outcome="success"} 1`), body)
	suite.True(strings.Contains(body, `egopay_soap_calls_total{operation="cancel",outcome="fault"} 1`), body)
}
