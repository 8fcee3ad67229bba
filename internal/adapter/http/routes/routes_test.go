package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"patisserie_marketplace/internal/app"
	"patisserie_marketplace/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testContainer() *app.Container {
	return &app.Container{
		Config: &config.Config{
			Server: config.ServerConfig{Mode: gin.TestMode, MaxBodyBytes: 1 << 10},
			Cron:   config.CronConfig{Secret: "s3cret"},
		},
		Logger: zap.NewNop(),
		HealthChecks: map[string]app.HealthCheck{
			"dynamodb": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("down") },
		},
	}
}

func serve(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	r := NewRouter(testContainer())

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /v1/ping",
		"GET /v1/shops/:shop/order-limit",
		"POST /v1/shops/:shop/checkout",
		"POST /v1/shops/:shop/custom-orders",
		"GET /v1/orders/:order_id",
		"GET /v1/orders/:order_id/payments",
		"POST /v1/orders/:order_id/quote",
		"POST /v1/orders/:order_id/refuse",
		"POST /v1/orders/:order_id/ready",
		"POST /v1/orders/:order_id/complete",
		"POST /v1/orders/:order_id/verify-transfer",
		"POST /v1/orders/:order_id/pay",
		"POST /v1/orders/:order_id/declare-transfer",
		"GET /:shop_slug/order/paypal-return",
		"GET /:shop_slug/order/stripe-return",
		"GET /:shop_slug/order/mercadopago-return",
		"POST /v1/webhooks/stripe",
		"GET /api/cron/payout-affiliate-commissions",
		"POST /api/cron/payout-affiliate-commissions",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestNewRouter_Middlewares(t *testing.T) {
	r := NewRouter(testContainer())

	t.Run("ping", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/ping", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health reports failing checks", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"down"`)
	})

	t.Run("merchant routes need identity", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/ready", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cron secret enforced", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/cron/payout-affiliate-commissions?secret=wrong", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("oversized body", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/shops/chez-lou/checkout", strings.Repeat("x", 2<<10), nil)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("panics become 500", func(t *testing.T) {
		r := NewRouter(testContainer())
		r.GET("/boom", func(*gin.Context) { panic("boom") })
		w := serve(r, http.MethodGet, "/boom", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRedactQuery(t *testing.T) {
	values, err := url.ParseQuery("secret=s3cret&force=true&token=abc")
	require.NoError(t, err)

	got := redactQuery(values)
	assert.NotContains(t, got, "s3cret")
	assert.NotContains(t, got, "abc")
	assert.Contains(t, got, "force=true")
}
