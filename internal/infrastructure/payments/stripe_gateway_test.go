package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

func newTestStripeGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		MaxNetworkRetries: stripe.Int64(0),
	})
	api := client.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return newStripeGateway(api, "whsec_test", "EUR", zap.NewNop())
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	_, err := NewStripeGateway("", "", "EUR", zap.NewNop())
	require.ErrorIs(t, err, ErrMissingStripeSecretKey)
}

func TestStripeGateway_CreatePayment(t *testing.T) {
	t.Run("destination charge to onboarded merchant", func(t *testing.T) {
		g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.NoError(t, r.ParseForm())

			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "4000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "acct_merchant", r.PostForm.Get("payment_intent_data[transfer_data][destination]"))
			assert.Equal(t, "pend-1", r.PostForm.Get("metadata[pending_id]"))
			assert.Equal(t, "https://shop.test/s/order/stripe-return?pendingId=pend-1&session_id={CHECKOUT_SESSION_ID}", r.PostForm.Get("success_url"))

			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/cs_test_1"}`))
		})

		redirect, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{
			Pending:     entities.PendingOrder{ID: "pend-1", OrderData: entities.OrderDraft{CustomerEmail: "a@b.fr"}},
			Merchant:    entities.Profile{StripeAccountID: "acct_merchant", StripeOnboarded: true},
			Description: "Fraisier",
			Amount:      decimal.RequireFromString("40"),
			ReturnURL:   "https://shop.test/s/order/stripe-return?pendingId=pend-1",
			CancelURL:   "https://shop.test/s",
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", redirect.ProviderOrderID)
		assert.Equal(t, "https://checkout.stripe.com/c/cs_test_1", redirect.RedirectURL)
	})

	t.Run("no transfer data without onboarding", func(t *testing.T) {
		g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Empty(t, r.PostForm.Get("payment_intent_data[transfer_data][destination]"))
			_, _ = w.Write([]byte(`{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.stripe.com/c/cs_test_2"}`))
		})

		_, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{
			Pending:  entities.PendingOrder{ID: "pend-2"},
			Merchant: entities.Profile{StripeAccountID: "acct_merchant"},
			Amount:   decimal.RequireFromString("12.50"),
		})
		require.NoError(t, err)
	})

	t.Run("provider error", func(t *testing.T) {
		g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad"}}`))
		})
		_, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{Pending: entities.PendingOrder{ID: "p"}})
		require.Error(t, err)
	})
}

func TestStripeGateway_GetStatusAndCapture(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus interfaces.ProviderStatus
	}{
		{"paid", `{"id":"cs_1","payment_status":"paid","status":"complete","amount_total":4000,"payment_intent":"pi_1","client_reference_id":"pend-1","metadata":{"pending_id":"pend-1"}}`, interfaces.ProviderStatusCompleted},
		{"open", `{"id":"cs_1","payment_status":"unpaid","status":"open","amount_total":4000}`, interfaces.ProviderStatusPending},
		{"expired", `{"id":"cs_1","payment_status":"unpaid","status":"expired","amount_total":4000}`, interfaces.ProviderStatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/checkout/sessions/cs_1", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			state, err := g.GetStatus(context.Background(), "cs_1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, state.Status)
			if tt.wantStatus == interfaces.ProviderStatusCompleted {
				assert.Equal(t, "pend-1", state.ExternalReference)
			}

			res, err := g.Capture(context.Background(), "cs_1")
			if tt.wantStatus != interfaces.ProviderStatusCompleted {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, state.HasCaptures)
			assert.True(t, res.CapturedAmount.Equal(decimal.RequireFromString("40")))
			assert.Equal(t, "pi_1", res.CaptureID)
			assert.Equal(t, "pi_1", res.PaymentIntentID)
		})
	}
}

func TestStripeGateway_CreateTransfer(t *testing.T) {
	g := newTestStripeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "affiliate_payout_X_2024-05", r.Header.Get("Idempotency-Key"))
		assert.Equal(t, "4500", r.PostForm.Get("amount"))
		assert.Equal(t, "acct_ref", r.PostForm.Get("destination"))
		assert.Equal(t, "2024-05", r.PostForm.Get("metadata[period]"))
		_, _ = w.Write([]byte(`{"id":"tr_1","object":"transfer","amount":4500}`))
	})

	tr, err := g.CreateTransfer(context.Background(), interfaces.TransferRequest{
		DestinationAccount: "acct_ref",
		AmountMinor:        4500,
		IdempotencyKey:     "affiliate_payout_X_2024-05",
		Metadata:           map[string]string{"period": "2024-05"},
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.Transfer{ID: "tr_1", AmountMinor: 4500}, tr)
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	g := newStripeGateway(nil, "whsec_test", "EUR", zap.NewNop())

	event := map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": "2020-08-27",
		"data": map[string]any{"object": map[string]any{
			"id":             "cs_1",
			"object":         "checkout.session",
			"payment_status": "paid",
			"metadata":       map[string]string{"pending_id": "pend-1"},
		}},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("valid signature", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: "whsec_test"})
		got, err := g.ParseWebhook(payload, signed.Header)
		require.NoError(t, err)
		assert.Equal(t, interfaces.CheckoutEvent{
			EventID:   "evt_1",
			Type:      "checkout.session.completed",
			SessionID: "cs_1",
			PendingID: "pend-1",
			Paid:      true,
		}, got)
	})

	t.Run("bad signature", func(t *testing.T) {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: "whsec_other"})
		_, err := g.ParseWebhook(payload, signed.Header)
		require.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := newStripeGateway(nil, "", "EUR", zap.NewNop()).ParseWebhook(payload, "t=1,v1=00")
		require.ErrorIs(t, err, ErrMissingStripeWebhookSecret)
	})
}
