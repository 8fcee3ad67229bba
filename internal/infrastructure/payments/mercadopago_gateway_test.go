package payments

import (
	"context"
	"net/url"
	"testing"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", "EUR", false, zap.NewNop())
		if err != ErrMissingMercadoPagoAccessToken {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", "EUR", true, zap.NewNop())
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %v, %v", g, err)
		}
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, err := g.GetStatus(context.Background(), "1"); err != ErrMercadoPagoGatewayNotConfigured {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_MockFlow(t *testing.T) {
	g, err := NewMercadoPagoGateway("", "EUR", true, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	redirect, err := g.CreatePayment(context.Background(), interfaces.PaymentRequest{
		Pending:   entities.PendingOrder{ID: "pend-1"},
		Amount:    decimal.RequireFromString("22.50"),
		ReturnURL: "https://shop.test/lou/order/mercadopago-return?pendingId=pend-1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := url.Parse(redirect.RedirectURL)
	if err != nil {
		t.Fatalf("bad redirect url: %v", err)
	}
	paymentID := u.Query().Get("payment_id")
	if paymentID == "" || u.Query().Get("pendingId") != "pend-1" {
		t.Fatalf("unexpected redirect %s", redirect.RedirectURL)
	}

	state, err := g.GetStatus(context.Background(), paymentID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if state.ExternalReference != "pend-1" {
		t.Fatalf("external reference = %q, want pend-1", state.ExternalReference)
	}

	unknown, err := g.GetStatus(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if unknown.ExternalReference != "" || !unknown.CapturedAmount.IsZero() {
		t.Fatalf("unknown payment should carry no reference or amount, got %+v", unknown)
	}

	res, err := g.Capture(context.Background(), paymentID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.CapturedAmount.Equal(decimal.RequireFromString("22.50")) || res.CaptureID != paymentID {
		t.Fatalf("unexpected capture %+v", res)
	}
}

func TestMercadoPagoStatus(t *testing.T) {
	cases := map[string]interfaces.ProviderStatus{
		"approved":     interfaces.ProviderStatusCompleted,
		"in_process":   interfaces.ProviderStatusPending,
		"pending":      interfaces.ProviderStatusPending,
		"rejected":     interfaces.ProviderStatusFailed,
		"cancelled":    interfaces.ProviderStatusFailed,
		"charged_back": interfaces.ProviderStatusFailed,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			if got := mercadoPagoStatus(in); got != want {
				t.Fatalf("mercadoPagoStatus(%q) = %s, want %s", in, got, want)
			}
		})
	}
}
