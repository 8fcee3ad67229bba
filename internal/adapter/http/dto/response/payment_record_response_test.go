package response

import (
	"encoding/json"
	"testing"
	"time"

	"patisserie_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentRecord{
		ID:                 "cap-1",
		OrderID:            "ord-1",
		Provider:           entities.PaymentProviderPayPal,
		ProviderPaymentID:  "PP-ORDER-1",
		Amount:             decimal.RequireFromString("12.5"),
		Date:               now,
		Status:             entities.PaymentStatusCaptured,
		ProviderPayloadRaw: json.RawMessage(`{"id":"PP-ORDER-1"}`),
		ProviderPayload:    map[string]any{"id": "PP-ORDER-1"},
	}

	res := FromPaymentRecord(p)
	if res.PaymentID != "cap-1" || res.OrderID != "ord-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Provider != "paypal" || res.Status != "captured" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Amount != "12.50" {
		t.Fatalf("expected amount 12.50, got %s", res.Amount)
	}
	if res.ProviderPayloadRaw != `{"id":"PP-ORDER-1"}` {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
}

func TestFromPaymentRecords_Empty(t *testing.T) {
	out := FromPaymentRecords(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
