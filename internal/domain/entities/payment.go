package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProvider identifies the payment rail used for an order.
type PaymentProvider string

const (
	PaymentProviderStripe      PaymentProvider = "stripe"
	PaymentProviderPayPal      PaymentProvider = "paypal"
	PaymentProviderMercadoPago PaymentProvider = "mercadopago"
	PaymentProviderManual      PaymentProvider = "manual"
)

func (p PaymentProvider) IsValid() bool {
	switch p {
	case PaymentProviderStripe, PaymentProviderPayPal, PaymentProviderMercadoPago, PaymentProviderManual:
		return true
	}
	return false
}

// ProviderRef builds the correlation key stored on durable orders.
func ProviderRef(p PaymentProvider, providerOrderID string) string {
	return string(p) + ":" + providerOrderID
}

// PaymentStatus represents a capture outcome recorded for traceability.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// PaymentRecord is the capture record persisted next to each reconciled order.
//
// Storage model (DynamoDB):
//   - PK: id (provider capture/payment id)
//   - GSI order_id-index: order_id
//
// ProviderPayloadRaw keeps the original provider body for audit; ProviderPayload
// is a parsed copy for querying.
type PaymentRecord struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	Provider          PaymentProvider `json:"provider"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
