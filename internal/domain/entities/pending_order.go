package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingOrder stages an order before any payment provider is contacted.
//
// It is created when a customer submits an order form and deleted once
// promoted into a durable Order. Abandoned rows are not expired.
type PendingOrder struct {
	ID        string     `json:"id"`
	OrderData OrderDraft `json:"order_data"`
	CreatedAt time.Time  `json:"created_at"`
}

// OrderDraft holds every field of the future order plus the server-computed
// price. CustomizationAnswers is keyed by form field id until finalization.
//
// DraftOrderID is set when the payment settles an existing custom order
// (quote) instead of creating a new one.
type OrderDraft struct {
	ShopID          string `json:"shop_id"`
	ShopSlug        string `json:"shop_slug"`
	ProfileID       string `json:"profile_id"`
	ProductID       string `json:"product_id,omitempty"`
	DraftOrderID    string `json:"draft_order_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerMessage string `json:"customer_message,omitempty"`
	PickupDate      string `json:"pickup_date"`
	PickupTime      string `json:"pickup_time,omitempty"`

	CustomizationAnswers map[string]any `json:"customization_answers,omitempty"`

	TotalPrice    decimal.Decimal `json:"total_price"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`

	Provider                PaymentProvider `json:"provider"`
	PayPalOrderID           string          `json:"paypal_order_id,omitempty"`
	StripeSessionID         string          `json:"stripe_session_id,omitempty"`
	MercadoPagoPreferenceID string          `json:"mercadopago_preference_id,omitempty"`
}

// ProviderOrderID returns the correlation id stored for the draft's provider.
func (d OrderDraft) ProviderOrderID() string {
	switch d.Provider {
	case PaymentProviderPayPal:
		return d.PayPalOrderID
	case PaymentProviderStripe:
		return d.StripeSessionID
	case PaymentProviderMercadoPago:
		return d.MercadoPagoPreferenceID
	}
	return ""
}

// IsQuotePayment reports whether the draft settles an existing custom order.
func (d OrderDraft) IsQuotePayment() bool {
	return d.DraftOrderID != ""
}
