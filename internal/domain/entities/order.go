package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a durable order.
//
// Transitions:
//   - pending   -> quoted | refused           (custom request reviewed by the merchant)
//   - quoted    -> confirmed | to_verify | refused
//   - to_verify -> confirmed | refused        (manual transfer checked by the merchant)
//   - confirmed -> ready | completed
//   - ready     -> completed
//
// Product orders are created directly in confirmed (or to_verify for manual transfer).
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusQuoted    OrderStatus = "quoted"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusToVerify  OrderStatus = "to_verify"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusRefused   OrderStatus = "refused"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusQuoted, OrderStatusConfirmed, OrderStatusToVerify,
		OrderStatusReady, OrderStatusCompleted, OrderStatusRefused:
		return true
	}
	return false
}

type RefusedBy string

const (
	RefusedByClient     RefusedBy = "client"
	RefusedByPastryChef RefusedBy = "pastry_chef"
)

func (r RefusedBy) IsValid() bool {
	return r == RefusedByClient || r == RefusedByPastryChef
}

// Order is the durable order record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI shop_id-created_at-index: shop_id / created_at (quota counts, duplicate check)
//   - GSI provider_ref-index: provider_ref (reconciliation short-circuit)
//
// CustomizationData is keyed by the human-readable field label, not the field id.
// Orders are never hard-deleted.
type Order struct {
	ID              string `json:"id"`
	OrderRef        string `json:"order_ref"`
	ShopID          string `json:"shop_id"`
	ProfileID       string `json:"profile_id"`
	ProductID       string `json:"product_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerMessage string `json:"customer_message,omitempty"`
	PickupDate      string `json:"pickup_date"`
	PickupTime      string `json:"pickup_time,omitempty"`

	CustomizationData map[string]any `json:"customization_data,omitempty"`

	Status        OrderStatus     `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`

	Provider              PaymentProvider `json:"provider,omitempty"`
	ProviderRef           string          `json:"provider_ref,omitempty"`
	PayPalOrderID         string          `json:"paypal_order_id,omitempty"`
	PayPalCaptureID       string          `json:"paypal_capture_id,omitempty"`
	StripeSessionID       string          `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string          `json:"stripe_payment_intent_id,omitempty"`
	MercadoPagoPaymentID  string          `json:"mercadopago_payment_id,omitempty"`

	RefusedBy     RefusedBy `json:"refused_by,omitempty"`
	RefusalReason string    `json:"refusal_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCustom reports whether the order came from a custom request rather than a
// catalog product.
func (o Order) IsCustom() bool {
	return o.ProductID == ""
}
