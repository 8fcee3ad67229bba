package interfaces

import (
	"context"
	"encoding/json"

	"patisserie_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_provider_interface.go -destination=mocks/payment_provider_mock.go -package=mock_interfaces

// ProviderStatus is the normalized provider-side state of a payment object.
type ProviderStatus string

const (
	ProviderStatusApproved  ProviderStatus = "APPROVED"
	ProviderStatusCompleted ProviderStatus = "COMPLETED"
	ProviderStatusPending   ProviderStatus = "PENDING"
	ProviderStatusFailed    ProviderStatus = "FAILED"
)

// PaymentRequest is what an adapter needs to open a provider-side payment.
type PaymentRequest struct {
	Pending     entities.PendingOrder
	Shop        entities.Shop
	Merchant    entities.Profile
	Description string
	Amount      decimal.Decimal
	Currency    string
	ReturnURL   string
	CancelURL   string
}

type PaymentRedirect struct {
	RedirectURL     string
	ProviderOrderID string
}

// ProviderOrderState is the provider's view of a payment. ExternalReference
// is the pending order id the payment was opened for, as stored provider-side.
type ProviderOrderState struct {
	ProviderOrderID   string
	ExternalReference string
	Status            ProviderStatus
	HasCaptures       bool
	CapturedAmount    decimal.Decimal
	CaptureID         string
	PaymentIntentID   string
	Raw               json.RawMessage
}

type CaptureResult struct {
	CapturedAmount  decimal.Decimal
	CaptureID       string
	PaymentIntentID string
	Raw             json.RawMessage
}

// IPaymentProvider abstracts one payment rail (Stripe, PayPal, Mercado Pago).
//
// Any non-2xx provider response is returned as an error; callers surface it
// with a generic message.
type IPaymentProvider interface {
	Name() entities.PaymentProvider
	CreatePayment(ctx context.Context, req PaymentRequest) (PaymentRedirect, error)
	GetStatus(ctx context.Context, providerOrderID string) (ProviderOrderState, error)
	Capture(ctx context.Context, providerOrderID string) (CaptureResult, error)
}

type TransferRequest struct {
	DestinationAccount string
	AmountMinor        int64
	Currency           string
	IdempotencyKey     string
	Description        string
	Metadata           map[string]string
}

type Transfer struct {
	ID          string
	AmountMinor int64
}

// ITransferGateway moves funds to a connected merchant/affiliate account.
type ITransferGateway interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (Transfer, error)
}

// CheckoutEvent is the subset of a provider webhook the reconciliation needs.
type CheckoutEvent struct {
	EventID   string
	Type      string
	SessionID string
	PendingID string
	Paid      bool
}

// IWebhookVerifier authenticates and decodes provider webhooks.
type IWebhookVerifier interface {
	ParseWebhook(payload []byte, signature string) (CheckoutEvent, error)
}
