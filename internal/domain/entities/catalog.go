package entities

import "github.com/shopspring/decimal"

// PlanName is the merchant subscription tier used by the order limit gate.
type PlanName string

const (
	PlanFree    PlanName = "free"
	PlanBasic   PlanName = "basic"
	PlanPremium PlanName = "premium"
	PlanExempt  PlanName = "exempt"
)

// Profile is a merchant or affiliate account. It owns zero or one shop and
// zero or one payment configuration per provider.
type Profile struct {
	ID                 string
	Email              string
	DisplayName        string
	Plan               PlanName
	StripeAccountID    string
	StripeOnboarded    bool
	PayPalEmail        string
	PayPalEnabled      bool
	MercadoPagoEnabled bool
	ManualTransferIBAN string
	ReferredBy         string
}

// AcceptsProvider reports whether the merchant configured the given rail.
func (p Profile) AcceptsProvider(provider PaymentProvider) bool {
	switch provider {
	case PaymentProviderStripe:
		return p.StripeAccountID != "" && p.StripeOnboarded
	case PaymentProviderPayPal:
		return p.PayPalEnabled && p.PayPalEmail != ""
	case PaymentProviderMercadoPago:
		return p.MercadoPagoEnabled
	case PaymentProviderManual:
		return p.ManualTransferIBAN != ""
	}
	return false
}

type Shop struct {
	ID        string
	ProfileID string
	Slug      string
	Name      string
	IsActive  bool
	Currency  string
}

type Product struct {
	ID          string
	ShopID      string
	FormID      string
	Name        string
	BasePrice   decimal.Decimal
	IsAvailable bool
}

// Form groups the customer-facing fields of a product or of the shop's
// custom-request page.
type Form struct {
	ID           string
	ShopID       string
	IsCustomForm bool
	Fields       []FormField
}

type FieldType string

const (
	FieldTypeShortText    FieldType = "short-text"
	FieldTypeLongText     FieldType = "long-text"
	FieldTypeNumber       FieldType = "number"
	FieldTypeSingleSelect FieldType = "single-select"
	FieldTypeMultiSelect  FieldType = "multi-select"
)

type FormField struct {
	ID       string
	FormID   string
	Label    string
	Type     FieldType
	Required bool
	Position int
	Options  []CustomizationOption
}

// CustomizationOption is one selectable value of a select field. Price is the
// delta added to the product base price when selected.
type CustomizationOption struct {
	Label string
	Price decimal.Decimal
}

// PushSubscription is a browser web-push endpoint registered by a merchant.
type PushSubscription struct {
	ID        string
	ProfileID string
	Endpoint  string
	P256dh    string
	Auth      string
}
