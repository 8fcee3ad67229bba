package request

import (
	"errors"
	"strings"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuoteTotal   = errors.New("quote total must be greater than zero")
	ErrInvalidQuoteDeposit = errors.New("deposit must be between zero and the total")
	ErrMissingRefuseEmail  = errors.New("customer_email is required when the client refuses")
)

// CustomerFields are the contact and pickup fields shared by every order form.
type CustomerFields struct {
	CustomerName    string `json:"customer_name" binding:"required,max=200"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"omitempty,max=40"`
	CustomerMessage string `json:"customer_message" binding:"omitempty,max=2000"`
	PickupDate      string `json:"pickup_date" binding:"required,datetime=2006-01-02"`
	PickupTime      string `json:"pickup_time" binding:"omitempty,datetime=15:04"`
}

// CheckoutRequest is the storefront product order form. Answers are keyed by
// form field id; client_total is informational only.
type CheckoutRequest struct {
	CustomerFields
	ProductID   string           `json:"product_id" binding:"required"`
	Provider    string           `json:"provider" binding:"required,oneof=stripe paypal mercadopago manual"`
	Answers     map[string]any   `json:"customization_answers"`
	ClientTotal *decimal.Decimal `json:"client_total"`
}

func (r CheckoutRequest) ToUseCase(shopSlug string) usecase.CheckoutRequest {
	return usecase.CheckoutRequest{
		ShopSlug:        shopSlug,
		ProductID:       strings.TrimSpace(r.ProductID),
		Provider:        entities.PaymentProvider(r.Provider),
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerMessage: strings.TrimSpace(r.CustomerMessage),
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		Answers:         r.Answers,
		ClientTotal:     r.ClientTotal,
	}
}

type CustomOrderRequest struct {
	CustomerFields
	Answers map[string]any `json:"customization_answers"`
}

func (r CustomOrderRequest) ToUseCase(shopSlug string) usecase.CustomRequest {
	return usecase.CustomRequest{
		ShopSlug:        shopSlug,
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerMessage: strings.TrimSpace(r.CustomerMessage),
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		Answers:         r.Answers,
	}
}

// QuoteRequest prices a custom request. Without deposit the default
// percentage applies.
type QuoteRequest struct {
	Total   decimal.Decimal  `json:"total"`
	Deposit *decimal.Decimal `json:"deposit"`
}

func (r QuoteRequest) Validate() error {
	if !r.Total.IsPositive() {
		return ErrInvalidQuoteTotal
	}
	if r.Deposit != nil && (r.Deposit.IsNegative() || r.Deposit.GreaterThan(r.Total)) {
		return ErrInvalidQuoteDeposit
	}
	return nil
}

func (r QuoteRequest) ToUseCase() usecase.QuoteInput {
	in := usecase.QuoteInput{Total: r.Total.Round(2)}
	if r.Deposit != nil {
		d := r.Deposit.Round(2)
		in.Deposit = &d
	}
	return in
}

type RefuseRequest struct {
	RefusedBy     string `json:"refused_by" binding:"required,oneof=client pastry_chef"`
	Reason        string `json:"reason" binding:"omitempty,max=500"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

func (r RefuseRequest) Validate() error {
	if entities.RefusedBy(r.RefusedBy) == entities.RefusedByClient && strings.TrimSpace(r.CustomerEmail) == "" {
		return ErrMissingRefuseEmail
	}
	return nil
}

// ToUseCase picks the acting identity: the merchant profile for pastry_chef
// refusals, the customer email otherwise.
func (r RefuseRequest) ToUseCase(profileID string) usecase.RefuseInput {
	in := usecase.RefuseInput{By: entities.RefusedBy(r.RefusedBy), Reason: strings.TrimSpace(r.Reason)}
	if in.By == entities.RefusedByPastryChef {
		in.ActorID = profileID
	} else {
		in.ActorID = r.CustomerEmail
	}
	return in
}

// PayQuoteRequest starts the deposit payment of a quoted custom order.
type PayQuoteRequest struct {
	Provider      string `json:"provider" binding:"required,oneof=stripe paypal mercadopago"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}

type DeclareTransferRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
}
