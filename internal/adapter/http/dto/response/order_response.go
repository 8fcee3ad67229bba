package response

import (
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase"
)

// OrderResponse renders amounts with two decimals so clients never see
// binary float artifacts.
type OrderResponse struct {
	ID              string `json:"id"`
	OrderRef        string `json:"order_ref"`
	ShopID          string `json:"shop_id"`
	ProductID       string `json:"product_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerMessage string `json:"customer_message,omitempty"`
	PickupDate      string `json:"pickup_date"`
	PickupTime      string `json:"pickup_time,omitempty"`

	CustomizationData map[string]any `json:"customization_data,omitempty"`

	Status        string `json:"status"`
	TotalAmount   string `json:"total_amount"`
	DepositAmount string `json:"deposit_amount"`
	PaidAmount    string `json:"paid_amount"`
	Provider      string `json:"provider,omitempty"`

	RefusedBy     string `json:"refused_by,omitempty"`
	RefusalReason string `json:"refusal_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		OrderRef:          o.OrderRef,
		ShopID:            o.ShopID,
		ProductID:         o.ProductID,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		CustomerMessage:   o.CustomerMessage,
		PickupDate:        o.PickupDate,
		PickupTime:        o.PickupTime,
		CustomizationData: o.CustomizationData,
		Status:            string(o.Status),
		TotalAmount:       o.TotalAmount.StringFixed(2),
		DepositAmount:     o.DepositAmount.StringFixed(2),
		PaidAmount:        o.PaidAmount.StringFixed(2),
		Provider:          string(o.Provider),
		RefusedBy:         string(o.RefusedBy),
		RefusalReason:     o.RefusalReason,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

type CustomOrderResponse struct {
	Order     OrderResponse `json:"order"`
	Duplicate bool          `json:"duplicate"`
}

func FromCustomRequest(r usecase.CustomRequestResult) CustomOrderResponse {
	return CustomOrderResponse{Order: FromOrder(r.Order), Duplicate: r.Duplicate}
}

// CheckoutResponse tells the storefront where to send the customer. OrderID
// is set instead of RedirectURL for manual transfers.
type CheckoutResponse struct {
	PendingOrderID  string `json:"pending_order_id,omitempty"`
	ProviderOrderID string `json:"provider_order_id,omitempty"`
	RedirectURL     string `json:"redirect_url,omitempty"`
	OrderID         string `json:"order_id,omitempty"`
	Total           string `json:"total"`
	Deposit         string `json:"deposit"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		PendingOrderID:  r.PendingOrderID,
		ProviderOrderID: r.ProviderOrderID,
		RedirectURL:     r.RedirectURL,
		OrderID:         r.OrderID,
		Total:           r.Total.StringFixed(2),
		Deposit:         r.Deposit.StringFixed(2),
	}
}

type OrderLimitResponse struct {
	usecase.OrderLimit
}

func FromOrderLimit(l usecase.OrderLimit) OrderLimitResponse {
	return OrderLimitResponse{OrderLimit: l}
}
