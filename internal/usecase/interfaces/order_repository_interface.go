package interfaces

import (
	"context"
	"time"

	"patisserie_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// OrderPatch lists the fields written by a status transition. Zero values are
// left untouched.
type OrderPatch struct {
	Status                entities.OrderStatus
	TotalAmount           *decimal.Decimal
	DepositAmount         *decimal.Decimal
	PaidAmount            *decimal.Decimal
	Provider              entities.PaymentProvider
	ProviderRef           string
	PayPalOrderID         string
	PayPalCaptureID       string
	StripeSessionID       string
	StripePaymentIntentID string
	MercadoPagoPaymentID  string
	RefusedBy             entities.RefusedBy
	RefusalReason         string
}

// IOrderRepository abstracts persistence of durable orders.
//
// Lookups return a zero Order (empty ID) when nothing matches.
// UpdateStatus only applies when the current status is one of from; otherwise
// it returns a zero Order and no error.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByProviderRef(ctx context.Context, providerRef string) (entities.Order, error)
	CountByShopSince(ctx context.Context, shopID string, since time.Time) (int, error)
	FindRecentDuplicate(ctx context.Context, shopID string, email string, pickupDate string, since time.Time) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from []entities.OrderStatus, patch OrderPatch) (entities.Order, error)
}

// IOrderRefGenerator issues human-friendly order references.
type IOrderRefGenerator interface {
	NextOrderRef(ctx context.Context, shopID string, at time.Time) (string, error)
}
