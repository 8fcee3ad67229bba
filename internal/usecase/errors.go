package usecase

import "errors"

// Errors shared by several order use cases.
var (
	ErrInvalidShopID        = errors.New("invalid shop id")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderInput    = errors.New("invalid order input")
	ErrShopNotFound         = errors.New("shop not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrForbidden            = errors.New("not allowed for this profile")
	ErrOrderLimitReached    = errors.New("monthly order limit reached")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrUnknownProvider      = errors.New("unknown payment provider")
	ErrProviderNotAvailable = errors.New("payment provider not configured for this shop")
	ErrPaymentProvider      = errors.New("payment provider error")
)
