package interfaces

import (
	"context"

	"patisserie_marketplace/internal/domain/entities"
)

//go:generate mockgen -source=pending_order_repository_interface.go -destination=mocks/pending_order_repository_mock.go -package=mock_interfaces

// IPendingOrderRepository stages orders before payment.
//
// Create always inserts a fresh row; GetByID returns a zero PendingOrder when
// the row is absent.
type IPendingOrderRepository interface {
	Create(ctx context.Context, p entities.PendingOrder) (entities.PendingOrder, error)
	GetByID(ctx context.Context, id string) (entities.PendingOrder, error)
	AttachProviderRef(ctx context.Context, id string, provider entities.PaymentProvider, providerOrderID string) error
	Delete(ctx context.Context, id string) error
}
