package interfaces

import (
	"context"
	"time"

	"patisserie_marketplace/internal/domain/entities"
)

//go:generate mockgen -source=side_effects_interface.go -destination=mocks/side_effects_mock.go -package=mock_interfaces

// INotifier delivers best-effort notifications. Callers log errors and never
// roll back committed state because of them.
type INotifier interface {
	OrderConfirmed(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error
	CustomRequestReceived(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error
	OrderStatusChanged(ctx context.Context, order entities.Order, shop entities.Shop) error
	PayoutSent(ctx context.Context, referrer entities.Profile, payout entities.AffiliatePayout) error
}

// IAuditLogger appends audit entries.
type IAuditLogger interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
}

// IWebhookEventStore remembers processed webhook deliveries. MarkProcessed
// returns false when the event was already seen; Forget lets a failed
// delivery be retried by the provider.
type IWebhookEventStore interface {
	MarkProcessed(ctx context.Context, provider entities.PaymentProvider, eventID string) (bool, error)
	Forget(ctx context.Context, provider entities.PaymentProvider, eventID string) error
}

// IRunLock serializes batch job runs across instances.
type IRunLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
