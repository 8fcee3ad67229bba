package notifications

import (
	"context"
	"errors"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"
)

// MultiNotifier fans every notification out to all channels and joins their
// errors. A failing channel does not stop the others.
type MultiNotifier struct {
	channels []interfaces.INotifier
}

var _ interfaces.INotifier = (*MultiNotifier)(nil)

func NewMultiNotifier(channels ...interfaces.INotifier) *MultiNotifier {
	out := make([]interfaces.INotifier, 0, len(channels))
	for _, c := range channels {
		if c != nil {
			out = append(out, c)
		}
	}
	return &MultiNotifier{channels: out}
}

func (m *MultiNotifier) OrderConfirmed(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	return m.each(func(n interfaces.INotifier) error { return n.OrderConfirmed(ctx, order, shop, merchant) })
}

func (m *MultiNotifier) CustomRequestReceived(ctx context.Context, order entities.Order, shop entities.Shop, merchant entities.Profile) error {
	return m.each(func(n interfaces.INotifier) error { return n.CustomRequestReceived(ctx, order, shop, merchant) })
}

func (m *MultiNotifier) OrderStatusChanged(ctx context.Context, order entities.Order, shop entities.Shop) error {
	return m.each(func(n interfaces.INotifier) error { return n.OrderStatusChanged(ctx, order, shop) })
}

func (m *MultiNotifier) PayoutSent(ctx context.Context, referrer entities.Profile, payout entities.AffiliatePayout) error {
	return m.each(func(n interfaces.INotifier) error { return n.PayoutSent(ctx, referrer, payout) })
}

func (m *MultiNotifier) each(fn func(interfaces.INotifier) error) error {
	var errs []error
	for _, n := range m.channels {
		if err := fn(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
