package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"
)

// memOrders is an in-memory order store with the same conditional semantics
// as the DynamoDB repository.
type memOrders struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

func newMemOrders(seed ...entities.Order) *memOrders {
	m := &memOrders{orders: map[string]entities.Order{}}
	for _, o := range seed {
		m.orders[o.ID] = o
	}
	return m
}

func (m *memOrders) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; ok {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	m.orders[o.ID] = o
	return o, nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id], nil
}

func (m *memOrders) GetByProviderRef(_ context.Context, ref string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ProviderRef == ref {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (m *memOrders) CountByShopSince(_ context.Context, shopID string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, o := range m.orders {
		if o.ShopID == shopID && !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memOrders) FindRecentDuplicate(_ context.Context, shopID, email, pickupDate string, since time.Time) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ShopID == shopID && o.CustomerEmail == email && o.PickupDate == pickupDate &&
			o.Status == entities.OrderStatusPending && !o.CreatedAt.Before(since) {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, from []entities.OrderStatus, p interfaces.OrderPatch) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || !slices.Contains(from, o.Status) {
		return entities.Order{}, nil
	}
	o.Status = p.Status
	if p.PaidAmount != nil {
		o.PaidAmount = *p.PaidAmount
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.DepositAmount != nil {
		o.DepositAmount = *p.DepositAmount
	}
	if p.Provider != "" {
		o.Provider = p.Provider
	}
	if p.ProviderRef != "" {
		o.ProviderRef = p.ProviderRef
	}
	if p.PayPalOrderID != "" {
		o.PayPalOrderID = p.PayPalOrderID
	}
	if p.PayPalCaptureID != "" {
		o.PayPalCaptureID = p.PayPalCaptureID
	}
	if p.RefusedBy != "" {
		o.RefusedBy, o.RefusalReason = p.RefusedBy, p.RefusalReason
	}
	m.orders[id] = o
	return o, nil
}

func (m *memOrders) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memPending struct {
	mu   sync.Mutex
	rows map[string]entities.PendingOrder
}

func newMemPending(seed ...entities.PendingOrder) *memPending {
	m := &memPending{rows: map[string]entities.PendingOrder{}}
	for _, p := range seed {
		m.rows[p.ID] = p
	}
	return m
}

func (m *memPending) Create(_ context.Context, p entities.PendingOrder) (entities.PendingOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[p.ID] = p
	return p, nil
}

func (m *memPending) GetByID(_ context.Context, id string) (entities.PendingOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id], nil
}

func (m *memPending) AttachProviderRef(_ context.Context, id string, provider entities.PaymentProvider, providerOrderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.rows[id]
	switch provider {
	case entities.PaymentProviderPayPal:
		p.OrderData.PayPalOrderID = providerOrderID
	case entities.PaymentProviderStripe:
		p.OrderData.StripeSessionID = providerOrderID
	case entities.PaymentProviderMercadoPago:
		p.OrderData.MercadoPagoPreferenceID = providerOrderID
	}
	m.rows[id] = p
	return nil
}

func (m *memPending) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type staticRefs struct{ ref string }

func (s staticRefs) NextOrderRef(context.Context, string, time.Time) (string, error) {
	return s.ref, nil
}

var (
	_ interfaces.IOrderRepository        = (*memOrders)(nil)
	_ interfaces.IPendingOrderRepository = (*memPending)(nil)
	_ interfaces.IOrderRefGenerator      = staticRefs{}
)
