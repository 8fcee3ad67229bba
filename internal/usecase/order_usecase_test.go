package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var orderTestNow = time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)

type orderFixture struct {
	uc       *OrderUseCase
	orders   *memOrders
	catalog  *mock_interfaces.MockICatalogRepository
	payments *mock_interfaces.MockIPaymentRecordRepository
	limits   *stubLimits
	notifier *mock_interfaces.MockINotifier
	audit    *mock_interfaces.MockIAuditLogger
}

func newOrderFixture(t *testing.T, seed ...entities.Order) orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := orderFixture{
		orders:   newMemOrders(seed...),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		limits:   &stubLimits{limit: OrderLimit{Plan: entities.PlanFree, OrderLimit: 5, Remaining: 5}},
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		audit:    mock_interfaces.NewMockIAuditLogger(ctrl),
	}
	pricing := NewPricingUseCase(f.catalog, DefaultDepositPercent, zap.NewNop())
	f.uc = NewOrderUseCase(f.orders, f.payments, staticRefs{ref: "CMD-0100"}, f.catalog, pricing, f.limits, f.notifier, f.audit, zap.NewNop())
	f.uc.now = func() time.Time { return orderTestNow }
	return f
}

// expectSideEffects allows the best-effort audit and notification after a transition.
func (f orderFixture) expectSideEffects() {
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.catalog.EXPECT().GetShopByID(gomock.Any(), "shop-1").Return(entities.Shop{ID: "shop-1", Slug: "chez-lea"}, nil).AnyTimes()
	f.notifier.EXPECT().OrderStatusChanged(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func customOrder(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:            "ord-1",
		ShopID:        "shop-1",
		ProfileID:     "p-1",
		CustomerEmail: "camille@example.com",
		PickupDate:    "2024-06-20",
		Status:        status,
		TotalAmount:   dec("60"),
		DepositAmount: dec("30"),
		CreatedAt:     orderTestNow,
	}
}

func TestOrderUseCase_CreateCustomRequest(t *testing.T) {
	req := CustomRequest{
		ShopSlug:      "chez-lea",
		CustomerName:  "Camille",
		CustomerEmail: "camille@example.com",
		PickupDate:    "2024-06-20",
		Answers:       map[string]any{"f-theme": "Licorne"},
	}
	shop := entities.Shop{ID: "shop-1", ProfileID: "p-1", Slug: "chez-lea", IsActive: true}

	t.Run("creates a pending request and notifies the merchant", func(t *testing.T) {
		f := newOrderFixture(t)
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(shop, nil)
		f.catalog.EXPECT().GetCustomForm(gomock.Any(), "shop-1").Return(entities.Form{ID: "form-c", IsCustomForm: true, Fields: []entities.FormField{
			{ID: "f-theme", Label: "Thème", Type: entities.FieldTypeShortText},
		}}, nil)
		f.catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1"}, nil)
		f.notifier.EXPECT().CustomRequestReceived(gomock.Any(), gomock.Any(), shop, gomock.Any()).Return(errors.New("push gone"))

		res, err := f.uc.CreateCustomRequest(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, entities.OrderStatusPending, res.Order.Status)
		assert.Equal(t, "CMD-0100", res.Order.OrderRef)
		assert.Equal(t, map[string]any{"Thème": "Licorne"}, res.Order.CustomizationData)
		assert.True(t, res.Order.IsCustom())
	})

	t.Run("duplicate within five minutes returns the existing order", func(t *testing.T) {
		existing := customOrder(entities.OrderStatusPending)
		existing.CreatedAt = orderTestNow.Add(-3 * time.Minute)
		f := newOrderFixture(t, existing)
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(shop, nil)

		res, err := f.uc.CreateCustomRequest(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
		assert.Equal(t, "ord-1", res.Order.ID)
		assert.Equal(t, 1, f.orders.len())
	})

	t.Run("older submission is not a duplicate", func(t *testing.T) {
		existing := customOrder(entities.OrderStatusPending)
		existing.CreatedAt = orderTestNow.Add(-6 * time.Minute)
		f := newOrderFixture(t, existing)
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(shop, nil)
		f.catalog.EXPECT().GetCustomForm(gomock.Any(), "shop-1").Return(entities.Form{}, nil)
		f.catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1"}, nil)
		f.notifier.EXPECT().CustomRequestReceived(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.uc.CreateCustomRequest(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, 2, f.orders.len())
	})

	t.Run("order limit reached", func(t *testing.T) {
		f := newOrderFixture(t)
		f.limits.limit = OrderLimit{Plan: entities.PlanFree, OrderCount: 5, OrderLimit: 5, IsLimitReached: true}
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(shop, nil)

		_, err := f.uc.CreateCustomRequest(context.Background(), req)
		if !errors.Is(err, ErrOrderLimitReached) {
			t.Fatalf("expected ErrOrderLimitReached, got %v", err)
		}
		assert.Equal(t, 0, f.orders.len(), "no order may be created over the quota")
		assert.Equal(t, 1, f.limits.calls)
	})

	t.Run("duplicate is returned even at the limit", func(t *testing.T) {
		existing := customOrder(entities.OrderStatusPending)
		existing.CreatedAt = orderTestNow.Add(-time.Minute)
		f := newOrderFixture(t, existing)
		f.limits.limit = OrderLimit{Plan: entities.PlanFree, OrderCount: 5, OrderLimit: 5, IsLimitReached: true}
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(shop, nil)

		res, err := f.uc.CreateCustomRequest(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
		assert.Equal(t, 0, f.limits.calls)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newOrderFixture(t)
		bad := req
		bad.CustomerEmail = "not-an-email"
		_, err := f.uc.CreateCustomRequest(context.Background(), bad)
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})
}

func TestOrderUseCase_Quote(t *testing.T) {
	t.Run("default deposit", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		f.expectSideEffects()

		o, err := f.uc.Quote(context.Background(), "ord-1", "p-1", QuoteInput{Total: dec("85")})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusQuoted, o.Status)
		assert.True(t, o.DepositAmount.Equal(dec("42.5")))
	})

	t.Run("explicit deposit above total", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		_, err := f.uc.Quote(context.Background(), "ord-1", "p-1", QuoteInput{Total: dec("50"), Deposit: decimalPtr(dec("60"))})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("non-positive total", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		_, err := f.uc.Quote(context.Background(), "ord-1", "p-1", QuoteInput{Total: dec("0")})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("other merchant", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		_, err := f.uc.Quote(context.Background(), "ord-1", "p-2", QuoteInput{Total: dec("85")})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already quoted", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusQuoted))
		_, err := f.uc.Quote(context.Background(), "ord-1", "p-1", QuoteInput{Total: dec("85")})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.uc.Quote(context.Background(), "ord-404", "p-1", QuoteInput{Total: dec("85")})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_Refuse(t *testing.T) {
	t.Run("client refuses a quote", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusQuoted))
		f.expectSideEffects()

		o, err := f.uc.Refuse(context.Background(), "ord-1", RefuseInput{By: entities.RefusedByClient, ActorID: "Camille@example.com", Reason: "trop cher"})
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusRefused, o.Status)
		assert.Equal(t, entities.RefusedByClient, o.RefusedBy)
		assert.Equal(t, "trop cher", o.RefusalReason)
	})

	t.Run("pastry chef refuses a request", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		f.expectSideEffects()
		o, err := f.uc.Refuse(context.Background(), "ord-1", RefuseInput{By: entities.RefusedByPastryChef, ActorID: "p-1"})
		require.NoError(t, err)
		assert.Equal(t, entities.RefusedByPastryChef, o.RefusedBy)
	})

	t.Run("stranger cannot refuse", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		_, err := f.uc.Refuse(context.Background(), "ord-1", RefuseInput{By: entities.RefusedByClient, ActorID: "mallory@example.com"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid actor", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusPending))
		_, err := f.uc.Refuse(context.Background(), "ord-1", RefuseInput{By: "admin", ActorID: "p-1"})
		if !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected ErrInvalidOrderInput, got %v", err)
		}
	})

	t.Run("confirmed orders cannot be refused", func(t *testing.T) {
		f := newOrderFixture(t, customOrder(entities.OrderStatusConfirmed))
		_, err := f.uc.Refuse(context.Background(), "ord-1", RefuseInput{By: entities.RefusedByPastryChef, ActorID: "p-1"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestOrderUseCase_Lifecycle(t *testing.T) {
	f := newOrderFixture(t, customOrder(entities.OrderStatusQuoted))
	f.expectSideEffects()
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error) {
			assert.Equal(t, entities.PaymentProviderManual, r.Provider)
			assert.True(t, r.Amount.Equal(dec("30")))
			return r, nil
		})
	ctx := context.Background()

	_, err := f.uc.MarkReady(ctx, "ord-1", "p-1")
	require.ErrorIs(t, err, ErrInvalidTransition, "quoted orders are not ready yet")

	o, err := f.uc.DeclareTransfer(ctx, "ord-1", "camille@example.com")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusToVerify, o.Status)

	o, err = f.uc.VerifyTransfer(ctx, "ord-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusConfirmed, o.Status)
	assert.True(t, o.PaidAmount.Equal(dec("30")))

	o, err = f.uc.MarkReady(ctx, "ord-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusReady, o.Status)

	o, err = f.uc.Complete(ctx, "ord-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, o.Status)

	_, err = f.uc.Complete(ctx, "ord-1", "p-1")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderUseCase_ListPayments(t *testing.T) {
	f := newOrderFixture(t, customOrder(entities.OrderStatusConfirmed))
	f.payments.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.PaymentRecord{{ID: "paypal:CAP-1", OrderID: "ord-1"}}, nil)

	records, err := f.uc.ListPayments(context.Background(), "ord-1", "p-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = f.uc.ListPayments(context.Background(), "ord-1", "p-2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.GetByID(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidOrderID)
}
