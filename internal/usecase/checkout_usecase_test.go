package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type checkoutFixture struct {
	uc       *CheckoutUseCase
	orders   *memOrders
	pending  *memPending
	catalog  *mock_interfaces.MockICatalogRepository
	provider *mock_interfaces.MockIPaymentProvider
	limits   *stubLimits
}

func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := checkoutFixture{
		orders:   newMemOrders(),
		pending:  newMemPending(),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		provider: mock_interfaces.NewMockIPaymentProvider(ctrl),
		limits:   &stubLimits{limit: OrderLimit{Plan: entities.PlanBasic, OrderLimit: 20, Remaining: 20}},
	}
	f.provider.EXPECT().Name().Return(entities.PaymentProviderPayPal).AnyTimes()
	pricing := NewPricingUseCase(f.catalog, DefaultDepositPercent, zap.NewNop())
	f.uc = NewCheckoutUseCase(f.pending, f.orders, staticRefs{ref: "CMD-0001"}, f.catalog, pricing, f.limits,
		[]interfaces.IPaymentProvider{f.provider}, "https://patisserie.example/", zap.NewNop())
	f.uc.now = func() time.Time { return time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC) }
	return f
}

func (f checkoutFixture) expectCatalog(profile entities.Profile) {
	f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").
		Return(entities.Shop{ID: "shop-1", ProfileID: "p-1", Slug: "chez-lea", Name: "Chez Léa", IsActive: true, Currency: "EUR"}, nil)
	f.catalog.EXPECT().GetProduct(gomock.Any(), "shop-1", "prod-1").
		Return(entities.Product{ID: "prod-1", ShopID: "shop-1", FormID: "form-1", Name: "Fraisier", BasePrice: dec("30"), IsAvailable: true}, nil)
	f.catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(profile, nil)
}

func validCheckout(provider entities.PaymentProvider) CheckoutRequest {
	total := dec("1")
	return CheckoutRequest{
		ShopSlug:      "chez-lea",
		ProductID:     "prod-1",
		Provider:      provider,
		CustomerName:  "Camille",
		CustomerEmail: " Camille@Example.com ",
		PickupDate:    "2024-06-20",
		Answers:       map[string]any{"f-size": "12 parts"},
		ClientTotal:   &total,
	}
}

func TestCheckoutUseCase_StartCheckout_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CheckoutRequest)
		want   error
	}{
		{"missing shop", func(r *CheckoutRequest) { r.ShopSlug = "" }, ErrInvalidOrderInput},
		{"missing product", func(r *CheckoutRequest) { r.ProductID = " " }, ErrInvalidOrderInput},
		{"unknown provider", func(r *CheckoutRequest) { r.Provider = "bitcoin" }, ErrUnknownProvider},
		{"missing name", func(r *CheckoutRequest) { r.CustomerName = "" }, ErrInvalidOrderInput},
		{"bad email", func(r *CheckoutRequest) { r.CustomerEmail = "camille" }, ErrInvalidOrderInput},
		{"past pickup", func(r *CheckoutRequest) { r.PickupDate = "2024-06-13" }, ErrInvalidOrderInput},
		{"bad pickup format", func(r *CheckoutRequest) { r.PickupDate = "20/06/2024" }, ErrInvalidOrderInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			req := validCheckout(entities.PaymentProviderPayPal)
			tt.mutate(&req)
			_, err := f.uc.StartCheckout(context.Background(), req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckoutUseCase_StartCheckout_PayPal(t *testing.T) {
	f := newCheckoutFixture(t)
	f.expectCatalog(entities.Profile{ID: "p-1", PayPalEnabled: true, PayPalEmail: "lea@example.com"})
	f.catalog.EXPECT().GetFormFields(gomock.Any(), "form-1").Return(cakeFormFields(), nil)
	f.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRedirect, error) {
			assert.True(t, req.Amount.Equal(dec("22.75")), "deposit is charged, got %s", req.Amount)
			assert.Equal(t, "EUR", req.Currency)
			assert.True(t, strings.HasPrefix(req.ReturnURL, "https://patisserie.example/chez-lea/order/paypal-return?pendingId="))
			assert.Equal(t, "https://patisserie.example/chez-lea?payment=cancelled", req.CancelURL)
			return interfaces.PaymentRedirect{RedirectURL: "https://paypal.example/approve/PP-1", ProviderOrderID: "PP-1"}, nil
		})

	res, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderPayPal))
	require.NoError(t, err)
	assert.Equal(t, "PP-1", res.ProviderOrderID)
	assert.True(t, res.Total.Equal(dec("45.5")), "server total wins over the client total")

	staged, _ := f.pending.GetByID(context.Background(), res.PendingOrderID)
	assert.Equal(t, "PP-1", staged.OrderData.PayPalOrderID)
	assert.Equal(t, "camille@example.com", staged.OrderData.CustomerEmail)
	assert.Equal(t, 0, f.orders.len(), "no durable order before payment")
}

func TestCheckoutUseCase_StartCheckout_Gates(t *testing.T) {
	t.Run("order limit reached", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.limits.limit = OrderLimit{Plan: entities.PlanFree, OrderCount: 5, OrderLimit: 5, IsLimitReached: true}
		f.expectCatalog(entities.Profile{ID: "p-1", PayPalEnabled: true, PayPalEmail: "lea@example.com"})

		_, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderPayPal))
		if !errors.Is(err, ErrOrderLimitReached) {
			t.Fatalf("expected ErrOrderLimitReached, got %v", err)
		}
		if len(f.pending.rows) != 0 {
			t.Fatal("nothing may be staged once the limit is reached")
		}
	})

	t.Run("provider not enabled by merchant", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.expectCatalog(entities.Profile{ID: "p-1"})
		_, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderPayPal))
		if !errors.Is(err, ErrProviderNotAvailable) {
			t.Fatalf("expected ErrProviderNotAvailable, got %v", err)
		}
	})

	t.Run("inactive shop", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.catalog.EXPECT().GetShopBySlug(gomock.Any(), "chez-lea").Return(entities.Shop{ID: "shop-1", IsActive: false}, nil)
		_, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderPayPal))
		if !errors.Is(err, ErrShopNotFound) {
			t.Fatalf("expected ErrShopNotFound, got %v", err)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.expectCatalog(entities.Profile{ID: "p-1", PayPalEnabled: true, PayPalEmail: "lea@example.com"})
		f.catalog.EXPECT().GetFormFields(gomock.Any(), "form-1").Return(cakeFormFields(), nil)
		f.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentRedirect{}, errors.New("401 invalid_client"))

		_, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderPayPal))
		if !errors.Is(err, ErrPaymentProvider) {
			t.Fatalf("expected ErrPaymentProvider, got %v", err)
		}
	})
}

func TestCheckoutUseCase_StartCheckout_Manual(t *testing.T) {
	f := newCheckoutFixture(t)
	f.expectCatalog(entities.Profile{ID: "p-1", ManualTransferIBAN: "FR7630006000011234567890189"})
	f.catalog.EXPECT().GetFormFields(gomock.Any(), "form-1").Return(cakeFormFields(), nil)

	res, err := f.uc.StartCheckout(context.Background(), validCheckout(entities.PaymentProviderManual))
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)

	order, _ := f.orders.GetByID(context.Background(), res.OrderID)
	assert.Equal(t, entities.OrderStatusToVerify, order.Status)
	assert.Equal(t, "CMD-0001", order.OrderRef)
	assert.Equal(t, map[string]any{"Taille": "12 parts"}, order.CustomizationData)
	assert.True(t, order.PaidAmount.IsZero())
}

func TestCheckoutUseCase_StartQuotePayment(t *testing.T) {
	quoted := entities.Order{ID: "ord-9", ShopID: "shop-1", ProfileID: "p-1", CustomerEmail: "camille@example.com",
		Status: entities.OrderStatusQuoted, TotalAmount: dec("80"), DepositAmount: dec("40"), OrderRef: "CMD-0042"}

	t.Run("wrong customer", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.orders = newMemOrders(quoted)
		f.uc.orders = f.orders
		_, err := f.uc.StartQuotePayment(context.Background(), "ord-9", "mallory@example.com", entities.PaymentProviderPayPal)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not quoted", func(t *testing.T) {
		f := newCheckoutFixture(t)
		pending := quoted
		pending.Status = entities.OrderStatusPending
		f.uc.orders = newMemOrders(pending)
		_, err := f.uc.StartQuotePayment(context.Background(), "ord-9", "camille@example.com", entities.PaymentProviderPayPal)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("stages the deposit of the quote", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.uc.orders = newMemOrders(quoted)
		f.catalog.EXPECT().GetShopByID(gomock.Any(), "shop-1").Return(entities.Shop{ID: "shop-1", Slug: "chez-lea", Name: "Chez Léa", Currency: "EUR"}, nil)
		f.catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1", PayPalEnabled: true, PayPalEmail: "lea@example.com"}, nil)
		f.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRedirect, error) {
				assert.True(t, req.Amount.Equal(dec("40")))
				assert.Equal(t, "ord-9", req.Pending.OrderData.DraftOrderID)
				return interfaces.PaymentRedirect{RedirectURL: "https://paypal.example/approve/PP-9", ProviderOrderID: "PP-9"}, nil
			})

		res, err := f.uc.StartQuotePayment(context.Background(), "ord-9", "Camille@example.com", entities.PaymentProviderPayPal)
		require.NoError(t, err)
		assert.Equal(t, "ord-9", res.OrderID)
		assert.Equal(t, "https://paypal.example/approve/PP-9", res.RedirectURL)
	})
}
