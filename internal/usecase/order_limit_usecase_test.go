package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	mock_interfaces "patisserie_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newLimitUseCase(t *testing.T) (*OrderLimitUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockICatalogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewOrderLimitUseCase(orders, catalog, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC) }
	return uc, orders, catalog
}

func TestOrderLimitUseCase_CheckLimit(t *testing.T) {
	t.Run("empty shop id", func(t *testing.T) {
		uc, _, _ := newLimitUseCase(t)
		_, err := uc.CheckLimit(context.Background(), " ", "p-1")
		if !errors.Is(err, ErrInvalidShopID) {
			t.Fatalf("expected ErrInvalidShopID, got %v", err)
		}
	})

	t.Run("free plan with five orders is reached", func(t *testing.T) {
		uc, orders, catalog := newLimitUseCase(t)
		catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1", Plan: entities.PlanFree}, nil)
		orders.EXPECT().CountByShopSince(gomock.Any(), "shop-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, since time.Time) (int, error) {
				if since.In(businessLocation).Day() != 1 || since.Month() != time.June {
					t.Fatalf("expected period start on June 1st, got %v", since)
				}
				return 5, nil
			})

		got, err := uc.CheckLimit(context.Background(), "shop-1", "p-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.IsLimitReached || got.OrderLimit != 5 || got.Remaining != 0 || got.Plan != entities.PlanFree {
			t.Fatalf("unexpected limit: %+v", got)
		}
	})

	t.Run("basic plan below limit", func(t *testing.T) {
		uc, orders, catalog := newLimitUseCase(t)
		catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1", Plan: entities.PlanBasic}, nil)
		orders.EXPECT().CountByShopSince(gomock.Any(), "shop-1", gomock.Any()).Return(7, nil)

		got, _ := uc.CheckLimit(context.Background(), "shop-1", "p-1")
		if got.IsLimitReached || got.Remaining != 13 {
			t.Fatalf("unexpected limit: %+v", got)
		}
	})

	for _, plan := range []entities.PlanName{entities.PlanPremium, entities.PlanExempt} {
		t.Run(string(plan)+" is never reached", func(t *testing.T) {
			uc, _, catalog := newLimitUseCase(t)
			catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1", Plan: plan}, nil)

			got, _ := uc.CheckLimit(context.Background(), "shop-1", "p-1")
			if got.IsLimitReached || !got.Unlimited {
				t.Fatalf("unexpected limit: %+v", got)
			}
		})
	}

	t.Run("profile resolved from shop", func(t *testing.T) {
		uc, orders, catalog := newLimitUseCase(t)
		catalog.EXPECT().GetShopByID(gomock.Any(), "shop-1").Return(entities.Shop{ID: "shop-1", ProfileID: "p-9"}, nil)
		catalog.EXPECT().GetProfile(gomock.Any(), "p-9").Return(entities.Profile{ID: "p-9", Plan: "legacy"}, nil)
		orders.EXPECT().CountByShopSince(gomock.Any(), "shop-1", gomock.Any()).Return(2, nil)

		got, _ := uc.CheckLimit(context.Background(), "shop-1", "")
		if got.Plan != entities.PlanFree || got.OrderLimit != 5 {
			t.Fatalf("unknown plan should count as free, got %+v", got)
		}
	})

	t.Run("count failure degrades to free plan defaults", func(t *testing.T) {
		uc, orders, catalog := newLimitUseCase(t)
		catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{ID: "p-1", Plan: entities.PlanBasic}, nil)
		orders.EXPECT().CountByShopSince(gomock.Any(), "shop-1", gomock.Any()).Return(0, errors.New("throttled"))

		got, err := uc.CheckLimit(context.Background(), "shop-1", "p-1")
		if err != nil {
			t.Fatalf("gate must fail open, got %v", err)
		}
		if got != DegradeTo(FreePlanDefaults) {
			t.Fatalf("expected degraded free defaults, got %+v", got)
		}
	})

	t.Run("profile failure degrades", func(t *testing.T) {
		uc, _, catalog := newLimitUseCase(t)
		catalog.EXPECT().GetProfile(gomock.Any(), "p-1").Return(entities.Profile{}, errors.New("mysql gone"))

		got, _ := uc.CheckLimit(context.Background(), "shop-1", "p-1")
		if !got.Degraded || got.IsLimitReached || got.OrderLimit != 5 {
			t.Fatalf("unexpected limit: %+v", got)
		}
	})
}

func TestDegradeTo(t *testing.T) {
	got := DegradeTo(FreePlanDefaults)
	if !got.Degraded || got.Plan != entities.PlanFree || got.OrderLimit != 5 || got.OrderCount != 0 {
		t.Fatalf("unexpected policy result: %+v", got)
	}
	if FreePlanDefaults.Degraded {
		t.Fatal("DegradeTo must not mutate the defaults")
	}
}
