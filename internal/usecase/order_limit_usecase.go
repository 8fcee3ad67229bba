package usecase

import (
	"context"
	"strings"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// unlimitedOrders marks plans without a monthly quota.
const unlimitedOrders = -1

var planOrderLimits = map[entities.PlanName]int{
	entities.PlanFree:    5,
	entities.PlanBasic:   20,
	entities.PlanPremium: unlimitedOrders,
	entities.PlanExempt:  unlimitedOrders,
}

// OrderLimit is the quota state of a shop for the current billing period.
type OrderLimit struct {
	Plan           entities.PlanName `json:"plan"`
	OrderCount     int               `json:"order_count"`
	OrderLimit     int               `json:"order_limit"`
	Remaining      int               `json:"remaining"`
	IsLimitReached bool              `json:"is_limit_reached"`
	Unlimited      bool              `json:"unlimited"`
	Degraded       bool              `json:"degraded"`
}

// FreePlanDefaults is the quota assumed when the real one cannot be computed.
var FreePlanDefaults = OrderLimit{
	Plan:       entities.PlanFree,
	OrderCount: 0,
	OrderLimit: 5,
	Remaining:  5,
}

// DegradeTo is the fail-open policy of the gate: checkout keeps working with
// the given defaults when the plan or the order count cannot be read.
func DegradeTo(defaults OrderLimit) OrderLimit {
	out := defaults
	out.Degraded = true
	return out
}

// IOrderLimitUseCase gates order creation on the merchant's plan quota.
type IOrderLimitUseCase interface {
	CheckLimit(ctx context.Context, shopID string, profileID string) (OrderLimit, error)
}

type OrderLimitUseCase struct {
	orders  interfaces.IOrderRepository
	catalog interfaces.ICatalogRepository
	now     func() time.Time
	logger  *zap.Logger
}

var _ IOrderLimitUseCase = (*OrderLimitUseCase)(nil)

func NewOrderLimitUseCase(orders interfaces.IOrderRepository, catalog interfaces.ICatalogRepository, logger *zap.Logger) *OrderLimitUseCase {
	return &OrderLimitUseCase{orders: orders, catalog: catalog, now: time.Now, logger: logger}
}

// CheckLimit only returns an error for invalid input; lookup failures degrade
// to FreePlanDefaults.
func (u *OrderLimitUseCase) CheckLimit(ctx context.Context, shopID, profileID string) (OrderLimit, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return OrderLimit{}, ErrInvalidShopID
	}

	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		shop, err := u.catalog.GetShopByID(ctx, shopID)
		if err != nil || shop.ID == "" {
			u.logger.Warn("[limit][usecase] shop lookup failed, degrading to free plan", zap.String("shop_id", shopID), zap.Error(err))
			return DegradeTo(FreePlanDefaults), nil
		}
		profileID = shop.ProfileID
	}

	profile, err := u.catalog.GetProfile(ctx, profileID)
	if err != nil || profile.ID == "" {
		u.logger.Warn("[limit][usecase] profile lookup failed, degrading to free plan", zap.String("profile_id", profileID), zap.Error(err))
		return DegradeTo(FreePlanDefaults), nil
	}

	plan := profile.Plan
	limit, ok := planOrderLimits[plan]
	if !ok {
		plan, limit = entities.PlanFree, planOrderLimits[entities.PlanFree]
	}
	if limit == unlimitedOrders {
		return OrderLimit{Plan: plan, OrderLimit: unlimitedOrders, Remaining: unlimitedOrders, Unlimited: true}, nil
	}

	count, err := u.orders.CountByShopSince(ctx, shopID, monthStart(u.now()))
	if err != nil {
		u.logger.Warn("[limit][usecase] order count failed, degrading to free plan", zap.String("shop_id", shopID), zap.Error(err))
		return DegradeTo(FreePlanDefaults), nil
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return OrderLimit{
		Plan:           plan,
		OrderCount:     count,
		OrderLimit:     limit,
		Remaining:      remaining,
		IsLimitReached: count >= limit,
	}, nil
}
