package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// duplicateWindow bounds the best-effort duplicate custom request check.
const duplicateWindow = 5 * time.Minute

// CustomRequest is a customer's free-form order submitted through the shop's custom form.
type CustomRequest struct {
	ShopSlug        string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerMessage string
	PickupDate      string
	PickupTime      string
	Answers         map[string]any
}

type CustomRequestResult struct {
	Order     entities.Order
	Duplicate bool
}

// QuoteInput is the merchant's price for a custom request. A nil Deposit
// applies the default deposit percentage.
type QuoteInput struct {
	Total   decimal.Decimal
	Deposit *decimal.Decimal
}

// RefuseInput identifies who refuses. ActorID is the merchant profile id for
// pastry_chef refusals and the customer email for client refusals.
type RefuseInput struct {
	By      entities.RefusedBy
	ActorID string
	Reason  string
}

type IOrderUseCase interface {
	CreateCustomRequest(ctx context.Context, req CustomRequest) (CustomRequestResult, error)
	Quote(ctx context.Context, orderID string, profileID string, in QuoteInput) (entities.Order, error)
	Refuse(ctx context.Context, orderID string, in RefuseInput) (entities.Order, error)
	MarkReady(ctx context.Context, orderID string, profileID string) (entities.Order, error)
	Complete(ctx context.Context, orderID string, profileID string) (entities.Order, error)
	DeclareTransfer(ctx context.Context, orderID string, email string) (entities.Order, error)
	VerifyTransfer(ctx context.Context, orderID string, profileID string) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	ListPayments(ctx context.Context, orderID string, profileID string) ([]entities.PaymentRecord, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRecordRepository
	refs     interfaces.IOrderRefGenerator
	catalog  interfaces.ICatalogRepository
	pricing  IPricingUseCase
	limits   IOrderLimitUseCase
	notifier interfaces.INotifier
	audit    interfaces.IAuditLogger
	now      func() time.Time
	logger   *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRecordRepository,
	refs interfaces.IOrderRefGenerator,
	catalog interfaces.ICatalogRepository,
	pricing IPricingUseCase,
	limits IOrderLimitUseCase,
	notifier interfaces.INotifier,
	audit interfaces.IAuditLogger,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		payments: payments,
		refs:     refs,
		catalog:  catalog,
		pricing:  pricing,
		limits:   limits,
		notifier: notifier,
		audit:    audit,
		now:      time.Now,
		logger:   logger,
	}
}

func (u *OrderUseCase) CreateCustomRequest(ctx context.Context, req CustomRequest) (CustomRequestResult, error) {
	log := u.logger.With(zap.String("shop_slug", req.ShopSlug))
	log.Info("[order][usecase] custom request start")

	if strings.TrimSpace(req.ShopSlug) == "" {
		return CustomRequestResult{}, fmt.Errorf("%w: shop is required", ErrInvalidOrderInput)
	}
	now := u.now()
	if err := validateCustomer(req.CustomerName, req.CustomerEmail, req.PickupDate, now); err != nil {
		return CustomRequestResult{}, err
	}

	shop, err := u.catalog.GetShopBySlug(ctx, strings.TrimSpace(req.ShopSlug))
	if err != nil {
		return CustomRequestResult{}, err
	}
	if shop.ID == "" || !shop.IsActive {
		return CustomRequestResult{}, ErrShopNotFound
	}

	email := normalizeEmail(req.CustomerEmail)
	pickupDate := strings.TrimSpace(req.PickupDate)
	dup, err := u.orders.FindRecentDuplicate(ctx, shop.ID, email, pickupDate, now.Add(-duplicateWindow).UTC())
	if err != nil {
		log.Warn("[order][usecase] duplicate check failed, continuing", zap.Error(err))
	} else if dup.ID != "" {
		log.Info("[order][usecase] duplicate custom request", zap.String("order_id", dup.ID))
		return CustomRequestResult{Order: dup, Duplicate: true}, nil
	}

	limit, err := u.limits.CheckLimit(ctx, shop.ID, shop.ProfileID)
	if err != nil {
		return CustomRequestResult{}, err
	}
	if limit.IsLimitReached {
		log.Info("[order][usecase] order limit reached", zap.Int("order_count", limit.OrderCount), zap.Int("order_limit", limit.OrderLimit))
		return CustomRequestResult{}, ErrOrderLimitReached
	}

	var fields []entities.FormField
	if len(req.Answers) > 0 {
		form, err := u.catalog.GetCustomForm(ctx, shop.ID)
		if err != nil {
			return CustomRequestResult{}, err
		}
		fields = form.Fields
	}

	id := uuid.NewString()
	ref, err := u.refs.NextOrderRef(ctx, shop.ID, now)
	if err != nil {
		log.Warn("[order][usecase] order ref generation failed, using id prefix", zap.Error(err))
		ref = fallbackOrderRef(id)
	}

	draft := entities.OrderDraft{
		ShopID:               shop.ID,
		ShopSlug:             shop.Slug,
		ProfileID:            shop.ProfileID,
		CustomerName:         strings.TrimSpace(req.CustomerName),
		CustomerEmail:        email,
		CustomerPhone:        strings.TrimSpace(req.CustomerPhone),
		CustomerMessage:      strings.TrimSpace(req.CustomerMessage),
		PickupDate:           pickupDate,
		PickupTime:           strings.TrimSpace(req.PickupTime),
		CustomizationAnswers: req.Answers,
	}
	order := orderFromDraft(draft, id, ref, fields, now.UTC())
	order.Status = entities.OrderStatusPending

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return CustomRequestResult{}, err
	}
	log.Info("[order][usecase] custom request created", zap.String("order_id", created.ID), zap.String("order_ref", created.OrderRef))

	if u.notifier != nil {
		merchant, err := u.catalog.GetProfile(ctx, shop.ProfileID)
		if err == nil {
			err = u.notifier.CustomRequestReceived(ctx, created, shop, merchant)
		}
		if err != nil {
			log.Warn("[order][usecase] merchant notification failed", zap.String("order_id", created.ID), zap.Error(err))
		}
	}
	return CustomRequestResult{Order: created}, nil
}

func (u *OrderUseCase) Quote(ctx context.Context, orderID string, profileID string, in QuoteInput) (entities.Order, error) {
	if !in.Total.IsPositive() {
		return entities.Order{}, fmt.Errorf("%w: quote total must be positive", ErrInvalidOrderInput)
	}
	total := in.Total.Round(2)
	deposit := u.pricing.Deposit(total)
	if in.Deposit != nil {
		if in.Deposit.IsNegative() || in.Deposit.GreaterThan(total) {
			return entities.Order{}, fmt.Errorf("%w: deposit must be between 0 and the total", ErrInvalidOrderInput)
		}
		deposit = in.Deposit.Round(2)
	}

	return u.transition(ctx, orderID, merchantActor(profileID),
		[]entities.OrderStatus{entities.OrderStatusPending},
		interfaces.OrderPatch{
			Status:        entities.OrderStatusQuoted,
			TotalAmount:   &total,
			DepositAmount: &deposit,
		})
}

func (u *OrderUseCase) Refuse(ctx context.Context, orderID string, in RefuseInput) (entities.Order, error) {
	var actor orderActor
	switch in.By {
	case entities.RefusedByPastryChef:
		actor = merchantActor(in.ActorID)
	case entities.RefusedByClient:
		actor = customerActor(in.ActorID)
	default:
		return entities.Order{}, fmt.Errorf("%w: refused_by must be client or pastry_chef", ErrInvalidOrderInput)
	}

	return u.transition(ctx, orderID, actor,
		[]entities.OrderStatus{entities.OrderStatusPending, entities.OrderStatusQuoted, entities.OrderStatusToVerify},
		interfaces.OrderPatch{
			Status:        entities.OrderStatusRefused,
			RefusedBy:     in.By,
			RefusalReason: strings.TrimSpace(in.Reason),
		})
}

func (u *OrderUseCase) MarkReady(ctx context.Context, orderID string, profileID string) (entities.Order, error) {
	return u.transition(ctx, orderID, merchantActor(profileID),
		[]entities.OrderStatus{entities.OrderStatusConfirmed},
		interfaces.OrderPatch{Status: entities.OrderStatusReady})
}

func (u *OrderUseCase) Complete(ctx context.Context, orderID string, profileID string) (entities.Order, error) {
	return u.transition(ctx, orderID, merchantActor(profileID),
		[]entities.OrderStatus{entities.OrderStatusConfirmed, entities.OrderStatusReady},
		interfaces.OrderPatch{Status: entities.OrderStatusCompleted})
}

func (u *OrderUseCase) DeclareTransfer(ctx context.Context, orderID string, email string) (entities.Order, error) {
	return u.transition(ctx, orderID, customerActor(email),
		[]entities.OrderStatus{entities.OrderStatusQuoted},
		interfaces.OrderPatch{
			Status:   entities.OrderStatusToVerify,
			Provider: entities.PaymentProviderManual,
		})
}

// VerifyTransfer confirms a bank transfer was received and records the deposit as paid.
func (u *OrderUseCase) VerifyTransfer(ctx context.Context, orderID string, profileID string) (entities.Order, error) {
	current, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	paid := current.DepositAmount
	order, err := u.transition(ctx, orderID, merchantActor(profileID),
		[]entities.OrderStatus{entities.OrderStatusToVerify},
		interfaces.OrderPatch{
			Status:      entities.OrderStatusConfirmed,
			PaidAmount:  &paid,
			Provider:    entities.PaymentProviderManual,
			ProviderRef: entities.ProviderRef(entities.PaymentProviderManual, current.ID),
		})
	if err != nil {
		return entities.Order{}, err
	}

	if u.payments != nil {
		_, err := u.payments.Create(ctx, entities.PaymentRecord{
			ID:                string(entities.PaymentProviderManual) + ":" + order.ID,
			OrderID:           order.ID,
			Provider:          entities.PaymentProviderManual,
			ProviderPaymentID: order.OrderRef,
			Amount:            paid,
			Date:              u.now().UTC(),
			Status:            entities.PaymentStatusCaptured,
		})
		if err != nil {
			u.logger.Warn("[order][usecase] payment record failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}
	return order, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	return u.load(ctx, orderID)
}

func (u *OrderUseCase) ListPayments(ctx context.Context, orderID string, profileID string) ([]entities.PaymentRecord, error) {
	order, err := u.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !merchantActor(profileID).owns(order) {
		return nil, ErrForbidden
	}
	return u.payments.ListByOrderID(ctx, order.ID)
}

func (u *OrderUseCase) load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// transition loads the order, checks ownership and applies a conditional status update.
func (u *OrderUseCase) transition(ctx context.Context, orderID string, actor orderActor, from []entities.OrderStatus, patch interfaces.OrderPatch) (entities.Order, error) {
	order, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !actor.owns(order) {
		return entities.Order{}, ErrForbidden
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, from, patch)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		u.logger.Info("[order][usecase] transition rejected",
			zap.String("order_id", order.ID), zap.String("status", string(order.Status)), zap.String("target", string(patch.Status)))
		return entities.Order{}, ErrInvalidTransition
	}
	u.logger.Info("[order][usecase] transition applied",
		zap.String("order_id", updated.ID), zap.String("from", string(order.Status)), zap.String("to", string(updated.Status)))

	u.afterTransition(ctx, order.Status, updated)
	return updated, nil
}

func (u *OrderUseCase) afterTransition(ctx context.Context, from entities.OrderStatus, order entities.Order) {
	if u.audit != nil {
		err := u.audit.Record(ctx, entities.AuditEntry{
			Service:  "orders",
			Action:   "order." + string(order.Status),
			EntityID: order.ID,
			Data: map[string]any{
				"from":       string(from),
				"to":         string(order.Status),
				"refused_by": string(order.RefusedBy),
			},
			CreatedAt: u.now().UTC(),
		})
		if err != nil {
			u.logger.Warn("[order][usecase] audit failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}
	if u.notifier == nil {
		return
	}
	shop, err := u.catalog.GetShopByID(ctx, order.ShopID)
	if err == nil {
		err = u.notifier.OrderStatusChanged(ctx, order, shop)
	}
	if err != nil {
		u.logger.Warn("[order][usecase] status notification failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}

// orderActor is whoever drives a transition: the owning merchant or the ordering customer.
type orderActor struct {
	profileID string
	email     string
}

func merchantActor(profileID string) orderActor {
	return orderActor{profileID: strings.TrimSpace(profileID)}
}

func customerActor(email string) orderActor {
	return orderActor{email: normalizeEmail(email)}
}

func (a orderActor) owns(o entities.Order) bool {
	switch {
	case a.profileID != "":
		return a.profileID == o.ProfileID
	case a.email != "":
		return a.email == o.CustomerEmail
	}
	return false
}
