package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingPendingID    = errors.New("missing pending order id")
	ErrPendingNotFound     = errors.New("pending order not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAmountMismatch      = errors.New("captured amount below the expected amount")
	ErrOrderStateConflict  = errors.New("order cannot be confirmed from its current status")
	ErrInvalidWebhook      = errors.New("invalid webhook")
)

// orderIDNamespace seeds deterministic order ids derived from provider refs,
// so concurrent promotions of the same payment collapse to a single row.
var orderIDNamespace = uuid.MustParse("6f1c2a8e-4b7d-4f0e-9a53-2d8b1e7c9f40")

// ReconcileInput identifies the payment to reconcile. ProviderOrderID is the
// id echoed by the provider on return (PayPal token, Stripe session id,
// Mercado Pago payment id) and may be empty.
type ReconcileInput struct {
	Provider        entities.PaymentProvider
	PendingID       string
	ProviderOrderID string
}

type ReconcileResult struct {
	OrderID           string
	ShopSlug          string
	AlreadyReconciled bool
}

// IReconciliationUseCase promotes captured payments into durable orders exactly once.
type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, in ReconcileInput) (ReconcileResult, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) (ReconcileResult, error)
}

type ReconciliationUseCase struct {
	pending   interfaces.IPendingOrderRepository
	orders    interfaces.IOrderRepository
	payments  interfaces.IPaymentRecordRepository
	refs      interfaces.IOrderRefGenerator
	catalog   interfaces.ICatalogRepository
	limits    IOrderLimitUseCase
	providers map[entities.PaymentProvider]interfaces.IPaymentProvider
	webhooks  interfaces.IWebhookVerifier
	events    interfaces.IWebhookEventStore
	notifier  interfaces.INotifier
	audit     interfaces.IAuditLogger
	now       func() time.Time
	logger    *zap.Logger
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

// ReconciliationDeps groups the collaborators of the reconciliation handler.
// Notifier, Audit, Events and Webhooks may be nil.
type ReconciliationDeps struct {
	Pending   interfaces.IPendingOrderRepository
	Orders    interfaces.IOrderRepository
	Payments  interfaces.IPaymentRecordRepository
	Refs      interfaces.IOrderRefGenerator
	Catalog   interfaces.ICatalogRepository
	Limits    IOrderLimitUseCase
	Providers []interfaces.IPaymentProvider
	Webhooks  interfaces.IWebhookVerifier
	Events    interfaces.IWebhookEventStore
	Notifier  interfaces.INotifier
	Audit     interfaces.IAuditLogger
}

func NewReconciliationUseCase(deps ReconciliationDeps, logger *zap.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		pending:   deps.Pending,
		orders:    deps.Orders,
		payments:  deps.Payments,
		refs:      deps.Refs,
		catalog:   deps.Catalog,
		limits:    deps.Limits,
		providers: providerIndex(deps.Providers),
		webhooks:  deps.Webhooks,
		events:    deps.Events,
		notifier:  deps.Notifier,
		audit:     deps.Audit,
		now:       time.Now,
		logger:    logger,
	}
}

func (u *ReconciliationUseCase) Reconcile(ctx context.Context, in ReconcileInput) (ReconcileResult, error) {
	pendingID := strings.TrimSpace(in.PendingID)
	log := u.logger.With(zap.String("pending_id", pendingID), zap.String("provider", string(in.Provider)))
	log.Info("[reconcile][usecase] start", zap.String("provider_order_id", in.ProviderOrderID))

	if pendingID == "" {
		return ReconcileResult{}, ErrMissingPendingID
	}
	provider, ok := u.providers[in.Provider]
	if !ok {
		return ReconcileResult{}, ErrUnknownProvider
	}

	pending, err := u.pending.GetByID(ctx, pendingID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load pending order: %w", err)
	}
	if pending.ID == "" {
		// The row is deleted after promotion; a late duplicate return still
		// resolves to the durable order when the provider id is known.
		if in.ProviderOrderID != "" {
			existing, err := u.orders.GetByProviderRef(ctx, entities.ProviderRef(in.Provider, in.ProviderOrderID))
			if err == nil && existing.ID != "" {
				log.Info("[reconcile][usecase] already reconciled (pending row gone)", zap.String("order_id", existing.ID))
				return ReconcileResult{OrderID: existing.ID, AlreadyReconciled: true}, nil
			}
		}
		return ReconcileResult{}, ErrPendingNotFound
	}
	draft := pending.OrderData
	result := ReconcileResult{ShopSlug: draft.ShopSlug}

	providerOrderID := resolveProviderOrderID(in, draft)
	if providerOrderID == "" {
		return result, fmt.Errorf("%w: no provider order id", ErrPaymentNotCompleted)
	}
	providerRef := entities.ProviderRef(in.Provider, providerOrderID)

	existing, err := u.orders.GetByProviderRef(ctx, providerRef)
	if err != nil {
		return result, fmt.Errorf("lookup order by provider ref: %w", err)
	}
	if existing.ID != "" {
		log.Info("[reconcile][usecase] already reconciled", zap.String("order_id", existing.ID))
		u.cleanupPending(ctx, pendingID)
		result.OrderID, result.AlreadyReconciled = existing.ID, true
		return result, nil
	}

	capture, err := u.capture(ctx, provider, providerOrderID, pendingID)
	if err != nil {
		log.Error("[reconcile][usecase] capture failed", zap.String("provider_order_id", providerOrderID), zap.Error(err))
		return result, err
	}

	paid := capture.CapturedAmount
	if paid.LessThan(draft.DepositAmount) {
		log.Error("[reconcile][usecase] underpaid, order not promoted",
			zap.String("captured", paid.StringFixed(2)), zap.String("expected", draft.DepositAmount.StringFixed(2)))
		return result, fmt.Errorf("%w: captured %s, expected %s", ErrAmountMismatch, paid.StringFixed(2), draft.DepositAmount.StringFixed(2))
	}
	if paid.GreaterThan(draft.DepositAmount) {
		log.Warn("[reconcile][usecase] captured amount above expected deposit",
			zap.String("captured", paid.StringFixed(2)), zap.String("expected", draft.DepositAmount.StringFixed(2)))
	}

	var order entities.Order
	if draft.IsQuotePayment() {
		order, result.AlreadyReconciled, err = u.confirmQuote(ctx, draft, in.Provider, providerOrderID, capture, paid)
	} else {
		order, result.AlreadyReconciled, err = u.insertProductOrder(ctx, draft, in.Provider, providerOrderID, capture, paid)
	}
	if err != nil {
		log.Error("[reconcile][usecase] promotion failed", zap.Error(err))
		return result, err
	}
	result.OrderID = order.ID
	log.Info("[reconcile][usecase] order promoted", zap.String("order_id", order.ID), zap.Bool("already_reconciled", result.AlreadyReconciled))

	// The order is durable from here on: nothing below may fail the call.
	u.cleanupPending(ctx, pendingID)
	if !result.AlreadyReconciled {
		u.recordPayment(ctx, order, in.Provider, providerOrderID, capture, paid)
		u.recordAudit(ctx, "order.reconciled", order.ID, map[string]any{
			"provider":          string(in.Provider),
			"provider_order_id": providerOrderID,
			"paid_amount":       paid.StringFixed(2),
			"pending_id":        pendingID,
		})
		u.notifyConfirmed(ctx, order)
	}
	return result, nil
}

// capture drives the provider to a captured state and returns the capture.
// The provider payment must have been opened for pendingID.
func (u *ReconciliationUseCase) capture(ctx context.Context, provider interfaces.IPaymentProvider, providerOrderID, pendingID string) (interfaces.CaptureResult, error) {
	state, err := provider.GetStatus(ctx, providerOrderID)
	if err != nil {
		return interfaces.CaptureResult{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	if state.ExternalReference != pendingID {
		return interfaces.CaptureResult{}, fmt.Errorf("%w: payment %s references %q, not this checkout",
			ErrPaymentNotCompleted, providerOrderID, state.ExternalReference)
	}

	switch {
	case state.Status == interfaces.ProviderStatusApproved && !state.HasCaptures:
		c, err := provider.Capture(ctx, providerOrderID)
		if err != nil {
			return interfaces.CaptureResult{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
		}
		return c, nil
	case state.Status == interfaces.ProviderStatusApproved, state.Status == interfaces.ProviderStatusCompleted:
		return interfaces.CaptureResult{
			CapturedAmount:  state.CapturedAmount,
			CaptureID:       state.CaptureID,
			PaymentIntentID: state.PaymentIntentID,
			Raw:             state.Raw,
		}, nil
	default:
		return interfaces.CaptureResult{}, fmt.Errorf("%w: provider status %s", ErrPaymentNotCompleted, state.Status)
	}
}

func (u *ReconciliationUseCase) insertProductOrder(
	ctx context.Context,
	draft entities.OrderDraft,
	provider entities.PaymentProvider,
	providerOrderID string,
	capture interfaces.CaptureResult,
	paid decimal.Decimal,
) (entities.Order, bool, error) {
	now := u.now().UTC()
	providerRef := entities.ProviderRef(provider, providerOrderID)
	orderID := uuid.NewSHA1(orderIDNamespace, []byte(providerRef)).String()

	if u.limits != nil {
		limit, err := u.limits.CheckLimit(ctx, draft.ShopID, draft.ProfileID)
		if err == nil && limit.IsLimitReached {
			// The customer has already paid: record the overrun instead of refusing.
			u.logger.Warn("[reconcile][usecase] shop crossed its order limit during checkout",
				zap.String("shop_id", draft.ShopID), zap.Int("order_count", limit.OrderCount), zap.Int("order_limit", limit.OrderLimit))
		}
	}

	var fields []entities.FormField
	if len(draft.CustomizationAnswers) > 0 {
		product, err := u.catalog.GetProduct(ctx, draft.ShopID, draft.ProductID)
		if err == nil && product.FormID != "" {
			fields, err = u.catalog.GetFormFields(ctx, product.FormID)
		}
		if err != nil {
			u.logger.Warn("[reconcile][usecase] form fields unavailable, customization labels dropped", zap.Error(err))
		}
	}

	ref, err := u.refs.NextOrderRef(ctx, draft.ShopID, now)
	if err != nil {
		u.logger.Warn("[reconcile][usecase] order ref generation failed, using id prefix", zap.Error(err))
		ref = fallbackOrderRef(orderID)
	}

	order := orderFromDraft(draft, orderID, ref, fields, now)
	order.Status = entities.OrderStatusConfirmed
	order.PaidAmount = paid
	applyProviderIDs(&order, provider, providerOrderID, capture)

	created, err := u.orders.Create(ctx, order)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		existing, getErr := u.orders.GetByID(ctx, orderID)
		if getErr != nil {
			return entities.Order{}, false, getErr
		}
		return existing, true, nil
	}
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("insert order: %w", err)
	}
	return created, false, nil
}

func (u *ReconciliationUseCase) confirmQuote(
	ctx context.Context,
	draft entities.OrderDraft,
	provider entities.PaymentProvider,
	providerOrderID string,
	capture interfaces.CaptureResult,
	paid decimal.Decimal,
) (entities.Order, bool, error) {
	var patch entities.Order
	applyProviderIDs(&patch, provider, providerOrderID, capture)

	updated, err := u.orders.UpdateStatus(ctx, draft.DraftOrderID,
		[]entities.OrderStatus{entities.OrderStatusPending, entities.OrderStatusQuoted},
		interfaces.OrderPatch{
			Status:                entities.OrderStatusConfirmed,
			PaidAmount:            &paid,
			Provider:              provider,
			ProviderRef:           patch.ProviderRef,
			PayPalOrderID:         patch.PayPalOrderID,
			PayPalCaptureID:       patch.PayPalCaptureID,
			StripeSessionID:       patch.StripeSessionID,
			StripePaymentIntentID: patch.StripePaymentIntentID,
			MercadoPagoPaymentID:  patch.MercadoPagoPaymentID,
		})
	if err != nil {
		return entities.Order{}, false, fmt.Errorf("confirm quoted order: %w", err)
	}
	if updated.ID != "" {
		return updated, false, nil
	}

	existing, err := u.orders.GetByID(ctx, draft.DraftOrderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if existing.ID != "" && existing.ProviderRef == patch.ProviderRef {
		return existing, true, nil
	}
	return entities.Order{}, false, ErrOrderStateConflict
}

// applyProviderIDs stamps the provider correlation ids on an order.
func applyProviderIDs(o *entities.Order, provider entities.PaymentProvider, providerOrderID string, capture interfaces.CaptureResult) {
	o.Provider = provider
	o.ProviderRef = entities.ProviderRef(provider, providerOrderID)
	switch provider {
	case entities.PaymentProviderPayPal:
		o.PayPalOrderID = providerOrderID
		o.PayPalCaptureID = capture.CaptureID
	case entities.PaymentProviderStripe:
		o.StripeSessionID = providerOrderID
		o.StripePaymentIntentID = capture.PaymentIntentID
	case entities.PaymentProviderMercadoPago:
		o.MercadoPagoPaymentID = providerOrderID
	}
}

// resolveProviderOrderID prefers the id stored server-side over the one echoed
// in the return URL, except for Mercado Pago whose payment id only exists after
// the customer paid.
func resolveProviderOrderID(in ReconcileInput, draft entities.OrderDraft) string {
	if in.Provider == entities.PaymentProviderMercadoPago {
		return strings.TrimSpace(in.ProviderOrderID)
	}
	if stored := draft.ProviderOrderID(); stored != "" {
		return stored
	}
	return strings.TrimSpace(in.ProviderOrderID)
}

func (u *ReconciliationUseCase) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) (ReconcileResult, error) {
	if u.webhooks == nil {
		return ReconcileResult{}, fmt.Errorf("%w: stripe webhooks not configured", ErrInvalidWebhook)
	}
	event, err := u.webhooks.ParseWebhook(payload, signature)
	if err != nil {
		u.logger.Warn("[reconcile][webhook] rejected", zap.Error(err))
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	log := u.logger.With(zap.String("event_id", event.EventID), zap.String("event_type", event.Type))

	if event.Type != "checkout.session.completed" || event.PendingID == "" || !event.Paid {
		log.Info("[reconcile][webhook] ignored")
		return ReconcileResult{}, nil
	}

	if u.events != nil {
		first, err := u.events.MarkProcessed(ctx, entities.PaymentProviderStripe, event.EventID)
		if err != nil {
			log.Warn("[reconcile][webhook] dedupe store unavailable", zap.Error(err))
		} else if !first {
			log.Info("[reconcile][webhook] duplicate delivery")
			return ReconcileResult{AlreadyReconciled: true}, nil
		}
	}

	res, err := u.Reconcile(ctx, ReconcileInput{
		Provider:        entities.PaymentProviderStripe,
		PendingID:       event.PendingID,
		ProviderOrderID: event.SessionID,
	})
	if err != nil && u.events != nil {
		if fErr := u.events.Forget(ctx, entities.PaymentProviderStripe, event.EventID); fErr != nil {
			log.Warn("[reconcile][webhook] failed to release dedupe key", zap.Error(fErr))
		}
	}
	return res, err
}

func (u *ReconciliationUseCase) cleanupPending(ctx context.Context, pendingID string) {
	if err := u.pending.Delete(ctx, pendingID); err != nil {
		u.logger.Warn("[reconcile][usecase] pending order cleanup failed", zap.String("pending_id", pendingID), zap.Error(err))
	}
}

func (u *ReconciliationUseCase) recordPayment(ctx context.Context, order entities.Order, provider entities.PaymentProvider, providerOrderID string, capture interfaces.CaptureResult, paid decimal.Decimal) {
	if u.payments == nil {
		return
	}
	id := capture.CaptureID
	if id == "" {
		id = providerOrderID
	}
	var parsed map[string]any
	if len(capture.Raw) > 0 {
		if err := json.Unmarshal(capture.Raw, &parsed); err != nil {
			u.logger.Warn("[reconcile][usecase] provider payload unmarshal failed", zap.Error(err))
		}
	}
	_, err := u.payments.Create(ctx, entities.PaymentRecord{
		ID:                 string(provider) + ":" + id,
		OrderID:            order.ID,
		Provider:           provider,
		ProviderPaymentID:  id,
		Amount:             paid,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusCaptured,
		ProviderPayloadRaw: capture.Raw,
		ProviderPayload:    parsed,
	})
	if err != nil && !errors.Is(err, interfaces.ErrAlreadyExists) {
		u.logger.Warn("[reconcile][usecase] payment record failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}

func (u *ReconciliationUseCase) recordAudit(ctx context.Context, action, entityID string, data map[string]any) {
	if u.audit == nil {
		return
	}
	err := u.audit.Record(ctx, entities.AuditEntry{
		Service:   "reconciliation",
		Action:    action,
		EntityID:  entityID,
		Data:      data,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		u.logger.Warn("[reconcile][usecase] audit failed", zap.String("entity_id", entityID), zap.Error(err))
	}
}

func (u *ReconciliationUseCase) notifyConfirmed(ctx context.Context, order entities.Order) {
	if u.notifier == nil {
		return
	}
	shop, err := u.catalog.GetShopByID(ctx, order.ShopID)
	if err != nil {
		u.logger.Warn("[reconcile][usecase] notification skipped: shop lookup failed", zap.Error(err))
		return
	}
	merchant, err := u.catalog.GetProfile(ctx, order.ProfileID)
	if err != nil {
		u.logger.Warn("[reconcile][usecase] notification skipped: merchant lookup failed", zap.Error(err))
		return
	}
	if err := u.notifier.OrderConfirmed(ctx, order, shop, merchant); err != nil {
		u.logger.Warn("[reconcile][usecase] confirmation notification failed", zap.String("order_id", order.ID), zap.Error(err))
	}
}
