package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutRequest is a customer's product order submission.
type CheckoutRequest struct {
	ShopSlug        string
	ProductID       string
	Provider        entities.PaymentProvider
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerMessage string
	PickupDate      string
	PickupTime      string
	Answers         map[string]any
	ClientTotal     *decimal.Decimal
}

// CheckoutResult tells the client where to go next. OrderID is only set for
// manual transfers, which skip the provider redirect.
type CheckoutResult struct {
	PendingOrderID  string
	ProviderOrderID string
	RedirectURL     string
	OrderID         string
	Total           decimal.Decimal
	Deposit         decimal.Decimal
}

// ICheckoutUseCase stages pending orders and opens provider-side payments.
type ICheckoutUseCase interface {
	StartCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
	StartQuotePayment(ctx context.Context, orderID string, email string, provider entities.PaymentProvider) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	pending   interfaces.IPendingOrderRepository
	orders    interfaces.IOrderRepository
	refs      interfaces.IOrderRefGenerator
	catalog   interfaces.ICatalogRepository
	pricing   IPricingUseCase
	limits    IOrderLimitUseCase
	providers map[entities.PaymentProvider]interfaces.IPaymentProvider
	baseURL   string
	now       func() time.Time
	logger    *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	pending interfaces.IPendingOrderRepository,
	orders interfaces.IOrderRepository,
	refs interfaces.IOrderRefGenerator,
	catalog interfaces.ICatalogRepository,
	pricing IPricingUseCase,
	limits IOrderLimitUseCase,
	providers []interfaces.IPaymentProvider,
	baseURL string,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		pending:   pending,
		orders:    orders,
		refs:      refs,
		catalog:   catalog,
		pricing:   pricing,
		limits:    limits,
		providers: providerIndex(providers),
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
		logger:    logger,
	}
}

func providerIndex(providers []interfaces.IPaymentProvider) map[entities.PaymentProvider]interfaces.IPaymentProvider {
	idx := make(map[entities.PaymentProvider]interfaces.IPaymentProvider, len(providers))
	for _, p := range providers {
		if p != nil {
			idx[p.Name()] = p
		}
	}
	return idx
}

func (u *CheckoutUseCase) StartCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	log := u.logger.With(zap.String("shop_slug", req.ShopSlug), zap.String("product_id", req.ProductID), zap.String("provider", string(req.Provider)))
	log.Info("[checkout][usecase] start")

	if err := u.validate(req); err != nil {
		return CheckoutResult{}, err
	}

	shop, err := u.catalog.GetShopBySlug(ctx, strings.TrimSpace(req.ShopSlug))
	if err != nil {
		return CheckoutResult{}, err
	}
	if shop.ID == "" || !shop.IsActive {
		return CheckoutResult{}, ErrShopNotFound
	}

	product, err := u.catalog.GetProduct(ctx, shop.ID, strings.TrimSpace(req.ProductID))
	if err != nil {
		return CheckoutResult{}, err
	}
	if product.ID == "" || !product.IsAvailable {
		return CheckoutResult{}, ErrProductNotFound
	}

	merchant, err := u.catalog.GetProfile(ctx, shop.ProfileID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !merchant.AcceptsProvider(req.Provider) {
		return CheckoutResult{}, ErrProviderNotAvailable
	}

	limit, err := u.limits.CheckLimit(ctx, shop.ID, shop.ProfileID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if limit.IsLimitReached {
		log.Info("[checkout][usecase] order limit reached", zap.Int("order_count", limit.OrderCount), zap.Int("order_limit", limit.OrderLimit))
		return CheckoutResult{}, ErrOrderLimitReached
	}

	quote, err := u.pricing.Resolve(ctx, PriceInput{
		BasePrice:   product.BasePrice,
		FormID:      product.FormID,
		Answers:     req.Answers,
		ClientTotal: req.ClientTotal,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	draft := entities.OrderDraft{
		ShopID:               shop.ID,
		ShopSlug:             shop.Slug,
		ProfileID:            shop.ProfileID,
		ProductID:            product.ID,
		CustomerName:         strings.TrimSpace(req.CustomerName),
		CustomerEmail:        normalizeEmail(req.CustomerEmail),
		CustomerPhone:        strings.TrimSpace(req.CustomerPhone),
		CustomerMessage:      strings.TrimSpace(req.CustomerMessage),
		PickupDate:           strings.TrimSpace(req.PickupDate),
		PickupTime:           strings.TrimSpace(req.PickupTime),
		CustomizationAnswers: req.Answers,
		TotalPrice:           quote.Total,
		DepositAmount:        quote.Deposit,
		Provider:             req.Provider,
	}

	if req.Provider == entities.PaymentProviderManual {
		order, err := u.createManualOrder(ctx, draft, quote.Fields)
		if err != nil {
			return CheckoutResult{}, err
		}
		return CheckoutResult{OrderID: order.ID, Total: quote.Total, Deposit: quote.Deposit}, nil
	}

	description := fmt.Sprintf("%s - %s", shop.Name, product.Name)
	result, err := u.stageAndRedirect(ctx, draft, shop, merchant, description)
	if err != nil {
		return CheckoutResult{}, err
	}
	result.Total, result.Deposit = quote.Total, quote.Deposit
	log.Info("[checkout][usecase] success", zap.String("pending_id", result.PendingOrderID), zap.String("provider_order_id", result.ProviderOrderID))
	return result, nil
}

// StartQuotePayment opens a deposit payment for a quoted custom order.
func (u *CheckoutUseCase) StartQuotePayment(ctx context.Context, orderID string, email string, provider entities.PaymentProvider) (CheckoutResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CheckoutResult{}, ErrInvalidOrderID
	}
	if provider == entities.PaymentProviderManual || !provider.IsValid() {
		return CheckoutResult{}, ErrUnknownProvider
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if order.ID == "" {
		return CheckoutResult{}, ErrOrderNotFound
	}
	if normalizeEmail(email) != order.CustomerEmail {
		return CheckoutResult{}, ErrForbidden
	}
	if order.Status != entities.OrderStatusQuoted {
		return CheckoutResult{}, ErrInvalidTransition
	}

	shop, err := u.catalog.GetShopByID(ctx, order.ShopID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if shop.ID == "" {
		return CheckoutResult{}, ErrShopNotFound
	}
	merchant, err := u.catalog.GetProfile(ctx, order.ProfileID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !merchant.AcceptsProvider(provider) {
		return CheckoutResult{}, ErrProviderNotAvailable
	}

	draft := entities.OrderDraft{
		ShopID:          order.ShopID,
		ShopSlug:        shop.Slug,
		ProfileID:       order.ProfileID,
		DraftOrderID:    order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		CustomerMessage: order.CustomerMessage,
		PickupDate:      order.PickupDate,
		PickupTime:      order.PickupTime,
		TotalPrice:      order.TotalAmount,
		DepositAmount:   order.DepositAmount,
		Provider:        provider,
	}
	description := fmt.Sprintf("%s - commande %s", shop.Name, order.OrderRef)
	result, err := u.stageAndRedirect(ctx, draft, shop, merchant, description)
	if err != nil {
		return CheckoutResult{}, err
	}
	result.OrderID = order.ID
	result.Total, result.Deposit = order.TotalAmount, order.DepositAmount
	return result, nil
}

func (u *CheckoutUseCase) stageAndRedirect(ctx context.Context, draft entities.OrderDraft, shop entities.Shop, merchant entities.Profile, description string) (CheckoutResult, error) {
	provider, ok := u.providers[draft.Provider]
	if !ok {
		return CheckoutResult{}, ErrUnknownProvider
	}

	pending, err := u.pending.Create(ctx, entities.PendingOrder{
		ID:        uuid.NewString(),
		OrderData: draft,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("stage pending order: %w", err)
	}

	redirect, err := provider.CreatePayment(ctx, interfaces.PaymentRequest{
		Pending:     pending,
		Shop:        shop,
		Merchant:    merchant,
		Description: description,
		Amount:      draft.DepositAmount,
		Currency:    shop.Currency,
		ReturnURL:   u.returnURL(shop.Slug, draft.Provider, pending.ID),
		CancelURL:   u.cancelURL(shop.Slug),
	})
	if err != nil {
		u.logger.Error("[checkout][usecase] provider create payment failed",
			zap.String("pending_id", pending.ID), zap.String("provider", string(draft.Provider)), zap.Error(err))
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	if err := u.pending.AttachProviderRef(ctx, pending.ID, draft.Provider, redirect.ProviderOrderID); err != nil {
		return CheckoutResult{}, fmt.Errorf("attach provider ref: %w", err)
	}

	return CheckoutResult{
		PendingOrderID:  pending.ID,
		ProviderOrderID: redirect.ProviderOrderID,
		RedirectURL:     redirect.RedirectURL,
	}, nil
}

// createManualOrder records a bank-transfer order awaiting merchant verification.
func (u *CheckoutUseCase) createManualOrder(ctx context.Context, draft entities.OrderDraft, fields []entities.FormField) (entities.Order, error) {
	now := u.now().UTC()
	id := uuid.NewString()
	ref, err := u.refs.NextOrderRef(ctx, draft.ShopID, now)
	if err != nil {
		u.logger.Warn("[checkout][usecase] order ref generation failed, using id prefix", zap.Error(err))
		ref = fallbackOrderRef(id)
	}

	order := orderFromDraft(draft, id, ref, fields, now)
	order.Status = entities.OrderStatusToVerify
	order.Provider = entities.PaymentProviderManual
	order.PaidAmount = decimal.Zero

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("[checkout][usecase] manual transfer order created", zap.String("order_id", created.ID), zap.String("order_ref", created.OrderRef))
	return created, nil
}

func (u *CheckoutUseCase) returnURL(shopSlug string, provider entities.PaymentProvider, pendingID string) string {
	return fmt.Sprintf("%s/%s/order/%s-return?pendingId=%s", u.baseURL, url.PathEscape(shopSlug), provider, url.QueryEscape(pendingID))
}

func (u *CheckoutUseCase) cancelURL(shopSlug string) string {
	return fmt.Sprintf("%s/%s?payment=cancelled", u.baseURL, url.PathEscape(shopSlug))
}

func (u *CheckoutUseCase) validate(req CheckoutRequest) error {
	switch {
	case strings.TrimSpace(req.ShopSlug) == "":
		return fmt.Errorf("%w: shop is required", ErrInvalidOrderInput)
	case strings.TrimSpace(req.ProductID) == "":
		return fmt.Errorf("%w: product is required", ErrInvalidOrderInput)
	case !req.Provider.IsValid():
		return ErrUnknownProvider
	}
	return validateCustomer(req.CustomerName, req.CustomerEmail, req.PickupDate, u.now())
}

func validateCustomer(name, email, pickupDate string, now time.Time) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: customer name is required", ErrInvalidOrderInput)
	case !isValidEmail(normalizeEmail(email)):
		return fmt.Errorf("%w: customer email is invalid", ErrInvalidOrderInput)
	case !isValidPickupDate(pickupDate, now):
		return fmt.Errorf("%w: pickup date must be today or later (YYYY-MM-DD)", ErrInvalidOrderInput)
	}
	return nil
}

// orderFromDraft builds the durable order, translating answers to labels.
func orderFromDraft(d entities.OrderDraft, id, ref string, fields []entities.FormField, now time.Time) entities.Order {
	return entities.Order{
		ID:                id,
		OrderRef:          ref,
		ShopID:            d.ShopID,
		ProfileID:         d.ProfileID,
		ProductID:         d.ProductID,
		CustomerName:      d.CustomerName,
		CustomerEmail:     d.CustomerEmail,
		CustomerPhone:     d.CustomerPhone,
		CustomerMessage:   d.CustomerMessage,
		PickupDate:        d.PickupDate,
		PickupTime:        d.PickupTime,
		CustomizationData: TranslateCustomization(fields, d.CustomizationAnswers),
		TotalAmount:       d.TotalPrice,
		DepositAmount:     d.DepositAmount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func fallbackOrderRef(id string) string {
	ref := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return "CMD-" + ref
}
