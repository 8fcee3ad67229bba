package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

var (
	ErrMissingPayPalCredentials   = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_SECRET")
	ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")
	ErrPayPalApprovalLinkMissing  = errors.New("paypal order has no approve link")
)

const (
	paypalStatusApproved  = "APPROVED"
	paypalStatusCompleted = "COMPLETED"
	paypalStatusVoided    = "VOIDED"
)

// PayPalGateway drives Orders v2 with intent CAPTURE. The payee is the
// merchant's PayPal account so funds land there directly.
type PayPalGateway struct {
	client          *paypal.Client
	defaultCurrency string
	logger          *zap.Logger

	mu         sync.Mutex
	authorized bool
}

var _ interfaces.IPaymentProvider = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, secret string, sandbox bool, defaultCurrency string, logger *zap.Logger) (*PayPalGateway, error) {
	base := paypal.APIBaseLive
	if sandbox {
		base = paypal.APIBaseSandBox
	}
	return newPayPalGateway(clientID, secret, base, defaultCurrency, logger)
}

func newPayPalGateway(clientID, secret, apiBase, defaultCurrency string, logger *zap.Logger) (*PayPalGateway, error) {
	if clientID == "" || secret == "" {
		logger.Warn("[payment][paypal] missing credentials")
		return nil, ErrMissingPayPalCredentials
	}
	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, err
	}
	return &PayPalGateway{client: c, defaultCurrency: defaultCurrency, logger: logger}, nil
}

func (g *PayPalGateway) Name() entities.PaymentProvider {
	return entities.PaymentProviderPayPal
}

func (g *PayPalGateway) CreatePayment(ctx context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRedirect, error) {
	if err := g.ensureToken(ctx); err != nil {
		return interfaces.PaymentRedirect{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = g.defaultCurrency
	}
	unit := paypal.PurchaseUnitRequest{
		ReferenceID: req.Pending.ID,
		CustomID:    req.Pending.ID,
		Description: req.Description,
		Amount: &paypal.PurchaseUnitAmount{
			Currency: strings.ToUpper(currency),
			Value:    req.Amount.StringFixed(2),
		},
	}
	if req.Merchant.PayPalEmail != "" {
		unit.Payee = &paypal.PayeeForOrders{EmailAddress: req.Merchant.PayPalEmail}
	}

	g.logger.Info("[payment][paypal] create order start",
		zap.String("pending_id", req.Pending.ID), zap.String("amount", unit.Amount.Value))

	order, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture, []paypal.PurchaseUnitRequest{unit}, nil, &paypal.ApplicationContext{
		BrandName:          req.Shop.Name,
		ShippingPreference: paypal.ShippingPreferenceNoShipping,
		UserAction:         paypal.UserActionPayNow,
		ReturnURL:          req.ReturnURL,
		CancelURL:          req.CancelURL,
	})
	if err != nil {
		g.logger.Error("[payment][paypal] create order failed", zap.String("pending_id", req.Pending.ID), zap.Error(err))
		return interfaces.PaymentRedirect{}, err
	}

	approve := ""
	for _, l := range order.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			approve = l.Href
			break
		}
	}
	if approve == "" {
		return interfaces.PaymentRedirect{}, ErrPayPalApprovalLinkMissing
	}

	g.logger.Info("[payment][paypal] create order success", zap.String("paypal_order_id", order.ID))
	return interfaces.PaymentRedirect{RedirectURL: approve, ProviderOrderID: order.ID}, nil
}

func (g *PayPalGateway) GetStatus(ctx context.Context, orderID string) (interfaces.ProviderOrderState, error) {
	if err := g.ensureToken(ctx); err != nil {
		return interfaces.ProviderOrderState{}, err
	}
	order, err := g.client.GetOrder(ctx, orderID)
	if err != nil {
		g.logger.Error("[payment][paypal] get order failed", zap.String("paypal_order_id", orderID), zap.Error(err))
		return interfaces.ProviderOrderState{}, err
	}

	raw := marshalRaw(order)
	view, err := decodePayPalOrder(raw)
	if err != nil {
		return interfaces.ProviderOrderState{}, err
	}

	state := interfaces.ProviderOrderState{
		ProviderOrderID:   order.ID,
		ExternalReference: view.customID(),
		Status:            paypalStatus(view.Status),
		Raw:               raw,
	}
	if c, ok := view.firstCapture(); ok {
		state.HasCaptures = true
		state.CaptureID = c.ID
		state.CapturedAmount = amountFromString(c.Amount.Value)
	}
	return state, nil
}

// Capture captures an approved order. When the capture call fails (typically
// because the webhook or a parallel return already captured it) the order is
// re-read and an existing COMPLETED capture is returned instead.
func (g *PayPalGateway) Capture(ctx context.Context, orderID string) (interfaces.CaptureResult, error) {
	if err := g.ensureToken(ctx); err != nil {
		return interfaces.CaptureResult{}, err
	}

	resp, captureErr := g.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if captureErr == nil {
		raw := marshalRaw(resp)
		view, err := decodePayPalOrder(raw)
		if err != nil {
			return interfaces.CaptureResult{}, err
		}
		c, ok := view.firstCapture()
		if !ok {
			return interfaces.CaptureResult{}, fmt.Errorf("paypal order %s: capture response without captures", orderID)
		}
		g.logger.Info("[payment][paypal] capture success", zap.String("paypal_order_id", orderID), zap.String("capture_id", c.ID))
		return interfaces.CaptureResult{CapturedAmount: amountFromString(c.Amount.Value), CaptureID: c.ID, Raw: raw}, nil
	}

	g.logger.Warn("[payment][paypal] capture failed, re-reading order", zap.String("paypal_order_id", orderID), zap.Error(captureErr))
	state, err := g.GetStatus(ctx, orderID)
	if err != nil {
		return interfaces.CaptureResult{}, captureErr
	}
	if state.Status != interfaces.ProviderStatusCompleted || !state.HasCaptures {
		return interfaces.CaptureResult{}, captureErr
	}
	return interfaces.CaptureResult{CapturedAmount: state.CapturedAmount, CaptureID: state.CaptureID, Raw: state.Raw}, nil
}

// ensureToken fetches the first OAuth token. The client refreshes it on its
// own once it is close to expiry.
func (g *PayPalGateway) ensureToken(ctx context.Context) error {
	if g == nil || g.client == nil {
		return ErrPayPalGatewayNotConfigured
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.authorized {
		return nil
	}
	if _, err := g.client.GetAccessToken(ctx); err != nil {
		g.logger.Error("[payment][paypal] oauth token failed", zap.Error(err))
		return err
	}
	g.authorized = true
	return nil
}

func paypalStatus(s string) interfaces.ProviderStatus {
	switch strings.ToUpper(s) {
	case paypalStatusApproved:
		return interfaces.ProviderStatusApproved
	case paypalStatusCompleted:
		return interfaces.ProviderStatusCompleted
	case paypalStatusVoided:
		return interfaces.ProviderStatusFailed
	default:
		return interfaces.ProviderStatusPending
	}
}

// paypalOrderView is the slice of an Orders v2 payload reconciliation reads.
// Order and capture responses share it.
type paypalOrderView struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		CustomID string `json:"custom_id"`
		Payments struct {
			Captures []paypalCaptureView `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

type paypalCaptureView struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount struct {
		Value        string `json:"value"`
		CurrencyCode string `json:"currency_code"`
	} `json:"amount"`
}

func decodePayPalOrder(raw json.RawMessage) (paypalOrderView, error) {
	var v paypalOrderView
	if err := json.Unmarshal(raw, &v); err != nil {
		return paypalOrderView{}, fmt.Errorf("decode paypal order: %w", err)
	}
	return v, nil
}

func (v paypalOrderView) firstCapture() (paypalCaptureView, bool) {
	if len(v.PurchaseUnits) == 0 || len(v.PurchaseUnits[0].Payments.Captures) == 0 {
		return paypalCaptureView{}, false
	}
	return v.PurchaseUnits[0].Payments.Captures[0], true
}

func (v paypalOrderView) customID() string {
	if len(v.PurchaseUnits) == 0 {
		return ""
	}
	return v.PurchaseUnits[0].CustomID
}
