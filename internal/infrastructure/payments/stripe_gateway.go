package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
)

const (
	stripeMetadataPendingID = "pending_id"
	stripeSessionIDTemplate = "{CHECKOUT_SESSION_ID}"
)

// StripeGateway opens Checkout Sessions (destination charges to the merchant's
// connected account), sends Connect transfers and verifies webhooks.
type StripeGateway struct {
	api             *client.API
	webhookSecret   string
	defaultCurrency string
	logger          *zap.Logger
}

var (
	_ interfaces.IPaymentProvider = (*StripeGateway)(nil)
	_ interfaces.ITransferGateway = (*StripeGateway)(nil)
	_ interfaces.IWebhookVerifier = (*StripeGateway)(nil)
)

func NewStripeGateway(secretKey, webhookSecret, defaultCurrency string, logger *zap.Logger) (*StripeGateway, error) {
	if secretKey == "" {
		logger.Warn("[payment][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	return newStripeGateway(client.New(secretKey, nil), webhookSecret, defaultCurrency, logger), nil
}

func newStripeGateway(api *client.API, webhookSecret, defaultCurrency string, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{
		api:             api,
		webhookSecret:   webhookSecret,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

func (g *StripeGateway) Name() entities.PaymentProvider {
	return entities.PaymentProviderStripe
}

func (g *StripeGateway) CreatePayment(ctx context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRedirect, error) {
	if g == nil || g.api == nil {
		return interfaces.PaymentRedirect{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(req.ReturnURL + "&session_id=" + stripeSessionIDTemplate),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.Pending.OrderData.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency(req.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(entities.ToMinorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(req.Pending.ID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{stripeMetadataPendingID: req.Pending.ID},
		},
	}
	if req.Merchant.StripeOnboarded && req.Merchant.StripeAccountID != "" {
		params.PaymentIntentData.TransferData = &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
			Destination: stripe.String(req.Merchant.StripeAccountID),
		}
	}
	params.AddMetadata(stripeMetadataPendingID, req.Pending.ID)
	params.Context = ctx

	g.logger.Info("[payment][stripe] create session start",
		zap.String("pending_id", req.Pending.ID), zap.String("amount", req.Amount.StringFixed(2)))

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("[payment][stripe] create session failed", zap.String("pending_id", req.Pending.ID), zap.Error(err))
		return interfaces.PaymentRedirect{}, err
	}

	g.logger.Info("[payment][stripe] create session success", zap.String("session_id", s.ID))
	return interfaces.PaymentRedirect{RedirectURL: s.URL, ProviderOrderID: s.ID}, nil
}

func (g *StripeGateway) GetStatus(ctx context.Context, sessionID string) (interfaces.ProviderOrderState, error) {
	s, err := g.getSession(ctx, sessionID)
	if err != nil {
		return interfaces.ProviderOrderState{}, err
	}

	state := interfaces.ProviderOrderState{
		ProviderOrderID:   s.ID,
		ExternalReference: sessionPendingID(s),
		Status:            stripeSessionStatus(s),
		PaymentIntentID:   paymentIntentID(s),
		Raw:               marshalRaw(s),
	}
	if state.Status == interfaces.ProviderStatusCompleted {
		state.HasCaptures = true
		state.CapturedAmount = entities.FromMinorUnits(s.AmountTotal)
		state.CaptureID = state.PaymentIntentID
	}
	return state, nil
}

// Capture is a read: Checkout Sessions in payment mode are captured by Stripe
// before the customer is redirected back.
func (g *StripeGateway) Capture(ctx context.Context, sessionID string) (interfaces.CaptureResult, error) {
	state, err := g.GetStatus(ctx, sessionID)
	if err != nil {
		return interfaces.CaptureResult{}, err
	}
	if state.Status != interfaces.ProviderStatusCompleted {
		return interfaces.CaptureResult{}, fmt.Errorf("stripe session %s not paid (status %s)", sessionID, state.Status)
	}
	return interfaces.CaptureResult{
		CapturedAmount:  state.CapturedAmount,
		CaptureID:       state.CaptureID,
		PaymentIntentID: state.PaymentIntentID,
		Raw:             state.Raw,
	}, nil
}

func (g *StripeGateway) CreateTransfer(ctx context.Context, req interfaces.TransferRequest) (interfaces.Transfer, error) {
	if g == nil || g.api == nil {
		return interfaces.Transfer{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.TransferParams{
		Amount:      stripe.Int64(req.AmountMinor),
		Currency:    stripe.String(g.currency(req.Currency)),
		Destination: stripe.String(req.DestinationAccount),
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	tr, err := g.api.Transfers.New(params)
	if err != nil {
		g.logger.Error("[payment][stripe] transfer failed",
			zap.String("destination", req.DestinationAccount), zap.String("idempotency_key", req.IdempotencyKey), zap.Error(err))
		return interfaces.Transfer{}, err
	}
	g.logger.Info("[payment][stripe] transfer created", zap.String("transfer_id", tr.ID), zap.Int64("amount_minor", tr.Amount))
	return interfaces.Transfer{ID: tr.ID, AmountMinor: tr.Amount}, nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts the checkout
// session fields used by reconciliation. Events of other types come back with
// only EventID and Type set.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (interfaces.CheckoutEvent, error) {
	if g == nil || g.webhookSecret == "" {
		return interfaces.CheckoutEvent{}, ErrMissingStripeWebhookSecret
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return interfaces.CheckoutEvent{}, err
	}

	out := interfaces.CheckoutEvent{EventID: event.ID, Type: string(event.Type)}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted || event.Data == nil {
		return out, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return interfaces.CheckoutEvent{}, fmt.Errorf("decode checkout session: %w", err)
	}
	out.SessionID = s.ID
	out.PendingID = sessionPendingID(&s)
	out.Paid = s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	return out, nil
}

func (g *StripeGateway) getSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	if g == nil || g.api == nil {
		return nil, ErrStripeGatewayNotConfigured
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		g.logger.Error("[payment][stripe] get session failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (g *StripeGateway) currency(c string) string {
	if c == "" {
		c = g.defaultCurrency
	}
	return strings.ToLower(c)
}

func stripeSessionStatus(s *stripe.CheckoutSession) interfaces.ProviderStatus {
	switch {
	case s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return interfaces.ProviderStatusCompleted
	case s.Status == stripe.CheckoutSessionStatusExpired:
		return interfaces.ProviderStatusFailed
	default:
		return interfaces.ProviderStatusPending
	}
}

func paymentIntentID(s *stripe.CheckoutSession) string {
	if s.PaymentIntent == nil {
		return ""
	}
	return s.PaymentIntent.ID
}

func sessionPendingID(s *stripe.CheckoutSession) string {
	if id := s.Metadata[stripeMetadataPendingID]; id != "" {
		return id
	}
	return s.ClientReferenceID
}
