package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway opens Checkout Pro preferences. The customer returns with
// a payment_id, which is the id reconciliation looks up.
//
// In mock mode no API is called: payments are approved immediately and the
// return URL carries a generated payment id.
type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	defaultCurrency string
	mockMode        bool
	mockPayments    sync.Map
	logger          *zap.Logger
}

var _ interfaces.IPaymentProvider = (*MercadoPagoGateway)(nil)

type mockPayment struct {
	amount    decimal.Decimal
	pendingID string
}

func NewMercadoPagoGateway(accessToken, defaultCurrency string, mock bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if mock {
		logger.Info("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, defaultCurrency: defaultCurrency, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Warn("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][mercadopago] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}, nil
}

func (g *MercadoPagoGateway) Name() entities.PaymentProvider {
	return entities.PaymentProviderMercadoPago
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRedirect, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.mockPayments.Store(id, mockPayment{amount: req.Amount, pendingID: req.Pending.ID})
		g.logger.Info("[payment][mercadopago] mock create success",
			zap.String("pending_id", req.Pending.ID), zap.String("provider_payment_id", id))
		return interfaces.PaymentRedirect{
			RedirectURL:     fmt.Sprintf("%s&payment_id=%s&status=approved", req.ReturnURL, id),
			ProviderOrderID: "mock-pref-" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.PaymentRedirect{}, ErrMercadoPagoGatewayNotConfigured
	}

	currency := req.Currency
	if currency == "" {
		currency = g.defaultCurrency
	}
	amount, _ := req.Amount.Round(2).Float64()

	g.logger.Info("[payment][mercadopago] create preference start",
		zap.String("pending_id", req.Pending.ID), zap.String("amount", req.Amount.StringFixed(2)))

	pref, err := g.preferences.Create(ctx, preference.Request{
		ExternalReference: req.Pending.ID,
		AutoReturn:        "approved",
		BackURLs: &preference.BackURLsRequest{
			Success: req.ReturnURL,
			Pending: req.ReturnURL,
			Failure: req.CancelURL,
		},
		Items: []preference.ItemRequest{
			{
				ID:         req.Pending.ID,
				Title:      req.Description,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: strings.ToUpper(currency),
			},
		},
	})
	if err != nil {
		g.logger.Error("[payment][mercadopago] sdk create preference failed", zap.String("pending_id", req.Pending.ID), zap.Error(err))
		return interfaces.PaymentRedirect{}, err
	}

	g.logger.Info("[payment][mercadopago] create preference success", zap.String("preference_id", pref.ID))
	return interfaces.PaymentRedirect{RedirectURL: pref.InitPoint, ProviderOrderID: pref.ID}, nil
}

// GetStatus looks up a payment by its numeric id.
func (g *MercadoPagoGateway) GetStatus(ctx context.Context, paymentID string) (interfaces.ProviderOrderState, error) {
	if g != nil && g.mockMode {
		var mp mockPayment
		if v, ok := g.mockPayments.Load(paymentID); ok {
			mp = v.(mockPayment)
		}
		return interfaces.ProviderOrderState{
			ProviderOrderID:   paymentID,
			ExternalReference: mp.pendingID,
			Status:            interfaces.ProviderStatusCompleted,
			HasCaptures:       true,
			CapturedAmount:    mp.amount,
			CaptureID:         paymentID,
			Raw: marshalRaw(map[string]any{
				"id":                 paymentID,
				"status":             "approved",
				"status_detail":      "accredited",
				"external_reference": mp.pendingID,
				"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
			}),
		}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.ProviderOrderState{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return interfaces.ProviderOrderState{}, fmt.Errorf("invalid mercado pago payment id %q: %w", paymentID, err)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Error("[payment][mercadopago] sdk get payment failed", zap.String("provider_payment_id", paymentID), zap.Error(err))
		return interfaces.ProviderOrderState{}, err
	}

	state := interfaces.ProviderOrderState{
		ProviderOrderID:   paymentID,
		ExternalReference: resp.ExternalReference,
		Status:            mercadoPagoStatus(resp.Status),
		Raw:               marshalRaw(resp),
	}
	if state.Status == interfaces.ProviderStatusCompleted {
		state.HasCaptures = true
		state.CaptureID = strconv.Itoa(resp.ID)
		state.CapturedAmount = decimal.NewFromFloat(resp.TransactionAmount).Round(2)
	}
	g.logger.Info("[payment][mercadopago] get payment success",
		zap.String("provider_payment_id", paymentID), zap.String("provider_status", resp.Status))
	return state, nil
}

// Capture is a read: Checkout Pro payments are captured on approval.
func (g *MercadoPagoGateway) Capture(ctx context.Context, paymentID string) (interfaces.CaptureResult, error) {
	state, err := g.GetStatus(ctx, paymentID)
	if err != nil {
		return interfaces.CaptureResult{}, err
	}
	if state.Status != interfaces.ProviderStatusCompleted {
		return interfaces.CaptureResult{}, fmt.Errorf("mercado pago payment %s not approved (status %s)", paymentID, state.Status)
	}
	return interfaces.CaptureResult{CapturedAmount: state.CapturedAmount, CaptureID: state.CaptureID, Raw: state.Raw}, nil
}

func mercadoPagoStatus(s string) interfaces.ProviderStatus {
	switch strings.ToLower(s) {
	case "approved":
		return interfaces.ProviderStatusCompleted
	case "rejected", "cancelled", "refunded", "charged_back":
		return interfaces.ProviderStatusFailed
	default:
		return interfaces.ProviderStatusPending
	}
}
