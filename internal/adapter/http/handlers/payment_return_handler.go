package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Redirect reasons shown to the storefront on failure.
const (
	reasonMissingPendingID  = "missing_pendingId"
	reasonPendingNotFound   = "pending_not_found"
	reasonProcessingFailed  = "processing_failed"
	stripeSignatureHeader   = "Stripe-Signature"
	pendingIDQueryParameter = "pendingId"
)

var (
	errInvalidWebhook    = pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook signature or payload", http.StatusBadRequest)
	errWebhookProcessing = pkg.NewDomainErrorSimple("WEBHOOK_PROCESSING_FAILED", "Webhook processing failed", http.StatusInternalServerError)
)

// PaymentReturnHandler receives customers coming back from a provider and
// Stripe webhooks. Both paths reconcile through the same use case.
type PaymentReturnHandler struct {
	usecase usecase.IReconciliationUseCase
	baseURL string
	logger  *zap.Logger
}

func NewPaymentReturnHandler(uc usecase.IReconciliationUseCase, baseURL string, logger *zap.Logger) *PaymentReturnHandler {
	return &PaymentReturnHandler{usecase: uc, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

// PayPalReturn godoc
// @Summary      PayPal return URL
// @Tags         payments
// @Param        shop_slug  path   string  true   "Shop slug"
// @Param        pendingId  query  string  true   "Pending order ID"
// @Param        token      query  string  false  "PayPal order ID"
// @Success      302
// @Router       /{shop_slug}/order/paypal-return [get]
func (h *PaymentReturnHandler) PayPalReturn(c *gin.Context) {
	h.handleReturn(c, entities.PaymentProviderPayPal, c.Query("token"))
}

// StripeReturn godoc
// @Summary      Stripe Checkout success URL
// @Tags         payments
// @Param        shop_slug   path   string  true   "Shop slug"
// @Param        pendingId   query  string  true   "Pending order ID"
// @Param        session_id  query  string  false  "Checkout Session ID"
// @Success      302
// @Router       /{shop_slug}/order/stripe-return [get]
func (h *PaymentReturnHandler) StripeReturn(c *gin.Context) {
	h.handleReturn(c, entities.PaymentProviderStripe, c.Query("session_id"))
}

// MercadoPagoReturn godoc
// @Summary      Mercado Pago back URL
// @Tags         payments
// @Param        shop_slug      path   string  true   "Shop slug"
// @Param        pendingId      query  string  true   "Pending order ID"
// @Param        payment_id     query  string  false  "Mercado Pago payment ID"
// @Param        collection_id  query  string  false  "Legacy payment ID"
// @Success      302
// @Router       /{shop_slug}/order/mercadopago-return [get]
func (h *PaymentReturnHandler) MercadoPagoReturn(c *gin.Context) {
	providerOrderID := c.Query("payment_id")
	if providerOrderID == "" {
		providerOrderID = c.Query("collection_id")
	}
	h.handleReturn(c, entities.PaymentProviderMercadoPago, providerOrderID)
}

func (h *PaymentReturnHandler) handleReturn(c *gin.Context, provider entities.PaymentProvider, providerOrderID string) {
	slug := c.Param("shop_slug")
	pendingID := strings.TrimSpace(c.Query(pendingIDQueryParameter))
	log := h.logger.With(zap.String("shop_slug", slug), zap.String("provider", string(provider)), zap.String("pending_id", pendingID))

	if pendingID == "" {
		log.Info("[reconcile][handler] return without pending id")
		c.Redirect(http.StatusFound, h.errorURL(slug, reasonMissingPendingID))
		return
	}

	result, err := h.usecase.Reconcile(c.Request.Context(), usecase.ReconcileInput{
		Provider:        provider,
		PendingID:       pendingID,
		ProviderOrderID: strings.TrimSpace(providerOrderID),
	})
	if err != nil {
		reason := reconcileFailureReason(err)
		log.Warn("[reconcile][handler] return failed", zap.String("reason", reason), zap.Error(err))
		c.Redirect(http.StatusFound, h.errorURL(slug, reason))
		return
	}
	log.Info("[reconcile][handler] return success", zap.String("order_id", result.OrderID), zap.Bool("already_reconciled", result.AlreadyReconciled))

	c.Redirect(http.StatusFound, h.confirmationURL(slug, result.OrderID))
}

// StripeWebhook godoc
// @Summary      Stripe webhook
// @Description  Verifies the signature and reconciles checkout.session.completed events.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Stripe signature"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/webhooks/stripe [post]
func (h *PaymentReturnHandler) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, errPayloadTooLarge)
			return
		}
		writeError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.HandleStripeWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	switch {
	case err == nil:
		h.logger.Info("[reconcile][webhook] handled", zap.String("order_id", result.OrderID), zap.Bool("already_reconciled", result.AlreadyReconciled))
	case errors.Is(err, usecase.ErrInvalidWebhook):
		writeError(c, errInvalidWebhook)
		return
	case errors.Is(err, usecase.ErrPendingNotFound):
		// Nothing left to promote; a retry would not change that.
		h.logger.Warn("[reconcile][webhook] pending order gone", zap.Error(err))
	default:
		h.logger.Error("[reconcile][webhook] reconcile failed", zap.Error(err))
		writeError(c, errWebhookProcessing)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func reconcileFailureReason(err error) string {
	switch {
	case errors.Is(err, usecase.ErrMissingPendingID):
		return reasonMissingPendingID
	case errors.Is(err, usecase.ErrPendingNotFound):
		return reasonPendingNotFound
	default:
		return reasonProcessingFailed
	}
}

func (h *PaymentReturnHandler) confirmationURL(slug, orderID string) string {
	q := url.Values{}
	q.Set("order", orderID)
	return h.baseURL + "/" + url.PathEscape(slug) + "/order/confirmation?" + q.Encode()
}

func (h *PaymentReturnHandler) errorURL(slug, reason string) string {
	q := url.Values{}
	q.Set("payment", "error")
	q.Set("reason", reason)
	return h.baseURL + "/" + url.PathEscape(slug) + "?" + q.Encode()
}
