package handlers

import (
	"errors"
	"net/http"

	request "patisserie_marketplace/internal/adapter/http/dto/request"
	response "patisserie_marketplace/internal/adapter/http/dto/response"
	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const orderLimitUpgradeMessage = "This shop has reached its monthly order limit. Upgrade the plan to keep accepting orders."

// CheckoutHandler handles storefront checkouts and quote payments.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, logger: logger}
}

// StartCheckout godoc
// @Summary      Start a product checkout
// @Description  Stages a pending order and returns the provider redirect. Manual transfers create the order directly.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        shop     path  string                   true  "Shop slug"
// @Param        payload  body  request.CheckoutRequest  true  "Order form"
// @Success      201  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /v1/shops/{shop}/checkout [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	slug := c.Param("shop")
	var payload request.CheckoutRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		h.logger.Info("[checkout][handler] invalid payload", zap.String("shop_slug", slug), zap.Error(appErr))
		writeError(c, appErr)
		return
	}

	result, err := h.usecase.StartCheckout(c.Request.Context(), payload.ToUseCase(slug))
	if err != nil {
		appErr := mapCheckoutError(err)
		logFailure(h.logger, "[checkout][handler] start failed", appErr, zap.String("shop_slug", slug), zap.String("product_id", payload.ProductID))
		writeError(c, appErr)
		return
	}
	h.logger.Info("[checkout][handler] start success",
		zap.String("shop_slug", slug),
		zap.String("pending_id", result.PendingOrderID),
		zap.String("order_id", result.OrderID),
	)

	c.JSON(http.StatusCreated, response.FromCheckout(result))
}

// PayQuote godoc
// @Summary      Pay the deposit of a quoted custom order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                   true  "Order ID"
// @Param        payload   body  request.PayQuoteRequest  true  "Provider and customer email"
// @Success      201  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/pay [post]
func (h *CheckoutHandler) PayQuote(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.PayQuoteRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	result, err := h.usecase.StartQuotePayment(c.Request.Context(), orderID, payload.CustomerEmail, entities.PaymentProvider(payload.Provider))
	if err != nil {
		appErr := mapCheckoutError(err)
		logFailure(h.logger, "[checkout][handler] quote payment failed", appErr, zap.String("order_id", orderID))
		writeError(c, appErr)
		return
	}
	h.logger.Info("[checkout][handler] quote payment staged", zap.String("order_id", orderID), zap.String("pending_id", result.PendingOrderID))

	c.JSON(http.StatusCreated, response.FromCheckout(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainError(codeInvalidOrderInput, err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotAvailable):
		return pkg.NewDomainError("PROVIDER_NOT_AVAILABLE", "This payment method is not available for this shop", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderLimitReached):
		return pkg.NewDomainError("ORDER_LIMIT_REACHED", orderLimitUpgradeMessage, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Not allowed", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrShopNotFound):
		return pkg.NewDomainError("SHOP_NOT_FOUND", "Shop not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", "Product not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Order cannot be paid in its current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentProvider):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
