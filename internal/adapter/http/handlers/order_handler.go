package handlers

import (
	"context"
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

// OrderHandler handles custom requests and the order status workflow.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logger}
}

// CreateCustomRequest godoc
// @Summary      Submit a custom order request
// @Description  Creates a pending order for the merchant to quote. A resubmission within minutes returns the existing order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        shop     path  string                      true  "Shop slug"
// @Param        payload  body  request.CustomOrderRequest  true  "Custom order form"
// @Success      201  {object}  response.CustomOrderResponse
// @Success      200  {object}  response.CustomOrderResponse  "Duplicate submission"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError  "Monthly order limit reached"
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/shops/{shop}/custom-orders [post]
func (h *OrderHandler) CreateCustomRequest(c *gin.Context) {
	slug := c.Param("shop")
	var payload request.CustomOrderRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	result, err := h.usecase.CreateCustomRequest(c.Request.Context(), payload.ToUseCase(slug))
	if err != nil {
		appErr := mapOrderError(err)
		logFailure(h.logger, "[order][handler] custom request failed", appErr, zap.String("shop_slug", slug))
		writeError(c, appErr)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	h.logger.Info("[order][handler] custom request accepted",
		zap.String("shop_slug", slug),
		zap.String("order_id", result.Order.ID),
		zap.Bool("duplicate", result.Duplicate),
	)
	c.JSON(status, response.FromCustomRequest(result))
}

// Quote godoc
// @Summary      Quote a custom request
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Profile-ID  header  string                true  "Merchant profile"
// @Param        order_id      path    string                true  "Order ID"
// @Param        payload       body    request.QuoteRequest  true  "Total and optional deposit"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, pkg.NewDomainError(codeInvalidOrderInput, err.Error(), err, http.StatusBadRequest))
		return
	}

	h.respondOrder(c, "quote", func(ctx context.Context, orderID string) (entities.Order, error) {
		return h.usecase.Quote(ctx, orderID, profileID(c), payload.ToUseCase())
	})
}

// Refuse godoc
// @Summary      Refuse an order
// @Description  The merchant (X-Profile-ID) or the customer (customer_email) refuses a pending, quoted or to_verify order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                 true  "Order ID"
// @Param        payload   body  request.RefuseRequest  true  "Refusal"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/refuse [post]
func (h *OrderHandler) Refuse(c *gin.Context) {
	var payload request.RefuseRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(c, pkg.NewDomainError(codeInvalidOrderInput, err.Error(), err, http.StatusBadRequest))
		return
	}
	merchant := profileID(c)
	if entities.RefusedBy(payload.RefusedBy) == entities.RefusedByPastryChef && merchant == "" {
		writeError(c, errMissingProfile)
		return
	}

	h.respondOrder(c, "refuse", func(ctx context.Context, orderID string) (entities.Order, error) {
		return h.usecase.Refuse(ctx, orderID, payload.ToUseCase(merchant))
	})
}

// MarkReady godoc
// @Summary      Mark a confirmed order ready for pickup
// @Tags         orders
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        order_id      path    string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/ready [post]
func (h *OrderHandler) MarkReady(c *gin.Context) {
	h.merchantTransition(c, "ready", h.usecase.MarkReady)
}

// Complete godoc
// @Summary      Complete an order
// @Tags         orders
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        order_id      path    string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/complete [post]
func (h *OrderHandler) Complete(c *gin.Context) {
	h.merchantTransition(c, "complete", h.usecase.Complete)
}

// VerifyTransfer godoc
// @Summary      Confirm a manual bank transfer was received
// @Tags         orders
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        order_id      path    string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/verify-transfer [post]
func (h *OrderHandler) VerifyTransfer(c *gin.Context) {
	h.merchantTransition(c, "verify-transfer", h.usecase.VerifyTransfer)
}

// DeclareTransfer godoc
// @Summary      Declare a manual bank transfer for a quoted order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  string                          true  "Order ID"
// @Param        payload   body  request.DeclareTransferRequest  true  "Customer email"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/declare-transfer [post]
func (h *OrderHandler) DeclareTransfer(c *gin.Context) {
	var payload request.DeclareTransferRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	h.respondOrder(c, "declare-transfer", func(ctx context.Context, orderID string) (entities.Order, error) {
		return h.usecase.DeclareTransfer(ctx, orderID, payload.CustomerEmail)
	})
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        order_id      path    string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	h.respondOrder(c, "get", func(ctx context.Context, orderID string) (entities.Order, error) {
		order, err := h.usecase.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if order.ProfileID != profileID(c) {
			return entities.Order{}, usecase.ErrForbidden
		}
		return order, nil
	})
}

// ListPayments godoc
// @Summary      List the payment records of an order
// @Tags         orders
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        order_id      path    string  true  "Order ID"
// @Success      200  {array}   response.PaymentRecordResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/orders/{order_id}/payments [get]
func (h *OrderHandler) ListPayments(c *gin.Context) {
	orderID := c.Param("order_id")
	records, err := h.usecase.ListPayments(c.Request.Context(), orderID, profileID(c))
	if err != nil {
		appErr := mapOrderError(err)
		logFailure(h.logger, "[order][handler] list payments failed", appErr, zap.String("order_id", orderID))
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func (h *OrderHandler) merchantTransition(
	c *gin.Context,
	action string,
	transition func(ctx context.Context, orderID string, profileID string) (entities.Order, error),
) {
	h.respondOrder(c, action, func(ctx context.Context, orderID string) (entities.Order, error) {
		return transition(ctx, orderID, profileID(c))
	})
}

func (h *OrderHandler) respondOrder(
	c *gin.Context,
	action string,
	run func(ctx context.Context, orderID string) (entities.Order, error),
) {
	orderID := c.Param("order_id")
	order, err := run(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		logFailure(h.logger, "[order][handler] "+action+" failed", appErr, zap.String("order_id", orderID))
		writeError(c, appErr)
		return
	}
	h.logger.Info("[order][handler] "+action+" success", zap.String("order_id", order.ID), zap.String("status", string(order.Status)))

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainError(codeInvalidOrderInput, err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidShopID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderLimitReached):
		return pkg.NewDomainError("ORDER_LIMIT_REACHED", orderLimitUpgradeMessage, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Not allowed for this profile", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrShopNotFound):
		return pkg.NewDomainError("SHOP_NOT_FOUND", "Shop not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Order status does not allow this action", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
