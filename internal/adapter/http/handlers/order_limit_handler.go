package handlers

import (
	"errors"
	"net/http"

	response "patisserie_marketplace/internal/adapter/http/dto/response"
	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderLimitHandler struct {
	usecase usecase.IOrderLimitUseCase
	logger  *zap.Logger
}

func NewOrderLimitHandler(uc usecase.IOrderLimitUseCase, logger *zap.Logger) *OrderLimitHandler {
	return &OrderLimitHandler{usecase: uc, logger: logger}
}

// GetOrderLimit godoc
// @Summary      Monthly order quota of a shop
// @Description  Degraded is true when the quota could not be computed and free plan defaults apply.
// @Tags         shops
// @Produce      json
// @Param        X-Profile-ID  header  string  true  "Merchant profile"
// @Param        shop          path    string  true  "Shop ID"
// @Success      200  {object}  response.OrderLimitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Router       /v1/shops/{shop}/order-limit [get]
func (h *OrderLimitHandler) GetOrderLimit(c *gin.Context) {
	shopID := c.Param("shop")
	limit, err := h.usecase.CheckLimit(c.Request.Context(), shopID, profileID(c))
	if err != nil {
		appErr := mapOrderLimitError(err)
		logFailure(h.logger, "[limit][handler] check failed", appErr, zap.String("shop_id", shopID))
		writeError(c, appErr)
		return
	}
	if limit.Degraded {
		h.logger.Warn("[limit][handler] serving degraded quota", zap.String("shop_id", shopID))
	}

	c.JSON(http.StatusOK, response.FromOrderLimit(limit))
}

func mapOrderLimitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShopID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid shop id", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Not allowed for this profile", err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
