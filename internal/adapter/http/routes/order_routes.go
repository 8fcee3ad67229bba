package routes

import (
	"patisserie_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathShops         = "/shops/:shop"
	PathOrders        = "/orders/:order_id"
	PathWebhooks      = "/webhooks"
	PathPaymentReturn = "/:shop_slug/order"
	PathCron          = "/api/cron"
)

// Shop routes take a slug on storefront endpoints and a shop id on merchant
// ones; both share the :shop segment.
func addShopRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, orders *handlers.OrderHandler, limits *handlers.OrderLimitHandler) {
	shops := rg.Group(PathShops)
	{
		shops.POST("/checkout", checkout.StartCheckout)
		shops.POST("/custom-orders", orders.CreateCustomRequest)
		shops.GET("/order-limit", handlers.RequireProfile(), limits.GetOrderLimit)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, orders *handlers.OrderHandler) {
	order := rg.Group(PathOrders)
	{
		// Customer actions, identified by email.
		order.POST("/pay", checkout.PayQuote)
		order.POST("/declare-transfer", orders.DeclareTransfer)
		order.POST("/refuse", orders.Refuse)
	}

	merchant := rg.Group(PathOrders, handlers.RequireProfile())
	{
		merchant.GET("", orders.GetOrder)
		merchant.GET("/payments", orders.ListPayments)
		merchant.POST("/quote", orders.Quote)
		merchant.POST("/ready", orders.MarkReady)
		merchant.POST("/complete", orders.Complete)
		merchant.POST("/verify-transfer", orders.VerifyTransfer)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, returns *handlers.PaymentReturnHandler) {
	rg.Group(PathWebhooks).POST("/stripe", returns.StripeWebhook)
}

func addPaymentReturnRoutes(router *gin.Engine, returns *handlers.PaymentReturnHandler) {
	order := router.Group(PathPaymentReturn)
	{
		order.GET("/paypal-return", returns.PayPalReturn)
		order.GET("/stripe-return", returns.StripeReturn)
		order.GET("/mercadopago-return", returns.MercadoPagoReturn)
	}
}

func addCronRoutes(router *gin.Engine, cron *handlers.CronHandler) {
	jobs := router.Group(PathCron)
	{
		jobs.GET("/payout-affiliate-commissions", cron.PayoutAffiliateCommissions)
		jobs.POST("/payout-affiliate-commissions", cron.PayoutAffiliateCommissions)
	}
}
