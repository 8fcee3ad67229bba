package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "patisserie_marketplace/docs"
	"patisserie_marketplace/internal/adapter/http/handlers"
	"patisserie_marketplace/internal/app"
	"patisserie_marketplace/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run builds the dependency graph and serves HTTP until SIGINT or SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer container.Close(context.Background())

	router := NewRouter(container)
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares and every route on a fresh engine.
func NewRouter(c *app.Container) *gin.Engine {
	if c.Config.Server.Mode != "" {
		gin.SetMode(c.Config.Server.Mode)
	}
	router := gin.New()
	setMiddlewares(router, c.Logger, c.Config.Server.MaxBodyBytes)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checks := make(map[string]handlers.HealthCheck, len(c.HealthChecks))
	for name, check := range c.HealthChecks {
		checks[name] = handlers.HealthCheck(check)
	}
	healthHandler := handlers.NewHealthHandler(checks, c.Logger)
	checkoutHandler := handlers.NewCheckoutHandler(c.Checkout, c.Logger)
	orderHandler := handlers.NewOrderHandler(c.Orders, c.Logger)
	limitHandler := handlers.NewOrderLimitHandler(c.OrderLimits, c.Logger)
	returnHandler := handlers.NewPaymentReturnHandler(c.Reconciliation, c.Config.App.BaseURL, c.Logger)
	cronHandler := handlers.NewCronHandler(c.Payouts, c.Config.Cron.Secret, c.Logger)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	v1.GET("/ping", healthHandler.Ping)
	addShopRoutes(v1, checkoutHandler, orderHandler, limitHandler)
	addOrderRoutes(v1, checkoutHandler, orderHandler)
	addWebhookRoutes(v1, returnHandler)
	addPaymentReturnRoutes(router, returnHandler)
	addCronRoutes(router, cronHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, maxBodyBytes int64) {
	router.Use(loggerMiddleware(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(handlers.BodyLimit(maxBodyBytes))
}
