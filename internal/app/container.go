// Package app wires configuration, storage, providers and use cases into the
// graph shared by the HTTP server and the operator CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"patisserie_marketplace/internal/adapter/persistence/repository"
	"patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/infrastructure/database"
	"patisserie_marketplace/internal/infrastructure/notifications"
	"patisserie_marketplace/internal/infrastructure/payments"
	"patisserie_marketplace/internal/usecase"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const pushHTTPTimeout = 10 * time.Second

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

// Container holds the wired use cases. Optional collaborators (providers,
// notifiers, audit, Redis) are left out when unconfigured or unreachable.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Checkout       *usecase.CheckoutUseCase
	Reconciliation *usecase.ReconciliationUseCase
	Orders         *usecase.OrderUseCase
	OrderLimits    *usecase.OrderLimitUseCase
	Payouts        *usecase.AffiliatePayoutUseCase

	HealthChecks map[string]HealthCheck

	closers []func(ctx context.Context) error
}

// Build connects the stores and assembles every use case. DynamoDB and MySQL
// are required; the rest degrades with a warning.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if err := usecase.SetBusinessTimezone(cfg.App.Timezone); err != nil {
		return nil, fmt.Errorf("business timezone: %w", err)
	}
	c := &Container{Config: cfg, Logger: logger, HealthChecks: map[string]HealthCheck{}}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	ordersTable := cfg.AWS.Tables.Orders
	c.HealthChecks["dynamodb"] = func(ctx context.Context) error {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(ordersTable)})
		return err
	}

	gormDB, err := database.ConnectMySQL(cfg.MySQL)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	c.HealthChecks["mysql"] = sqlDB.PingContext
	c.closers = append(c.closers, func(context.Context) error { return sqlDB.Close() })

	orders := repository.NewOrderDynamoRepository(ddb, cfg.AWS.Tables.Orders)
	pending := repository.NewPendingOrderDynamoRepository(ddb, cfg.AWS.Tables.PendingOrders)
	paymentRecords := repository.NewPaymentRecordDynamoRepository(ddb, cfg.AWS.Tables.Payments)
	commissions := repository.NewCommissionDynamoRepository(ddb, cfg.AWS.Tables.Commissions)
	payoutLedger := repository.NewPayoutDynamoRepository(ddb, cfg.AWS.Tables.Payouts)
	refs := repository.NewOrderRefDynamoGenerator(ddb, cfg.AWS.Tables.Counters)
	catalog := repository.NewCatalogGormRepository(gormDB)
	pushSubs := repository.NewPushSubscriptionGormRepository(gormDB)

	var (
		events interfaces.IWebhookEventStore
		lock   interfaces.IRunLock
	)
	if cfg.Redis.Addr != "" {
		redisClient := database.NewRedisClient(cfg.Redis)
		redisRepo := repository.NewRedisRepository(redisClient, cfg.Redis.WebhookTTL)
		events, lock = redisRepo, redisRepo
		c.HealthChecks["redis"] = redisRepo.Ping
		c.closers = append(c.closers, func(context.Context) error { return redisClient.Close() })
	} else {
		logger.Warn("[app] redis not configured: webhook dedupe and payout lock disabled")
	}

	var audit interfaces.IAuditLogger
	if cfg.MongoDB.URI != "" {
		mongoClient, mongoDB, err := database.ConnectMongo(ctx, cfg.MongoDB)
		if err != nil {
			logger.Warn("[app] mongodb unavailable: audit log disabled", zap.Error(err))
		} else {
			audit = repository.NewAuditMongoRepository(mongoDB, cfg.MongoDB.Collection)
			c.HealthChecks["mongodb"] = func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
			c.closers = append(c.closers, mongoClient.Disconnect)
		}
	}

	notifier := buildNotifier(cfg, pushSubs, logger)
	providers, stripeGateway := buildProviders(cfg, logger)

	pricing := usecase.NewPricingUseCase(catalog, cfg.App.DepositPercent, logger)
	c.OrderLimits = usecase.NewOrderLimitUseCase(orders, catalog, logger)
	c.Checkout = usecase.NewCheckoutUseCase(pending, orders, refs, catalog, pricing, c.OrderLimits, providers, cfg.App.BaseURL, logger)
	c.Orders = usecase.NewOrderUseCase(orders, paymentRecords, refs, catalog, pricing, c.OrderLimits, notifier, audit, logger)

	deps := usecase.ReconciliationDeps{
		Pending:   pending,
		Orders:    orders,
		Payments:  paymentRecords,
		Refs:      refs,
		Catalog:   catalog,
		Limits:    c.OrderLimits,
		Providers: providers,
		Events:    events,
		Notifier:  notifier,
		Audit:     audit,
	}
	var transfers interfaces.ITransferGateway
	if stripeGateway != nil {
		transfers = stripeGateway
		if cfg.Stripe.WebhookSecret != "" {
			deps.Webhooks = stripeGateway
		} else {
			logger.Warn("[app] " + payments.ErrMissingStripeWebhookSecret.Error() + ": stripe webhooks rejected")
		}
	}
	c.Reconciliation = usecase.NewReconciliationUseCase(deps, logger)
	c.Payouts = usecase.NewAffiliatePayoutUseCase(
		commissions, payoutLedger, catalog, transfers, lock, notifier, audit,
		usecase.PayoutConfig{Day: cfg.Cron.PayoutDay, Currency: cfg.App.Currency},
		logger,
	)

	return c, nil
}

// buildProviders returns every configured provider. The Stripe gateway is
// also returned on its own because it serves transfers and webhooks.
func buildProviders(cfg *config.Config, logger *zap.Logger) ([]interfaces.IPaymentProvider, *payments.StripeGateway) {
	var providers []interfaces.IPaymentProvider

	stripeGateway, err := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.App.Currency, logger)
	if err != nil {
		stripeGateway = nil
	} else {
		providers = append(providers, stripeGateway)
	}

	if pp, err := payments.NewPayPalGateway(cfg.PayPal.ClientID, cfg.PayPal.Secret, cfg.PayPal.Sandbox, cfg.App.Currency, logger); err == nil {
		providers = append(providers, pp)
	}

	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.App.Currency, cfg.App.PaymentMock, logger); err == nil {
		providers = append(providers, mp)
	}

	if len(providers) == 0 {
		logger.Warn("[app] no payment provider configured: only manual transfers are available")
	}
	return providers, stripeGateway
}

func buildNotifier(cfg *config.Config, subs interfaces.IPushSubscriptionRepository, logger *zap.Logger) interfaces.INotifier {
	var channels []interfaces.INotifier

	email, err := notifications.NewEmailNotifier(cfg.SMTP, cfg.App.BaseURL, logger)
	switch {
	case err == nil:
		channels = append(channels, email)
	case errors.Is(err, notifications.ErrSMTPNotConfigured):
		logger.Info("[app] smtp not configured: email notifications disabled")
	default:
		logger.Warn("[app] email notifier failed", zap.Error(err))
	}

	push, err := notifications.NewPushNotifier(subs, cfg.WebPush, cfg.App.BaseURL, &http.Client{Timeout: pushHTTPTimeout}, logger)
	switch {
	case err == nil:
		channels = append(channels, push)
	case errors.Is(err, notifications.ErrVAPIDNotConfigured):
		logger.Info("[app] vapid keys not configured: push notifications disabled")
	default:
		logger.Warn("[app] push notifier failed", zap.Error(err))
	}

	if len(channels) == 0 {
		return nil
	}
	return notifications.NewMultiNotifier(channels...)
}

// Close releases connections in reverse order of acquisition.
func (c *Container) Close(ctx context.Context) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			c.Logger.Warn("[app] close failed", zap.Error(err))
		}
	}
}
