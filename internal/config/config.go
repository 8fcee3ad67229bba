package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigFile = "config/config.yaml"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	AWS         AWSConfig         `mapstructure:"aws"`
	MySQL       MySQLConfig       `mapstructure:"mysql"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MongoDB     MongoDBConfig     `mapstructure:"mongodb"`
	Stripe      StripeConfig      `mapstructure:"stripe"`
	PayPal      PayPalConfig      `mapstructure:"paypal"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	SMTP        SMTPConfig        `mapstructure:"smtp"`
	WebPush     WebPushConfig     `mapstructure:"webpush"`
	Cron        CronConfig        `mapstructure:"cron"`
	App         AppConfig         `mapstructure:"app"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	Mode         string `mapstructure:"mode"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

type AWSConfig struct {
	Region          string       `mapstructure:"region"`
	Endpoint        string       `mapstructure:"endpoint"`
	AccessKeyID     string       `mapstructure:"access_key_id"`
	SecretAccessKey string       `mapstructure:"secret_access_key"`
	Tables          TablesConfig `mapstructure:"tables"`
}

type TablesConfig struct {
	Orders        string `mapstructure:"orders"`
	PendingOrders string `mapstructure:"pending_orders"`
	Payments      string `mapstructure:"payments"`
	Commissions   string `mapstructure:"commissions"`
	Payouts       string `mapstructure:"payouts"`
	Counters      string `mapstructure:"counters"`
}

type MySQLConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

func (c *MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	PoolSize   int           `mapstructure:"pool_size"`
	WebhookTTL time.Duration `mapstructure:"webhook_ttl"`
}

type MongoDBConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

type PayPalConfig struct {
	ClientID string `mapstructure:"client_id"`
	Secret   string `mapstructure:"secret"`
	Sandbox  bool   `mapstructure:"sandbox"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type WebPushConfig struct {
	PublicKey  string `mapstructure:"public_key"`
	PrivateKey string `mapstructure:"private_key"`
	Subscriber string `mapstructure:"subscriber"`
	TTL        int    `mapstructure:"ttl"`
}

type CronConfig struct {
	Secret    string `mapstructure:"secret"`
	PayoutDay int    `mapstructure:"payout_day"`
}

type AppConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Currency       string `mapstructure:"currency"`
	DepositPercent int    `mapstructure:"deposit_percent"`
	PaymentMock    bool   `mapstructure:"payment_mock"`
	Timezone       string `mapstructure:"timezone"`
}

// Load reads the YAML file at path (CONFIG_FILE when empty) and overlays the
// environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.DepositPercent <= 0 || c.App.DepositPercent > 100 {
		return fmt.Errorf("app.deposit_percent must be in (0, 100], got %d", c.App.DepositPercent)
	}
	if c.Cron.PayoutDay < 1 || c.Cron.PayoutDay > 28 {
		return fmt.Errorf("cron.payout_day must be between 1 and 28, got %d", c.Cron.PayoutDay)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.output_paths", []string{"stdout"})

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.tables.orders", "orders")
	v.SetDefault("aws.tables.pending_orders", "pending_orders")
	v.SetDefault("aws.tables.payments", "payments")
	v.SetDefault("aws.tables.commissions", "affiliate_commissions")
	v.SetDefault("aws.tables.payouts", "affiliate_payouts")
	v.SetDefault("aws.tables.counters", "order_counters")

	v.SetDefault("mysql.host", "localhost")
	v.SetDefault("mysql.port", 3306)
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.password", "")
	v.SetDefault("mysql.database", "patisserie")
	v.SetDefault("mysql.max_idle_conns", 5)
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.auto_migrate", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.webhook_ttl", 7*24*time.Hour)

	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "patisserie")
	v.SetDefault("mongodb.collection", "audit_logs")

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("paypal.client_id", "")
	v.SetDefault("paypal.secret", "")
	v.SetDefault("paypal.sandbox", true)
	v.SetDefault("mercadopago.access_token", "")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "commandes@patisserie.local")

	v.SetDefault("webpush.public_key", "")
	v.SetDefault("webpush.private_key", "")
	v.SetDefault("webpush.subscriber", "mailto:support@patisserie.local")
	v.SetDefault("webpush.ttl", 3600)

	v.SetDefault("cron.secret", "")
	v.SetDefault("cron.payout_day", 5)

	v.SetDefault("app.base_url", "http://localhost:3000")
	v.SetDefault("app.currency", "EUR")
	v.SetDefault("app.deposit_percent", 50)
	v.SetDefault("app.payment_mock", false)
	v.SetDefault("app.timezone", "Europe/Paris")
}
