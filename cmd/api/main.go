package main

import (
	"log"

	_ "patisserie_marketplace/docs"
	"patisserie_marketplace/internal/adapter/http/routes"
	"patisserie_marketplace/internal/config"
	"patisserie_marketplace/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Patisserie Marketplace API
// @version         1.0
// @description     Order intake, payment reconciliation and affiliate payouts for pastry shops.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey ProfileID
// @in header
// @name X-Profile-ID
// @description Merchant profile id injected by the auth proxy.

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}
