package database

import (
	appconfig "patisserie_marketplace/internal/config"

	"github.com/go-redis/redis/v8"
)

func NewRedisClient(cfg appconfig.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
