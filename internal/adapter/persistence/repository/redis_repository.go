package repository

import (
	"context"
	"fmt"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const defaultWebhookEventTTL = 7 * 24 * time.Hour

// RedisRepository holds the short-lived coordination keys of the service:
// processed webhook events and batch run locks.
type RedisRepository struct {
	client     redis.Cmdable
	webhookTTL time.Duration
}

var (
	_ interfaces.IWebhookEventStore = (*RedisRepository)(nil)
	_ interfaces.IRunLock           = (*RedisRepository)(nil)
)

func NewRedisRepository(client redis.Cmdable, webhookTTL time.Duration) *RedisRepository {
	if webhookTTL <= 0 {
		webhookTTL = defaultWebhookEventTTL
	}
	return &RedisRepository{client: client, webhookTTL: webhookTTL}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func webhookKey(provider entities.PaymentProvider, eventID string) string {
	return fmt.Sprintf("webhook:%s:%s", provider, eventID)
}

// MarkProcessed returns true the first time an event id is seen.
func (r *RedisRepository) MarkProcessed(ctx context.Context, provider entities.PaymentProvider, eventID string) (bool, error) {
	return r.client.SetNX(ctx, webhookKey(provider, eventID), time.Now().UTC().Format(time.RFC3339), r.webhookTTL).Result()
}

func (r *RedisRepository) Forget(ctx context.Context, provider entities.PaymentProvider, eventID string) error {
	return r.client.Del(ctx, webhookKey(provider, eventID)).Err()
}

func (r *RedisRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, "lock:"+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (r *RedisRepository) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, "lock:"+key).Err()
}
