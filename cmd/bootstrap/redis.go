package bootstrap

import (
	"context"

	"office-booking/internal/infra/cache"
	"office-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		cache.NewAvailabilityCache,
	),
)

// NewRedisClient returns nil when caching is disabled so the availability
// cache degrades to a permanent miss instead of dialing a dead endpoint.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.DisableCache {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
