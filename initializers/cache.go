package initializers

import (
	"attachment-hub-backend/config"
	"attachment-hub-backend/lib/cache"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const cachePrefix = "attachment-hub"

// InitCache falls back to process memory when redis is not configured or unreachable.
func InitCache() {
	if config.Conf.Redis.Addr == "" {
		log.Warn("redis address is not set, using in-memory cache")
		cache.Instance = cache.NewMemoryCache()
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("redis ping failed, using in-memory cache")
		cache.Instance = cache.NewMemoryCache()
		return
	}
	cache.Instance = cache.NewRedisCache(client, cachePrefix)
	log.Info("redis cache connected")
}
