package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Cache keys for the catalog endpoints. Admin writes invalidate these.
const (
	KeyKitchens   = "catalog:kitchens"
	KeyCategories = "catalog:categories"
)

// CatalogTTL bounds staleness if an invalidation is ever missed.
const CatalogTTL = 5 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// CacheGet returns the cached JSON payload for a key, if present.
func CacheGet(key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSet stores a JSON payload under a key with the catalog TTL.
func CacheSet(key, payload string) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, key, payload, CatalogTTL)
}

// InvalidateCatalog drops the catalog cache after an admin write.
func InvalidateCatalog() {
	if Client == nil {
		return
	}
	Client.Del(Ctx, KeyKitchens, KeyCategories)
}
