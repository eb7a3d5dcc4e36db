package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apppricing "github.com/vendops/backend/internal/application/pricing"
	"github.com/vendops/backend/internal/domain/pricing"
)

const (
	priceKeyPrefix = "price:effective:"
	// priceKeySetPrefix tracks every context-specific key written for a
	// SKU so invalidation can drop them all without a SCAN.
	priceKeySetPrefix = "price:effective:keys:"

	defaultPriceTTL = 5 * time.Minute
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisPriceCache is a Redis-backed read-through cache for resolved
// effective prices. Entries are keyed per SKU and resolution context and
// invalidated per SKU on every override mutation.
type RedisPriceCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
}

// RedisPriceCacheOption is a functional option for configuring the cache
type RedisPriceCacheOption func(*RedisPriceCache)

// WithPriceTTL sets the entry TTL
func WithPriceTTL(ttl time.Duration) RedisPriceCacheOption {
	return func(c *RedisPriceCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// NewRedisPriceCache creates a new Redis-backed price cache
func NewRedisPriceCache(cfg RedisConfig, opts ...RedisPriceCacheOption) (*RedisPriceCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisPriceCache{
		client:     client,
		ownsClient: true,
		ttl:        defaultPriceTTL,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisPriceCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisPriceCacheWithClient(client *redis.Client, opts ...RedisPriceCacheOption) *RedisPriceCache {
	cache := &RedisPriceCache{
		client:     client,
		ownsClient: false,
		ttl:        defaultPriceTTL,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached resolution for the SKU and context, nil on a miss
func (c *RedisPriceCache) Get(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext) (*apppricing.EffectivePriceResponse, error) {
	data, err := c.client.Get(ctx, priceKey(skuID, rctx)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read price cache: %w", err)
	}

	var result apppricing.EffectivePriceResponse
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten
		return nil, nil
	}
	return &result, nil
}

// Set stores the resolution for the SKU and context. The entry lives
// for the configured TTL, shortened to maxTTL when the caller knows the
// answer changes sooner (an override window opening or closing).
func (c *RedisPriceCache) Set(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext, result *apppricing.EffectivePriceResponse, maxTTL time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize price cache entry: %w", err)
	}

	ttl := c.ttl
	if maxTTL > 0 && maxTTL < ttl {
		ttl = maxTTL
	}

	key := priceKey(skuID, rctx)
	setKey := priceKeySetPrefix + skuID.String()

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, data, ttl)
	pipe.SAdd(ctx, setKey, key)
	// Keep the key set alive slightly longer than its members
	pipe.Expire(ctx, setKey, c.ttl+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write price cache: %w", err)
	}
	return nil
}

// InvalidateSKU drops every cached resolution for the SKU regardless of context
func (c *RedisPriceCache) InvalidateSKU(ctx context.Context, skuID uuid.UUID) error {
	setKey := priceKeySetPrefix + skuID.String()

	keys, err := c.client.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to list price cache keys: %w", err)
	}

	pipe := c.client.TxPipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, setKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate price cache: %w", err)
	}
	return nil
}

// Close closes the Redis client if this cache owns it
func (c *RedisPriceCache) Close() error {
	if !c.ownsClient {
		return nil
	}
	return c.client.Close()
}

// priceKey builds the cache key for one SKU and resolution context. The
// context is canonicalized (district/state lowercased) and hashed so
// equivalent contexts share an entry.
func priceKey(skuID uuid.UUID, rctx pricing.ResolutionContext) string {
	areaID := ""
	if rctx.AreaID != nil {
		areaID = rctx.AreaID.String()
	}
	canonical := strings.Join([]string{
		"m=" + rctx.MachineID,
		"a=" + areaID,
		"d=" + strings.ToLower(rctx.District),
		"s=" + strings.ToLower(rctx.State),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return priceKeyPrefix + skuID.String() + ":" + hex.EncodeToString(sum[:8])
}

// Ensure RedisPriceCache implements the interface
var _ apppricing.PriceCache = (*RedisPriceCache)(nil)
