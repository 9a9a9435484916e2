package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrCacheMiss indicates a cache miss.
var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
	prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "docextractor:"
	}
	return &RedisCache{client: client, prefix: prefix}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// CachedStore serves Get from cache and falls back to the wrapped store.
// Entries are cached as BSON. Cache failures never fail a call.
type CachedStore[T Record] struct {
	DocumentStore[T]
	cache     Cache
	namespace string
	ttl       time.Duration
}

func NewCachedStore[T Record](store DocumentStore[T], cache Cache, namespace string, ttl time.Duration) *CachedStore[T] {
	return &CachedStore[T]{
		DocumentStore: store,
		cache:         cache,
		namespace:     namespace,
		ttl:           ttl,
	}
}

func (s *CachedStore[T]) cacheKey(key string) string {
	return s.namespace + ":" + key
}

func (s *CachedStore[T]) Put(ctx context.Context, record T) error {
	if err := s.DocumentStore.Put(ctx, record); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(record.RecordKey()))
	return nil
}

func (s *CachedStore[T]) Get(ctx context.Context, key string) (T, error) {
	var record T
	if raw, err := s.cache.Get(ctx, s.cacheKey(key)); err == nil {
		if err := bson.Unmarshal(raw, &record); err == nil {
			return record, nil
		}
	}

	record, err := s.DocumentStore.Get(ctx, key)
	if err != nil {
		return record, err
	}
	if raw, err := bson.Marshal(record); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(key), raw, s.ttl)
	}
	return record, nil
}
