package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/Melodious-nub/bnp-digital-backend/pkg/cache"
)

// RedisCache implements pkg/cache.Cache backed by Redis.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(host, password string, db int) pkgcache.Cache {
	return &RedisCache{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (r *RedisCache) Connect(ctx context.Context) error {
	log.Println("[REDIS] Connecting to Redis...")

	// Ping to verify connection
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	log.Println("[REDIS] Connected successfully")
	return nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("redis unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis marshal %s: %w", key, err)
	}

	if err := r.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// DeletePattern scans to avoid blocking Redis with KEYS.
func (r *RedisCache) DeletePattern(ctx context.Context, pattern string) error {
	iter := r.Client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", pattern, err)
	}

	return r.Delete(ctx, keys...)
}

func (r *RedisCache) Ping(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
