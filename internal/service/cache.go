package service

import (
	"context"
	"errors"
	"sync"
	"time"
	"ufsbd-cms-server/internal/logger"

	"github.com/redis/go-redis/v9"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// ttlCache 带过期时间的字符串缓存：优先 Redis，不可用时使用进程内 sync.Map
type ttlCache struct {
	namespace string
	local     sync.Map
}

func newTTLCache(namespace string) *ttlCache {
	return &ttlCache{namespace: namespace}
}

func (c *ttlCache) Get(ctx context.Context, key string) (string, bool) {
	if rc := GetRedisClient(); rc != nil {
		val, err := rc.Get(ctx, RedisKey(c.namespace, key)).Result()
		if err == nil {
			return val, true
		}
		if errors.Is(err, redis.Nil) {
			return "", false
		}
		logger.Warn().Err(err).Str("cache", c.namespace).Msg("⚠️ Redis 读取失败，回退到内存缓存")
	}

	raw, ok := c.local.Load(key)
	if !ok {
		return "", false
	}
	entry := raw.(cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.local.Delete(key)
		return "", false
	}
	return entry.value, true
}

func (c *ttlCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if rc := GetRedisClient(); rc != nil {
		err := rc.Set(ctx, RedisKey(c.namespace, key), value, ttl).Err()
		if err == nil {
			return
		}
		logger.Warn().Err(err).Str("cache", c.namespace).Msg("⚠️ Redis 写入失败，回退到内存缓存")
	}
	c.local.Store(key, cacheEntry{value: value, expiresAt: time.Now().Add(ttl)})
}

func (c *ttlCache) Delete(ctx context.Context, key string) {
	if rc := GetRedisClient(); rc != nil {
		if err := rc.Del(ctx, RedisKey(c.namespace, key)).Err(); err != nil {
			logger.Warn().Err(err).Str("cache", c.namespace).Msg("⚠️ Redis 删除失败")
		}
	}
	c.local.Delete(key)
}
