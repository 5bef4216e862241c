package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"ufsbd-cms-server/internal/config"
	"ufsbd-cms-server/internal/logger"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 2 * time.Second

// redisState 进程内唯一的 Redis 连接，首次使用时按配置建立
type redisState struct {
	once   sync.Once
	mu     sync.Mutex
	client *redis.Client
}

var sharedRedis redisState

// GetRedisClient 未启用或连接失败时返回 nil，调用方应退回内存实现
func GetRedisClient() *redis.Client {
	sharedRedis.once.Do(connectRedis)
	sharedRedis.mu.Lock()
	defer sharedRedis.mu.Unlock()
	return sharedRedis.client
}

// RedisKey 拼接 {prefix}:{part}:{part}
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "ufsbd"
	}
	return strings.Join(append([]string{prefix}, parts...), ":")
}

func connectRedis() {
	cfg := config.Get().Redis
	if !cfg.Enabled {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("⚠️ Redis 不可用，角色与链接缓存降级为内存模式")
		return
	}

	sharedRedis.mu.Lock()
	sharedRedis.client = client
	sharedRedis.mu.Unlock()
	logger.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("✅ Redis 已连接")
}

// CloseRedisClient 关闭连接，之后的缓存读写走内存实现
func CloseRedisClient() error {
	sharedRedis.mu.Lock()
	client := sharedRedis.client
	sharedRedis.client = nil
	sharedRedis.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
