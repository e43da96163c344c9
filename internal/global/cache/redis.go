package cache

import (
	"context"
	"log/slog"
	"time"

	"school-activities-system/config"
	"school-activities-system/internal/global/logger"
	"school-activities-system/internal/global/sentry/tracing"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	log    *slog.Logger
)

// Init 初始化 Redis 客户端，未配置 host 或连接失败时降级为无缓存运行
func Init() {
	log = logger.New("Cache")

	cfg := config.Get().Redis
	if cfg.Host == "" {
		log.Info("Redis 未配置，公告缓存禁用")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisSentryHook())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis 连接失败，公告缓存禁用", "error", err)
		return
	}

	Client = client
	log.Info("Redis 连接成功", "addr", cfg.Host+":"+cfg.Port)
}

// Enabled 缓存是否可用
func Enabled() bool {
	return Client != nil
}
