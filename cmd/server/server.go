package server

import (
	"context"
	"time"

	"school-activities-system/config"
	"school-activities-system/internal/global/cache"
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/httpclient"
	"school-activities-system/internal/global/logger"
	"school-activities-system/internal/global/middleware"
	"school-activities-system/internal/global/otel"
	"school-activities-system/internal/global/sentry"
	"school-activities-system/internal/module"
	"school-activities-system/tools"

	"github.com/gin-gonic/gin"
)

// Init 按依赖顺序初始化全局组件与业务模块
func Init() {
	config.Init()

	log := logger.Get()

	// Sentry 要先于 database/cache 初始化，追踪插件依赖它
	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}

	database.Init()
	cache.Init()
	httpclient.Init()

	if config.Get().OTel.Enable {
		otel.Init()
	}

	for _, m := range module.Modules {
		m.Init()
		log.Info("模块初始化完成", "module", m.GetName())
	}
}

// Run 装配中间件与路由并启动 HTTP 服务
func Run() {
	cfg := config.Get()

	switch cfg.Mode {
	case config.ModeRelease:
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Logger(logger.New("HTTP")))
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	api := r.Group("/" + cfg.Prefix)
	for _, m := range module.Modules {
		m.InitRouter(api)
	}

	defer func() {
		sentry.Flush(2 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otel.Shutdown(ctx); err != nil {
			logger.Get().Warn("OTel 关闭失败", "error", err)
		}
	}()

	logger.Get().Info("服务启动", "addr", cfg.Host+":"+cfg.Port, "prefix", cfg.Prefix)
	tools.PanicOnErr(r.Run(cfg.Host + ":" + cfg.Port))
}
