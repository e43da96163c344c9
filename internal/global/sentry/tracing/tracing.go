// Package tracing 提供 Sentry 性能追踪的 GORM 与 Redis 集成
package tracing

import (
	"context"

	"school-activities-system/config"

	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回携带当前 Sentry span 的 context
// 用于把 gin.Context 转成可传给 GORM/Redis 的 context：
//
//	database.DB.WithContext(tracing.ContextWithSpan(c)).Find(&activities)
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil || c.Request.Context() == nil {
		return context.Background()
	}
	// sentrygin 中间件已把 span 存进 request context
	return c.Request.Context()
}
