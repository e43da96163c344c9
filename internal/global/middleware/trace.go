package middleware

import (
	"school-activities-system/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Trace 返回 OTel 追踪中间件
func Trace() gin.HandlerFunc {
	return otelgin.Middleware(config.Get().OTel.ServiceName)
}
