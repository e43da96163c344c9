package tracing

import (
	"time"

	"school-activities-system/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 实现 GORM Plugin 接口，用于追踪数据库操作
type GormTracingPlugin struct {
	// slowThreshold 慢查询阈值，0 表示记录所有查询
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	cfg := config.Get()
	return &GormTracingPlugin{
		slowThreshold: time.Duration(cfg.Sentry.Tracing.DBSlowThresholdMs) * time.Millisecond,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 注册 GORM 回调，在操作前后创建和结束 span
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	_ = db.Callback().Create().Before("gorm:create").Register(callbackPrefix+":before_create", p.beforeCallback("db.sql.create"))
	_ = db.Callback().Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.beforeCallback("db.sql.query"))
	_ = db.Callback().Update().Before("gorm:update").Register(callbackPrefix+":before_update", p.beforeCallback("db.sql.update"))
	_ = db.Callback().Delete().Before("gorm:delete").Register(callbackPrefix+":before_delete", p.beforeCallback("db.sql.delete"))
	_ = db.Callback().Row().Before("gorm:row").Register(callbackPrefix+":before_row", p.beforeCallback("db.sql.row"))
	_ = db.Callback().Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.beforeCallback("db.sql.raw"))

	_ = db.Callback().Create().After("gorm:create").Register(callbackPrefix+":after_create", p.afterCallback)
	_ = db.Callback().Query().After("gorm:query").Register(callbackPrefix+":after_query", p.afterCallback)
	_ = db.Callback().Update().After("gorm:update").Register(callbackPrefix+":after_update", p.afterCallback)
	_ = db.Callback().Delete().After("gorm:delete").Register(callbackPrefix+":after_delete", p.afterCallback)
	_ = db.Callback().Row().After("gorm:row").Register(callbackPrefix+":after_row", p.afterCallback)
	_ = db.Callback().Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.afterCallback)

	return nil
}

func (p *GormTracingPlugin) beforeCallback(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}

		db.InstanceSet(gormStartKey, time.Now())

		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		// 描述只用表名，避免把完整 SQL（可能含敏感数据）发出去
		span.Description = db.Statement.Table
		span.SetData("db.system", "mysql")

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) afterCallback(db *gorm.DB) {
	if db.Statement == nil {
		return
	}

	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	startTime, ok := startVal.(time.Time)
	if !ok {
		return
	}

	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	// 未超过慢查询阈值的 span 不发送
	if p.slowThreshold > 0 && time.Since(startTime) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}

	span.Finish()
}
