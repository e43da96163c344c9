package test

import (
	"strings"
	"testing"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// SetupDB 为单个测试创建独立的内存 sqlite 库，完成迁移并替换全局 DB
// DSN 带测试名，测试之间互不共享数据
func SetupDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	// sqlite 只有单写者，并发测试里把连接池压到 1，避免表锁错误
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

// Module 测试路由只需要业务模块的这两个能力
type Module interface {
	Init()
	InitRouter(r *gin.RouterGroup)
}

// NewRouter 装配一个只挂指定模块的测试路由，前缀与默认配置一致
func NewRouter(t *testing.T, mods ...Module) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Recovery())
	api := r.Group("/api")
	for _, m := range mods {
		m.Init()
		m.InitRouter(api)
	}
	return r
}
