package database

import (
	"time"

	"school-activities-system/config"
	"school-activities-system/internal/global/sentry/tracing"
	"school-activities-system/internal/model"
	"school-activities-system/tools"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.Teacher{},
	&model.Student{},
	&model.Activity{},
	&model.Registration{},
	&model.Announcement{},
	// 在这里添加其他模型
}

// Migrate 执行自动迁移，测试里用内存 sqlite 复用同一份模型列表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}

func Init() {
	dsnCfg := sqldriver.NewConfig()
	dsnCfg.User = config.Get().Mysql.Username
	dsnCfg.Passwd = config.Get().Mysql.Password
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = config.Get().Mysql.Host + ":" + config.Get().Mysql.Port
	dsnCfg.DBName = config.Get().Mysql.DBName
	dsnCfg.ParseTime = true
	dsnCfg.Loc = time.Local
	dsnCfg.Params = map[string]string{"charset": "utf8mb4"}

	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsnCfg.FormatDSN()), gormConfig)
	tools.PanicOnErr(err)

	// Sentry 启用时挂上数据库追踪插件
	if tracing.IsEnabled() {
		tools.PanicOnErr(db.Use(tracing.NewGormTracingPlugin()))
	}

	DB = db

	tools.PanicOnErr(Migrate(DB))
	tools.PanicOnErr(Seed(DB))
}
