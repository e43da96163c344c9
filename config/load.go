package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置，优先级从低到高：内置默认值 < config.yaml < .env / 环境变量
func Init() {
	once.Do(load)
}

// Get 获取全局配置实例
func Get() *Config {
	once.Do(load)
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		Mysql: Mysql{
			Host:     "127.0.0.1",
			Port:     "3306",
			Username: "root",
			DBName:   "school_activities",
		},
		Redis: Redis{
			Port: "6379",
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		OTel: OTel{
			ServiceName: "school-activities-system",
			AgentHost:   "127.0.0.1",
			AgentPort:   "4318",
		},
	}
}

func load() {
	// .env 不存在时静默跳过，环境变量仍然生效
	_ = godotenv.Load()

	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			panic(err)
		}
	}

	// 环境变量覆盖文件配置，键名为字段路径，如 MYSQL_HOST、SENTRY_DSN
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	instance = cfg
}
