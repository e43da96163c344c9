package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST"`
	Port   string `envconfig:"PORT"`
	Prefix string `envconfig:"PREFIX"`
	Mode   Mode   `envconfig:"MODE"`
	Mysql  Mysql
	Redis  Redis
	Log    Log    `mapstructure:"Log"`
	Sentry Sentry `mapstructure:"Sentry"`
	OTel   OTel   `mapstructure:"OTel"`
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `mapstructure:"host" envconfig:"HOST"` // 留空则禁用公告缓存
	Port     string `mapstructure:"port" envconfig:"PORT"`
	Password string `mapstructure:"password" envconfig:"PASSWORD"`
	DB       int    `mapstructure:"db" envconfig:"DB"`
}

type Log struct {
	FilePath   string `envconfig:"FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string        `envconfig:"DSN" mapstructure:"dsn"`
	Environment string        `envconfig:"ENVIRONMENT" mapstructure:"environment"`
	SampleRate  float64       `envconfig:"SAMPLE_RATE" mapstructure:"sample_rate"`
	Tracing     SentryTracing `mapstructure:"tracing"`
}

type SentryTracing struct {
	DBSlowThresholdMs    int `envconfig:"DB_SLOW_THRESHOLD_MS" mapstructure:"db_slow_threshold_ms"`
	RedisSlowThresholdMs int `envconfig:"REDIS_SLOW_THRESHOLD_MS" mapstructure:"redis_slow_threshold_ms"`
}

type OTel struct {
	Enable      bool   `envconfig:"ENABLE" mapstructure:"enable"`
	ServiceName string `envconfig:"SERVICE_NAME" mapstructure:"service_name"`
	AgentHost   string `envconfig:"AGENT_HOST" mapstructure:"agent_host"`
	AgentPort   string `envconfig:"AGENT_PORT" mapstructure:"agent_port"`
}
