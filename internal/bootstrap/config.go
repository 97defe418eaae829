package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config 结构体用于存储从环境变量或 .env 文件加载的配置
type Config struct {
	DatabaseDSN      string        `envconfig:"DATABASE_DSN" default:"root:@tcp(127.0.0.1:3306)/formulario_db?charset=utf8mb4&parseTime=True&loc=Local"`
	DBConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	DBSocketTimeout  time.Duration `envconfig:"DB_SOCKET_TIMEOUT" default:"45s"`
	DBMaxOpenConns   int           `envconfig:"DB_MAX_OPEN_CONNS" default:"50"`
	DBMaxIdleConns   int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`

	ServerPort      string        `envconfig:"PORT" default:"3000"`
	AppEnv          string        `envconfig:"APP_ENV" default:"development"` // development / production
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	APIBasePath     string        `envconfig:"API_BASE_PATH" default:"/api/usuarios"`
	StaticDir       string        `envconfig:"STATIC_DIR"` // 为空时使用内嵌的前端资源
	CORSOrigin      string        `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Redis 只用于限流，REDIS_ADDR 为空时不启用
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix       string        `envconfig:"REDIS_KEY_PREFIX" default:"usuarios:"`
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1s"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// IsProduction 生产环境下隐藏内部错误细节
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// IsDevelopment 只有开发环境才在响应中返回内部错误细节
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize 修正和检查配置值
func (c *Config) normalize() error {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	if c.AppEnv == "" {
		c.AppEnv = "development"
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return fmt.Errorf("environment variable DATABASE_DSN must not be empty")
	}
	if c.ServerPort == "" {
		c.ServerPort = "3000"
	}

	c.APIBasePath = "/" + strings.Trim(strings.TrimSpace(c.APIBasePath), "/")
	if c.APIBasePath == "/" {
		return fmt.Errorf("API_BASE_PATH must not be the site root")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", c.LogLevel)
		c.LogLevel = "info"
	}
	if c.RateLimitMax <= 0 || c.RateLimitWindow <= 0 {
		logrus.Warn("Invalid rate limit settings, using defaults (100 per 1s)")
		c.RateLimitMax = 100
		c.RateLimitWindow = time.Second
	}
	return nil
}
