package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/Abraham-Almonte/Conexion-DB/internal/handler/http"
	gormpersistence "github.com/Abraham-Almonte/Conexion-DB/internal/infra/persistence/gorm"
	"github.com/Abraham-Almonte/Conexion-DB/internal/infra/obs"
	"github.com/Abraham-Almonte/Conexion-DB/internal/infra/setup"
	"github.com/Abraham-Almonte/Conexion-DB/internal/service"
)

const serviceName = "usuarios-api"

// App 结构体包含应用的所有组件和配置
type App struct {
	Config         *Config
	Log            *logrus.Logger
	DB             *gorm.DB
	RedisClient    *redis.Client
	HttpServer     *http.Server
	shutdownTracer obs.ShutdownFunc
}

// NewApp 创建并初始化应用的所有组件。
// 数据库不可达时返回错误，调用者应终止进程。
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		// logrus 还未配置，直接写 stderr
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := NewLogger(cfg)
	log.WithFields(logrus.Fields{"env": cfg.AppEnv, "level": log.GetLevel().String()}).Info("Configuration loaded successfully")

	// 3. 初始化基础设施
	shutdownTracer, err := obs.InitTracer(context.Background(), serviceName, cfg.OTLPEndpoint, cfg.AppEnv)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracer: %w", err)
	}
	if cfg.OTLPEndpoint != "" {
		log.WithField("endpoint", cfg.OTLPEndpoint).Info("OTLP tracing enabled")
	}

	db, err := setup.InitDB(setup.DBOptions{
		DSN:            cfg.DatabaseDSN,
		ConnectTimeout: cfg.DBConnectTimeout,
		SocketTimeout:  cfg.DBSocketTimeout,
		MaxOpenConns:   cfg.DBMaxOpenConns,
		MaxIdleConns:   cfg.DBMaxIdleConns,
	})
	if err != nil {
		_ = shutdownTracer(context.Background())
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err = setup.MigrateDB(db); err != nil {
		_ = setup.CloseDB(db)
		_ = shutdownTracer(context.Background())
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = setup.CloseDB(db)
			_ = shutdownTracer(context.Background())
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		log.Info("Rate limiting enabled")
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// 4. Repository -> Service -> Handler
	usuarioRepo := gormpersistence.NewGormUsuarioRepository(db)
	usuarioService := service.NewUsuarioService(usuarioRepo)
	usuarioHandler := httpHandler.NewUsuarioHandler(usuarioService, cfg.IsDevelopment())

	// 5. 初始化 Gin Engine 和路由
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := NewRouter(cfg, log, usuarioHandler, redisClient)

	app := &App{
		Config:         cfg,
		Log:            log,
		DB:             db,
		RedisClient:    redisClient,
		HttpServer:     newHTTPServer(cfg, router),
		shutdownTracer: shutdownTracer,
	}
	log.Info("Application assembled successfully")
	return app, nil
}

// Start 在后台 goroutine 中启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.WithFields(logrus.Fields{
			"addr": a.HttpServer.Addr,
			"env":  a.Config.AppEnv,
			"api":  a.Config.APIBasePath,
		}).Info("HTTP server starting")
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 停止接收新请求并等待进行中的请求完成
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	// 3. 关闭数据库连接池
	if err := setup.CloseDB(a.DB); err != nil {
		a.Log.Errorf("Error closing database connection: %v", err)
	} else {
		a.Log.Info("Database connection closed.")
	}

	// 4. 刷新未导出的 span
	if a.shutdownTracer != nil {
		if err := a.shutdownTracer(ctx); err != nil {
			a.Log.Errorf("Error shutting down tracer: %v", err)
		}
	}

	a.Log.Info("Application shutdown complete.")
}
