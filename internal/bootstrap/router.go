package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	httpHandler "github.com/Abraham-Almonte/Conexion-DB/internal/handler/http"
	"github.com/Abraham-Almonte/Conexion-DB/internal/middleware"
	"github.com/Abraham-Almonte/Conexion-DB/internal/web"
)

// NewRouter 创建 Gin Engine 并注册所有路由。redisClient 为 nil 时不启用限流。
func NewRouter(cfg *Config, log *logrus.Logger, usuarioHandler *httpHandler.UsuarioHandler, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	// Logger 在 Recovery 外层，恢复后的 500 也会记录
	router.Use(LoggerMiddleware(log))
	router.Use(middleware.Recovery(cfg.IsDevelopment()))
	router.Use(middleware.CORS(cfg.CORSOrigin))

	// --- API 路由 ---
	api := router.Group(cfg.APIBasePath)
	if redisClient != nil {
		api.Use(middleware.RateLimit(redisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	{
		api.GET("", usuarioHandler.List)
		api.POST("", usuarioHandler.Create)
		api.GET("/:id", usuarioHandler.Get)
		api.PUT("/:id", usuarioHandler.Update)
		api.DELETE("/:id", usuarioHandler.Delete)
	}

	router.GET("/health", httpHandler.Health)

	// --- 前端静态资源 ---
	files := web.FileSystem(cfg.StaticDir)
	router.GET("/", web.Index(files))
	router.NoRoute(func(c *gin.Context) {
		if web.Serve(c, files) {
			return
		}
		httpHandler.NotFound(c)
	})

	return router
}

// newHTTPServer 包装 router 为 http.Server
func newHTTPServer(cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
