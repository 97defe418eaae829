package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimit_InvalidArguments(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	assert.Panics(t, func() { RateLimit(nil, "", 10, time.Second) })
	assert.Panics(t, func() { RateLimit(client, "", 0, time.Second) })
	assert.Panics(t, func() { RateLimit(client, "", 10, 0) })
	assert.NotPanics(t, func() { RateLimit(client, "usuarios:", 10, time.Second) })
}

func newRateLimitedRouter(t *testing.T, mr *miniredis.Miniredis, maxRequests int, window time.Duration) *gin.Engine {
	t.Helper()
	// 关闭重试，Redis 不可用时立即失败
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	router := gin.New()
	router.Use(RateLimit(client, "test:", maxRequests, window))
	router.GET("/api/usuarios", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func hit(router http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	req.RemoteAddr = "192.0.2.10:40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterMaxRequests(t *testing.T) {
	mr := miniredis.RunT(t)
	router := newRateLimitedRouter(t, mr, 3, time.Second)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router).Code, "request %d", i+1)
	}
	w := hit(router)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"mensaje":"Demasiadas solicitudes, intente más tarde"}`, w.Body.String())

	// 计数器必须带过期时间，否则窗口永远不会重置
	key := "test:ratelimit:192.0.2.10"
	count, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "4", count)
	assert.Equal(t, time.Second, mr.TTL(key))
}

func TestRateLimit_WindowResets(t *testing.T) {
	mr := miniredis.RunT(t)
	router := newRateLimitedRouter(t, mr, 1, time.Second)

	assert.Equal(t, http.StatusOK, hit(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(router).Code)

	mr.FastForward(time.Second)

	assert.Equal(t, http.StatusOK, hit(router).Code)
}

func TestRateLimit_RedisFailureIs500(t *testing.T) {
	mr := miniredis.RunT(t)
	router := newRateLimitedRouter(t, mr, 10, time.Second)
	mr.Close()

	w := hit(router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"mensaje":"Error interno del servidor"}`, w.Body.String())
}

func TestCORS_SpecificOriginAllowsCredentials(t *testing.T) {
	router := gin.New()
	router.Use(CORS("https://app.example.com"))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRecovery_ExposesDetailInDevelopment(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(true))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"mensaje":"Error interno del servidor","error":"kaboom"}`, w.Body.String())
}
