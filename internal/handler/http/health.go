package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse 是存活探针的响应
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health 处理存活探针请求，不访问数据库
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "Servidor funcionando correctamente",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// NotFound 处理所有未匹配的 API 路由
func NotFound(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, "Ruta no encontrada", "")
}
