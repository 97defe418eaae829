package http

import "github.com/gin-gonic/gin"

// Envelope 是所有 API 响应的统一结构
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Mensaje string `json:"mensaje,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse 写入失败响应；detail 为空时省略 error 字段
func ErrorResponse(c *gin.Context, code int, mensaje, detail string) {
	c.JSON(code, Envelope{Success: false, Mensaje: mensaje, Error: detail})
}

// SuccessResponse 写入成功响应
func SuccessResponse(c *gin.Context, code int, mensaje string, data any) {
	c.JSON(code, Envelope{Success: true, Mensaje: mensaje, Data: data})
}

// ListResponse 写入带 count 的列表响应
func ListResponse[T any](c *gin.Context, code int, items []T) {
	count := len(items)
	if items == nil {
		items = []T{}
	}
	c.JSON(code, Envelope{Success: true, Count: &count, Data: items})
}
