package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Abraham-Almonte/Conexion-DB/internal/service"
)

const msgUsuarioNoEncontrado = "Usuario no encontrado"

// HandleServiceError 将服务层错误映射为 HTTP 状态码和统一响应。
// mensaje 是该操作的通用失败描述；exposeDetail 控制是否返回内部错误细节。
func HandleServiceError(c *gin.Context, err error, mensaje string, exposeDetail bool) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		// 校验信息是面向客户端的，总是返回
		ErrorResponse(c, http.StatusBadRequest, mensaje, ve.Error())
	case errors.Is(err, service.ErrUsuarioNotFound):
		ErrorResponse(c, http.StatusNotFound, msgUsuarioNoEncontrado, "")
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled internal server error")
		detail := ""
		if exposeDetail {
			detail = err.Error()
		}
		ErrorResponse(c, http.StatusInternalServerError, mensaje, detail)
	}
}
