package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Abraham-Almonte/Conexion-DB/internal/service"
)

// UsuarioHandler 封装了 Usuario CRUD 的 HTTP 处理逻辑
type UsuarioHandler struct {
	usuarioService *service.UsuarioService
	exposeErrors   bool // 开发模式下在 error 字段中返回内部错误细节
}

// NewUsuarioHandler 创建 UsuarioHandler 实例
func NewUsuarioHandler(usuarioService *service.UsuarioService, exposeErrors bool) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService, exposeErrors: exposeErrors}
}

// UsuarioRequest 定义创建/更新请求体。字段都是指针，以区分"未提供"和零值。
// 同时支持 JSON 和 application/x-www-form-urlencoded。
type UsuarioRequest struct {
	Nombre   *string `json:"nombre" form:"nombre"`
	Email    *string `json:"email" form:"email"`
	Telefono *string `json:"telefono" form:"telefono"`
	Edad     *int    `json:"edad" form:"edad"`
}

func (r UsuarioRequest) toInput() service.UsuarioInput {
	return service.UsuarioInput{
		Nombre:   r.Nombre,
		Email:    r.Email,
		Telefono: r.Telefono,
		Edad:     r.Edad,
	}
}

// List 处理 GET /
func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err, "Error al obtener usuarios", h.exposeErrors)
		return
	}
	ListResponse(c, http.StatusOK, usuarios)
}

// Get 处理 GET /:id
func (h *UsuarioHandler) Get(c *gin.Context) {
	usuario, err := h.usuarioService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err, "Error al obtener usuario", h.exposeErrors)
		return
	}
	SuccessResponse(c, http.StatusOK, "", usuario)
}

// Create 处理 POST /
func (h *UsuarioHandler) Create(c *gin.Context) {
	const mensaje = "Error al crear usuario"

	var req UsuarioRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Create: Invalid input format")
		HandleServiceError(c, bindError(err), mensaje, h.exposeErrors)
		return
	}

	usuario, err := h.usuarioService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		HandleServiceError(c, err, mensaje, h.exposeErrors)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Usuario creado exitosamente", usuario)
}

// Update 处理 PUT /:id，请求体可以只包含部分字段
func (h *UsuarioHandler) Update(c *gin.Context) {
	const mensaje = "Error al actualizar usuario"

	var req UsuarioRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).WithField("usuario_id", c.Param("id")).Warn("Handler.Update: Invalid input format")
		HandleServiceError(c, bindError(err), mensaje, h.exposeErrors)
		return
	}

	usuario, err := h.usuarioService.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		HandleServiceError(c, err, mensaje, h.exposeErrors)
		return
	}
	SuccessResponse(c, http.StatusOK, "Usuario actualizado exitosamente", usuario)
}

// Delete 处理 DELETE /:id
func (h *UsuarioHandler) Delete(c *gin.Context) {
	if _, err := h.usuarioService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleServiceError(c, err, "Error al eliminar usuario", h.exposeErrors)
		return
	}
	SuccessResponse(c, http.StatusOK, "Usuario eliminado exitosamente", gin.H{})
}

// bindError 把请求体解析错误转换为校验错误 (400)
func bindError(err error) *service.ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "edad" {
			return service.NewValidationError("edad", "La edad debe ser un número entero")
		}
		return service.NewValidationError(typeErr.Field, "El campo debe ser texto")
	}
	return service.NewValidationError("body", "El cuerpo de la solicitud no es válido")
}
