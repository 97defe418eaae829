package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abraham-Almonte/Conexion-DB/internal/repository"
)

var (
	ErrUsuarioNotFound  = errors.New("usuario no encontrado")
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrInternalServer   = errors.New("internal server error")
)

// 字段校验消息，直接返回给客户端
const (
	msgNombreObligatorio   = "El nombre es obligatorio"
	msgEmailObligatorio    = "El email es obligatorio"
	msgEmailDuplicado      = "El email ya está registrado"
	msgTelefonoObligatorio = "El teléfono es obligatorio"
	msgEdadObligatoria     = "La edad es obligatoria"
	msgEdadRango           = "La edad debe estar entre 1 y 120"
	msgEmailDemasiadoLargo = "El email no puede superar 191 caracteres"
)

func msgDemasiadoLargo(field string) string {
	return fmt.Sprintf("El campo %s es demasiado largo", field)
}

// FieldError 描述单个字段的校验失败
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 表示请求数据不满足 Usuario 的字段约束 (包括 email 重复)
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError 创建只包含一个字段错误的 ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "Usuario validation failed: " + strings.Join(parts, ", ")
}

// IsValidationError 判断 err 链中是否有 *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// mapRepoError 将仓库层错误映射到服务层定义的错误，保留原始信息供开发模式输出
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrUsuarioNotFound
	case errors.Is(err, repository.ErrDuplicateEntry):
		return NewValidationError("email", msgEmailDuplicado)
	case errors.Is(err, repository.ErrConstraintViolation):
		return NewValidationError("edad", msgEdadRango)
	case errors.Is(err, repository.ErrValueTooLong):
		var ce *repository.ColumnError
		if errors.As(err, &ce) && ce.Column != "" {
			if ce.Column == "email" {
				return NewValidationError("email", msgEmailDemasiadoLargo)
			}
			return NewValidationError(ce.Column, msgDemasiadoLargo(ce.Column))
		}
		return NewValidationError("usuario", msgDemasiadoLargo("usuario"))
	case errors.Is(err, repository.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternalServer, err)
	}
}
