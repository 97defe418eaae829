package service

import (
	"strings"
	"unicode/utf8"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
)

// UsuarioInput 是创建/更新请求中携带的字段，nil 表示请求中没有该字段
type UsuarioInput struct {
	Nombre   *string
	Email    *string
	Telefono *string
	Edad     *int
}

// NormalizeEmail 去除首尾空白并转为小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// applyInput 把请求字段合并到 usuario 上并做规范化
func applyInput(usuario *domain.Usuario, in UsuarioInput) {
	if in.Nombre != nil {
		usuario.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Email != nil {
		usuario.Email = NormalizeEmail(*in.Email)
	}
	if in.Telefono != nil {
		usuario.Telefono = *in.Telefono
	}
	if in.Edad != nil {
		usuario.Edad = *in.Edad
	}
}

// validateUsuario 检查合并后的完整记录。edadSet 为 false 表示创建请求没有提供 edad。
func validateUsuario(usuario *domain.Usuario, edadSet bool) error {
	ve := &ValidationError{}
	if usuario.Nombre == "" {
		ve.add("nombre", msgNombreObligatorio)
	}
	switch {
	case usuario.Email == "":
		ve.add("email", msgEmailObligatorio)
	case utf8.RuneCountInString(usuario.Email) > domain.EmailMaxLen:
		ve.add("email", msgEmailDemasiadoLargo)
	}
	if usuario.Telefono == "" {
		ve.add("telefono", msgTelefonoObligatorio)
	}
	switch {
	case !edadSet:
		ve.add("edad", msgEdadObligatoria)
	case usuario.Edad < domain.EdadMin || usuario.Edad > domain.EdadMax:
		ve.add("edad", msgEdadRango)
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
