package repository

import (
	"context"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
)

// UsuarioRepository 定义了 Usuario 记录的存储和检索操作。
// 每个方法都是一次对存储的单独往返，不做重试。
type UsuarioRepository interface {
	// FindAll 返回全部记录，按创建时间倒序。没有记录时返回空 slice。
	FindAll(ctx context.Context) ([]domain.Usuario, error)

	// FindByID 根据 ID 查找记录。
	// 记录不存在或 ID 格式非法时返回 ErrNotFound。
	FindByID(ctx context.Context, id string) (*domain.Usuario, error)

	// Create 分配 ID 并插入新记录，时间戳由 GORM 填充。
	// Email 重复时返回 ErrDuplicateEntry。
	Create(ctx context.Context, usuario *domain.Usuario) error

	// Update 更新匹配记录的可编辑字段，返回更新后的记录。
	// 没有匹配的记录时返回 ErrNotFound。
	Update(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)

	// DeleteByID 物理删除记录。没有匹配的记录时返回 ErrNotFound。
	DeleteByID(ctx context.Context, id string) error
}
