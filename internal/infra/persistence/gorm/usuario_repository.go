package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
	"github.com/Abraham-Almonte/Conexion-DB/internal/repository"
)

// GormUsuarioRepository 是 UsuarioRepository 接口的 GORM 实现
type GormUsuarioRepository struct {
	db *gorm.DB
}

// NewGormUsuarioRepository 创建 GormUsuarioRepository 实例
func NewGormUsuarioRepository(db *gorm.DB) *GormUsuarioRepository {
	if db == nil {
		panic("database connection cannot be nil for GormUsuarioRepository")
	}
	return &GormUsuarioRepository{db: db}
}

// FindAll 返回全部记录，最新创建的在前
func (r *GormUsuarioRepository) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	usuarios := make([]domain.Usuario, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&usuarios).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find all usuarios: %w", translateError(err))
	}
	return usuarios, nil
}

// FindByID 根据 ID 查找记录，非法 ID 直接视为未找到
func (r *GormUsuarioRepository) FindByID(ctx context.Context, id string) (*domain.Usuario, error) {
	if !isValidID(id) {
		return nil, repository.ErrUsuarioNotFound
	}
	var usuario domain.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("gorm: find usuario by id '%s': %w", id, translateError(err))
	}
	return &usuario, nil
}

// Create 分配新的 UUID 并插入记录
func (r *GormUsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	// ID 永不复用：每次创建都生成新的 UUID
	usuario.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(usuario).Error; err != nil {
		return fmt.Errorf("gorm: create usuario (email: %s): %w", usuario.Email, translateError(err))
	}
	return nil
}

// Update 只更新匹配记录的四个可编辑字段，然后重新读取
func (r *GormUsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	if !isValidID(usuario.ID) {
		return nil, repository.ErrUsuarioNotFound
	}
	// 使用 map 以便零值也会被写入；updated_at 由 GORM 自动追加
	result := r.db.WithContext(ctx).
		Model(&domain.Usuario{}).
		Where("id = ?", usuario.ID).
		Updates(map[string]any{
			"nombre":   usuario.Nombre,
			"email":    usuario.Email,
			"telefono": usuario.Telefono,
			"edad":     usuario.Edad,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("gorm: update usuario (id: %s): %w", usuario.ID, translateError(result.Error))
	}
	// 依赖 DSN 中的 clientFoundRows，未修改但匹配的行也计入
	if result.RowsAffected == 0 {
		return nil, repository.ErrUsuarioNotFound
	}
	return r.FindByID(ctx, usuario.ID)
}

// DeleteByID 物理删除记录
func (r *GormUsuarioRepository) DeleteByID(ctx context.Context, id string) error {
	if !isValidID(id) {
		return repository.ErrUsuarioNotFound
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Usuario{})
	if result.Error != nil {
		return fmt.Errorf("gorm: delete usuario (id: %s): %w", id, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return repository.ErrUsuarioNotFound
	}
	return nil
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
