// Package mocks 提供仓库接口的 testify Mock 实现，供服务层和处理器测试使用。
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
	"github.com/Abraham-Almonte/Conexion-DB/internal/repository"
)

// UsuarioRepository 是 repository.UsuarioRepository 的 Mock
type UsuarioRepository struct {
	mock.Mock
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

func (m *UsuarioRepository) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	args := m.Called(ctx)
	var usuarios []domain.Usuario
	if v := args.Get(0); v != nil {
		usuarios = v.([]domain.Usuario)
	}
	return usuarios, args.Error(1)
}

func (m *UsuarioRepository) FindByID(ctx context.Context, id string) (*domain.Usuario, error) {
	args := m.Called(ctx, id)
	var usuario *domain.Usuario
	if v := args.Get(0); v != nil {
		usuario = v.(*domain.Usuario)
	}
	return usuario, args.Error(1)
}

func (m *UsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *UsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	args := m.Called(ctx, usuario)
	var updated *domain.Usuario
	if v := args.Get(0); v != nil {
		updated = v.(*domain.Usuario)
	}
	return updated, args.Error(1)
}

func (m *UsuarioRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
