package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
	"github.com/Abraham-Almonte/Conexion-DB/internal/repository"
)

var tracer = otel.Tracer("github.com/Abraham-Almonte/Conexion-DB/internal/service")

// UsuarioService 负责 Usuario 的 CRUD 业务逻辑。
// 不缓存任何记录，每个操作都直接访问仓库。
type UsuarioService struct {
	usuarioRepo repository.UsuarioRepository
}

// NewUsuarioService 创建 UsuarioService 实例。
func NewUsuarioService(usuarioRepo repository.UsuarioRepository) *UsuarioService {
	if usuarioRepo == nil {
		panic("UsuarioRepository cannot be nil for UsuarioService")
	}
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// List 返回全部记录，最新创建的在前。
func (s *UsuarioService) List(ctx context.Context) (usuarios []domain.Usuario, err error) {
	ctx, span := tracer.Start(ctx, "UsuarioService.List")
	defer func() { endSpan(span, err) }()

	usuarios, err = s.usuarioRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("List: Repository error")
		return nil, mapRepoError(err)
	}
	if usuarios == nil {
		usuarios = []domain.Usuario{}
	}
	span.SetAttributes(attribute.Int("usuarios.count", len(usuarios)))
	return usuarios, nil
}

// Get 根据 ID 返回单条记录。
func (s *UsuarioService) Get(ctx context.Context, id string) (usuario *domain.Usuario, err error) {
	ctx, span := tracer.Start(ctx, "UsuarioService.Get", trace.WithAttributes(attribute.String("usuario.id", id)))
	defer func() { endSpan(span, err) }()

	logCtx := logrus.WithField("usuario_id", id)
	usuario, err = s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			logCtx.Debug("Get: Usuario not found")
		} else {
			logCtx.WithError(err).Error("Get: Repository error")
		}
		return nil, mapRepoError(err)
	}
	if usuario == nil { // 防御
		return nil, ErrUsuarioNotFound
	}
	return usuario, nil
}

// Create 校验并创建新记录。
func (s *UsuarioService) Create(ctx context.Context, in UsuarioInput) (usuario *domain.Usuario, err error) {
	ctx, span := tracer.Start(ctx, "UsuarioService.Create")
	defer func() { endSpan(span, err) }()

	usuario = &domain.Usuario{}
	applyInput(usuario, in)
	logCtx := logrus.WithField("email", usuario.Email)

	// 1. 先按字段约束校验，不满足的请求不会到达存储
	if err = validateUsuario(usuario, in.Edad != nil); err != nil {
		logCtx.WithError(err).Info("Create: Validation failed")
		return nil, err
	}

	// 2. 保存；email 唯一性由存储的唯一索引原子地保证
	if err = s.usuarioRepo.Create(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Info("Create: Duplicate email")
		} else {
			logCtx.WithError(err).Error("Create: Repository error")
		}
		return nil, mapRepoError(err)
	}

	logCtx.WithField("usuario_id", usuario.ID).Info("Usuario created successfully")
	return usuario, nil
}

// Update 将请求中的字段合并到已有记录，重新校验全部字段后保存。
// 记录不存在时总是返回 ErrUsuarioNotFound，即使请求数据也不合法。
func (s *UsuarioService) Update(ctx context.Context, id string, in UsuarioInput) (usuario *domain.Usuario, err error) {
	ctx, span := tracer.Start(ctx, "UsuarioService.Update", trace.WithAttributes(attribute.String("usuario.id", id)))
	defer func() { endSpan(span, err) }()

	logCtx := logrus.WithField("usuario_id", id)

	// 1. 查找已有记录
	current, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUsuarioNotFound) {
			logCtx.WithError(err).Error("Update: Repository error while loading usuario")
		}
		return nil, mapRepoError(err)
	}

	// 2. 合并并校验
	merged := *current
	applyInput(&merged, in)
	if err = validateUsuario(&merged, true); err != nil {
		logCtx.WithError(err).Info("Update: Validation failed")
		return nil, err
	}

	// 3. 保存 (记录可能已被并发删除)
	usuario, err = s.usuarioRepo.Update(ctx, &merged)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) || errors.Is(err, repository.ErrUsuarioNotFound) {
			logCtx.WithError(err).Info("Update: Rejected by store")
		} else {
			logCtx.WithError(err).Error("Update: Repository error")
		}
		return nil, mapRepoError(err)
	}

	logCtx.Info("Usuario updated successfully")
	return usuario, nil
}

// Delete 物理删除记录，返回被删除记录的 ID。
func (s *UsuarioService) Delete(ctx context.Context, id string) (deletedID string, err error) {
	ctx, span := tracer.Start(ctx, "UsuarioService.Delete", trace.WithAttributes(attribute.String("usuario.id", id)))
	defer func() { endSpan(span, err) }()

	logCtx := logrus.WithField("usuario_id", id)
	if err = s.usuarioRepo.DeleteByID(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrUsuarioNotFound) {
			logCtx.WithError(err).Error("Delete: Repository error")
		}
		return "", mapRepoError(err)
	}

	logCtx.Info("Usuario deleted successfully")
	return id, nil
}

// endSpan 结束 span；只有服务端错误才标记为 Error
func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrUsuarioNotFound) && !IsValidationError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
