package repository

import "errors"

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的记录未找到 (包括格式非法的 ID)
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry 表示尝试插入或更新的数据违反了唯一约束
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrConstraintViolation 表示数据违反了 CHECK 约束
	ErrConstraintViolation = errors.New("repository: constraint violation")
	// ErrValueTooLong 表示字段值超出了列的长度
	ErrValueTooLong = errors.New("repository: value too long")
	// ErrUnavailable 表示存储不可达 (连接失败、超时)
	ErrUnavailable = errors.New("repository: store unavailable")
)

// 特定资源的错误 (基于通用错误)
var (
	ErrUsuarioNotFound = ErrNotFound
)

// ColumnError 把约束错误关联到具体的列
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return e.Err.Error() + " (column: " + e.Column + ")"
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}
