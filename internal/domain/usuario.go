package domain

import "time"

// 年龄范围 (含边界)
const (
	EdadMin = 1
	EdadMax = 120
)

// EmailMaxLen 是 email 列的长度 (字符数)，受唯一索引的键长限制
const EmailMaxLen = 191

// Usuario 表示一条用户记录。
// ID 在创建时分配 (UUID)，之后不可变；Email 保存为小写并且唯一；Telefono 原样保存。
type Usuario struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Nombre    string    `gorm:"type:text;not null" json:"nombre"`
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_usuarios_email;not null" json:"email"`
	Telefono  string    `gorm:"type:text;not null" json:"telefono"`
	Edad      int       `gorm:"not null;check:chk_usuarios_edad,edad >= 1 AND edad <= 120" json:"edad"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_usuarios_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 固定表名，避免 GORM 的复数推断
func (Usuario) TableName() string {
	return "usuarios"
}
