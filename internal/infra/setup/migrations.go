package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Abraham-Almonte/Conexion-DB/internal/domain"
)

// MigrateDB 创建或更新 usuarios 表 (唯一索引 idx_usuarios_email、CHECK 约束 chk_usuarios_edad)
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	if err := db.AutoMigrate(&domain.Usuario{}); err != nil {
		logrus.Errorf("Failed to auto-migrate usuarios table: %v", err)
		return fmt.Errorf("failed to migrate usuarios table: %w", err)
	}

	// 旧表可能是在没有约束的情况下创建的
	migrator := db.Migrator()
	if !migrator.HasIndex(&domain.Usuario{}, "idx_usuarios_email") {
		if err := migrator.CreateIndex(&domain.Usuario{}, "idx_usuarios_email"); err != nil {
			return fmt.Errorf("failed to create email unique index: %w", err)
		}
	}
	if !migrator.HasConstraint(&domain.Usuario{}, "chk_usuarios_edad") {
		if err := migrator.CreateConstraint(&domain.Usuario{}, "chk_usuarios_edad"); err != nil {
			// MySQL 8.0.16 之前会忽略 CHECK，服务层仍然会校验
			logrus.Warnf("Could not create edad check constraint: %v", err)
		}
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
