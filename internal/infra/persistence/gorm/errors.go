package gormpersistence

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Abraham-Almonte/Conexion-DB/internal/repository"
)

// MySQL 错误码
const (
	mysqlErrDupEntry        = 1062
	mysqlErrDataTooLong     = 1406
	mysqlErrCheckConstraint = 3819
)

// translateError 将 GORM / MySQL 驱动错误映射为仓库层错误，其他错误原样返回
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicateEntry
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDupEntry:
			return repository.ErrDuplicateEntry
		case mysqlErrCheckConstraint:
			return repository.ErrConstraintViolation
		case mysqlErrDataTooLong:
			return &repository.ColumnError{Column: columnFromMessage(mysqlErr.Message), Err: repository.ErrValueTooLong}
		}
		return err
	}

	if isConnectionError(err) {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return err
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// columnFromMessage 从 "Data too long for column 'nombre' at row 1" 中取出列名
func columnFromMessage(msg string) string {
	const marker = "column '"
	start := strings.Index(msg, marker)
	if start < 0 {
		return ""
	}
	rest := msg[start+len(marker):]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
