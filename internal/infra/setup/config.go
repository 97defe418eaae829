package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBOptions 描述数据库连接参数
type DBOptions struct {
	DSN            string
	ConnectTimeout time.Duration // 建立连接的超时
	SocketTimeout  time.Duration // 读写超时，同时作为空闲连接的最长存活时间
	MaxOpenConns   int
	MaxIdleConns   int
}

// BuildDSN 在原始 DSN 上补全超时等驱动参数
func BuildDSN(opts DBOptions) (string, error) {
	cfg, err := mysql.ParseDSN(opts.DSN)
	if err != nil {
		return "", fmt.Errorf("invalid database DSN: %w", err)
	}
	cfg.ParseTime = true
	// UPDATE 返回匹配行数而不是实际修改行数，用于判断记录是否存在
	cfg.ClientFoundRows = true
	if opts.ConnectTimeout > 0 {
		cfg.Timeout = opts.ConnectTimeout
	}
	if opts.SocketTimeout > 0 {
		cfg.ReadTimeout = opts.SocketTimeout
		cfg.WriteTimeout = opts.SocketTimeout
	}
	return cfg.FormatDSN(), nil
}

// InitDB 初始化数据库连接并确认存储可达
func InitDB(opts DBOptions) (*gorm.DB, error) {
	dsn, err := BuildDSN(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		// 每个操作都是单条语句，不需要隐式事务
		SkipDefaultTransaction: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB() // 获取底层的 *sql.DB 对象
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.SocketTimeout > 0 {
		sqlDB.SetConnMaxIdleTime(opts.SocketTimeout)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingTimeout := opts.ConnectTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	logrus.WithFields(dsnFields(dsn)).Info("MySQL connected")
	return db, nil
}

// CloseDB 关闭底层连接池
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitRedis 初始化 Redis 连接
func InitRedis(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     20,
		MinIdleConns: 5,
		MaxConnAge:   30 * time.Minute, // 连接最大存活时间
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	logrus.WithField("addr", addr).Info("Redis connected")
	return client, nil
}

// dsnFields 提取可以安全记录到日志的 DSN 字段 (不含密码)
func dsnFields(dsn string) logrus.Fields {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return logrus.Fields{}
	}
	return logrus.Fields{"addr": cfg.Addr, "database": cfg.DBName}
}
