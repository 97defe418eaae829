package setup

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN_AppliesTimeouts(t *testing.T) {
	dsn, err := BuildDSN(DBOptions{
		DSN:            "user:secret@tcp(db:3306)/formulario_db?charset=utf8mb4",
		ConnectTimeout: 5 * time.Second,
		SocketTimeout:  45 * time.Second,
	})
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "formulario_db", cfg.DBName)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 45*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.WriteTimeout)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
}

func TestBuildDSN_Invalid(t *testing.T) {
	_, err := BuildDSN(DBOptions{DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestMigrateDB_NilConnection(t *testing.T) {
	assert.Error(t, MigrateDB(nil))
}
