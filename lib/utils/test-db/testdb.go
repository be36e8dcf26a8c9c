// Package testdb поднимает in-memory SQLite с теми же миграциями, что и основная БД.
// Используется только из тестов.
package testdb

import (
	"testing"

	"nexora-hcm/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Open(sqlite.Open(":memory:?_foreign_keys=on"), false)
	require.Nil(t, err)
	sqlDB, err := conn.DB()
	require.Nil(t, err)
	// каждое новое подключение к :memory: - отдельная пустая БД, внешние ключи проверяются как в postgres
	sqlDB.SetMaxOpenConns(1)
	require.Nil(t, db.AutoMigrateDB(conn))
	t.Cleanup(func() {
		_ = db.Close(conn)
	})
	return conn
}
