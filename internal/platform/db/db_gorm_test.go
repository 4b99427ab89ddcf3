package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygon_dashboard/internal/feature/auth/domain/entity"
)

// TestOpenDB_SQLiteFallback はDB_HOST未設定時にSQLiteへフォールバックすることを検証します。
func TestOpenDB_SQLiteFallback(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("RUN_MIGRATIONS", "true")

	db := OpenDB()

	require.NotNil(t, db)
	// マイグレーションによりユーザーテーブルが作成される
	assert.True(t, db.Migrator().HasTable(&entity.User{}))
}

// TestOpenDB_MigrationsSkipped はRUN_MIGRATIONS未設定時にマイグレーションを実行しないことを検証します。
func TestOpenDB_MigrationsSkipped(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("RUN_MIGRATIONS", "")

	db := OpenDB()

	require.NotNil(t, db)
	assert.False(t, db.Migrator().HasTable(&entity.User{}))
}
