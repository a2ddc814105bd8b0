// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"testing"

	"github.com/propease/propease-api/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory sqlite database private to the test.
// The pool is limited to one connection because every sqlite memory
// connection is its own database. Driver errors are translated since sqlite
// has no constraint names for isDuplicateKeyError to match.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := database.Config(logger.Silent)
	cfg.TranslateError = true
	cfg.PrepareStmt = false
	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
