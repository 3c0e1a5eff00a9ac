// Package persistencetest opens throwaway databases for tests.
package persistencetest

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sft-api/backend/internal/integration/persistence"
)

// NewDB opens a private in-memory SQLite database with every model migrated.
// It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// Each connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(persistence.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
