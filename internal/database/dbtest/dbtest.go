// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/config"
	"warehouse/internal/database"
)

// Open returns a migrated in-memory SQLite database private to the test
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:      database.DriverSQLite,
		SQLitePath:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		AutoMigrate: true,
		LogLevel:    "silent",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}
