// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"sponsorship_backend/internals/configs"
	database "sponsorship_backend/internals/databases"
)

// Config returns a configuration pointing at a fresh SQLite file under
// t.TempDir().
func Config(t testing.TB) *configs.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	return &configs.Config{
		DBDriver:           configs.DriverSQLite,
		DBDSN:              "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		DBLogLevel:         "silent",
		SessionSecret:      "test-secret-test-secret-test-secret",
		SessionTTL:         configs.DefaultSessionTTL,
		SessionStore:       configs.SessionStoreDB,
		SessionCleanupCron: "@every 1h",
	}
}

// Open connects to a fresh database and migrates models into it.
func Open(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()
	db, err := database.ConnectDB(Config(t))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if len(models) > 0 {
		if err := database.AutoMigrate(db, models...); err != nil {
			t.Fatalf("migrate test db: %v", err)
		}
	}
	return db
}
