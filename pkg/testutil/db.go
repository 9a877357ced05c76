package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"agbrain/config"
	"agbrain/database"
)

// NewDB opens a migrated SQLite store in a temp dir, closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := config.AppConfig{
		Env:      "test",
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.OpenAndMigrate(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
