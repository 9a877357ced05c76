package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agbrain/config"
)

func sqliteConfig(t *testing.T) config.AppConfig {
	return config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "test.db")}
}

func TestOpenAndMigrateCreatesTables(t *testing.T) {
	db, err := OpenAndMigrate(sqliteConfig(t))
	require.NoError(t, err)
	defer Close(db)

	for _, table := range []string{"producers", "farms", "harvests", "crops"} {
		assert.True(t, db.Migrator().HasTable(table), "table %q", table)
	}
	assert.True(t, db.Migrator().HasIndex("producers", "idx_producers_document"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := sqliteConfig(t)
	for i := 0; i < 3; i++ {
		db, err := OpenAndMigrate(cfg)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, Close(db))
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.AppConfig{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestOpenPostgresNeedsDSN(t *testing.T) {
	_, err := Open(config.AppConfig{DBDriver: "postgres"})
	assert.ErrorContains(t, err, "DB_DSN")
}
