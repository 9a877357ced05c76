package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agbrain/config"
	"agbrain/database"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "agbrain", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "migrate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"port", "log-mode"} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "", f.DefValue)
	}
}

func TestMigrateCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "--log-mode", "prod"})
	require.NoError(t, cmd.Execute())

	db, err := database.Open(config.AppConfig{DBDriver: "sqlite", DBPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	for _, table := range []string{"producers", "farms", "harvests", "crops"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
