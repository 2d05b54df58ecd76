package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRunsMigrations(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	tables := []string{
		"workspaces",
		"storage_rooms",
		"storage_locations",
		"items",
		"users",
		"images",
	}
	for _, table := range tables {
		var name string
		err := d.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

// Reopening an already migrated database is a no-op, not an error.
func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	d, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`INSERT INTO workspaces (name, created_at, updated_at) VALUES ('Garage', datetime('now'), datetime('now'))`)
	assert.NoError(t, err)
}

func TestForeignKeysEnforced(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`
		INSERT INTO storage_rooms (workspace_id, name, created_at, updated_at)
		VALUES (9999, 'Orphan', datetime('now'), datetime('now'))
	`)
	assert.Error(t, err)
}
