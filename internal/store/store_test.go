package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stashd/stashd/internal/db"
	"github.com/stashd/stashd/internal/domain"
)

// openTestDB opens a fresh migrated database in a per-test temp dir.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func strPtr(s string) *string {
	return &s
}

// seedTree creates workspace → room → location → item and returns all four.
func seedTree(t *testing.T, d *sql.DB) (*domain.Workspace, *domain.StorageRoom, *domain.StorageLocation, *domain.Item) {
	t.Helper()
	ctx := context.Background()

	ws, err := NewWorkspaceStore(d).Create(ctx, "Garage", strPtr("detached garage"))
	require.NoError(t, err)
	room, err := NewRoomStore(d).Create(ctx, ws.ID, "Shelf A", nil)
	require.NoError(t, err)
	loc, err := NewLocationStore(d).Create(ctx, room.ID, "Bin 3", nil, strPtr("Box"), nil)
	require.NoError(t, err)
	item, err := NewItemStore(d).Create(ctx, loc.ID, "Red Screwdriver", strPtr("red"), 5, strPtr("Top shelf"), nil)
	require.NoError(t, err)

	return ws, room, loc, item
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, d *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, d.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
