package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchStore_MatchesItemDescription(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, _, _, item := seedTree(t, d)

	results, err := NewSearchStore(d).Search(ctx, "screwdriver", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, item.ID, results[0].ID)
	assert.Equal(t, "Garage", results[0].WorkspaceName)
	assert.Equal(t, "Shelf A", results[0].StorageRoomName)
	assert.Equal(t, "Bin 3", results[0].StorageLocationName)
}

func TestSearchStore_MatchesAncestorNames(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, _, _, item := seedTree(t, d)
	store := NewSearchStore(d)

	// Workspace, room and location names all reach the items under them.
	for _, q := range []string{"garage", "shelf a", "bin 3"} {
		results, err := store.Search(ctx, q, nil)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", q)
		assert.Equal(t, item.ID, results[0].ID)
	}
}

func TestSearchStore_MatchesColorAndPosition(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, _, _, item := seedTree(t, d)
	store := NewSearchStore(d)

	results, err := store.Search(ctx, "red", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, item.ID, results[0].ID)

	results, err = store.Search(ctx, "top shelf", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, item.ID, results[0].ID)
}

func TestSearchStore_CaseInsensitive(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	seedTree(t, d)

	results, err := NewSearchStore(d).Search(ctx, "SCREWDRIVER", nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchStore_NoMatch(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	seedTree(t, d)

	results, err := NewSearchStore(d).Search(ctx, "lawnmower", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchStore_WorkspaceScope(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	ws, _, _, item := seedTree(t, d)

	// A second workspace with a matching item that must be filtered out.
	other, err := NewWorkspaceStore(d).Create(ctx, "Attic", nil)
	require.NoError(t, err)
	otherRoom, err := NewRoomStore(d).Create(ctx, other.ID, "Corner", nil)
	require.NoError(t, err)
	otherLoc, err := NewLocationStore(d).Create(ctx, otherRoom.ID, "Crate", nil, nil, nil)
	require.NoError(t, err)
	otherItem, err := NewItemStore(d).Create(ctx, otherLoc.ID, "Green Screwdriver", nil, 1, nil, nil)
	require.NoError(t, err)

	store := NewSearchStore(d)

	unscoped, err := store.Search(ctx, "screwdriver", nil)
	require.NoError(t, err)
	require.Len(t, unscoped, 2)
	// Ascending item id order.
	assert.Equal(t, item.ID, unscoped[0].ID)
	assert.Equal(t, otherItem.ID, unscoped[1].ID)

	scoped, err := store.Search(ctx, "screwdriver", &ws.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, item.ID, scoped[0].ID)
}
