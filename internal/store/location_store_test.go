package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashd/stashd/internal/domain"
)

func TestLocationStoreCreateAndGet(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	ws, err := NewWorkspaceStore(d).Create(ctx, "Garage", nil)
	require.NoError(t, err)
	room, err := NewRoomStore(d).Create(ctx, ws.ID, "Shelf A", nil)
	require.NoError(t, err)

	store := NewLocationStore(d)
	loc, err := store.Create(ctx, room.ID, "Bin 3", strPtr("plastic bin"), strPtr("Box"), strPtr("/uploads/bin3.jpg"))
	require.NoError(t, err)
	assert.NotZero(t, loc.ID)
	assert.Equal(t, room.ID, loc.StorageRoomID)
	assert.Equal(t, "Bin 3", loc.Name)
	require.NotNil(t, loc.LocationType)
	assert.Equal(t, "Box", *loc.LocationType)
	require.NotNil(t, loc.ImageURL)
	assert.Equal(t, "/uploads/bin3.jpg", *loc.ImageURL)

	got, err := store.GetByID(ctx, loc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, loc.ID, got.ID)
}

func TestLocationStoreListByRoom(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	ws, err := NewWorkspaceStore(d).Create(ctx, "Garage", nil)
	require.NoError(t, err)
	room, err := NewRoomStore(d).Create(ctx, ws.ID, "Shelf A", nil)
	require.NoError(t, err)
	otherRoom, err := NewRoomStore(d).Create(ctx, ws.ID, "Shelf B", nil)
	require.NoError(t, err)

	store := NewLocationStore(d)
	first, err := store.Create(ctx, room.ID, "Bin 1", nil, nil, nil)
	require.NoError(t, err)
	second, err := store.Create(ctx, room.ID, "Bin 2", nil, nil, nil)
	require.NoError(t, err)
	_, err = store.Create(ctx, otherRoom.ID, "Bin 9", nil, nil, nil)
	require.NoError(t, err)

	locations, err := store.ListByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, first.ID, locations[0].ID)
	assert.Equal(t, second.ID, locations[1].ID)
}

func TestLocationStoreUpdate_NullClearsOptionalFields(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, _, loc, _ := seedTree(t, d)
	store := NewLocationStore(d)

	updated, err := store.Update(ctx, loc.ID, domain.StorageLocationPatch{
		LocationType: domain.NullField[string](),
		ImageURL:     domain.FieldOf("/uploads/new.jpg"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.LocationType)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "/uploads/new.jpg", *updated.ImageURL)
	// Name was not part of the patch.
	assert.Equal(t, loc.Name, updated.Name)
}

func TestLocationStoreUpdate_NotFound(t *testing.T) {
	d := openTestDB(t)

	updated, err := NewLocationStore(d).Update(context.Background(), 9999, domain.StorageLocationPatch{
		Name: domain.FieldOf("Nowhere"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestLocationStoreDelete_CascadesItems(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	_, room, loc, item := seedTree(t, d)

	deleted, err := NewLocationStore(d).Delete(ctx, loc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gotItem, err := NewItemStore(d).GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem)

	// The parent room survives.
	gotRoom, err := NewRoomStore(d).GetByID(ctx, room.ID)
	require.NoError(t, err)
	require.NotNil(t, gotRoom)
}

func TestLocationStoreDelete_NotFound(t *testing.T) {
	d := openTestDB(t)

	deleted, err := NewLocationStore(d).Delete(context.Background(), 9999)
	require.NoError(t, err)
	assert.False(t, deleted)
}
