package domain

import "encoding/json"

// Field is a presence-aware optional value for partial updates. The zero
// value means the field was absent from the patch and must be left
// untouched. Set with Null marks an explicit null, which clears a nullable
// column and is rejected for required columns.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// FieldOf returns a Field carrying v.
func FieldOf[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// NullField returns a Field marking an explicit null.
func NullField[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON distinguishes absent keys from explicit nulls: encoding/json
// never calls this for absent keys, so Set only becomes true for keys that
// were present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// WorkspacePatch is a partial update for a workspace. Name cannot be null.
type WorkspacePatch struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
}

// StorageRoomPatch is a partial update for a storage room. Name cannot be null.
type StorageRoomPatch struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
}

// StorageLocationPatch is a partial update for a storage location. Name
// cannot be null.
type StorageLocationPatch struct {
	Name         Field[string] `json:"name"`
	Description  Field[string] `json:"description"`
	LocationType Field[string] `json:"location_type"`
	ImageURL     Field[string] `json:"image_url"`
}

// ItemPatch is a partial update for an item. Description and Quantity cannot
// be null.
type ItemPatch struct {
	Description        Field[string] `json:"description"`
	Color              Field[string] `json:"color"`
	Quantity           Field[int64]  `json:"quantity"`
	LocationWithinRoom Field[string] `json:"location_within_room"`
	ImageURL           Field[string] `json:"image_url"`
}
