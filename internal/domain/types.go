package domain

import "time"

// Workspace is the top level of the inventory hierarchy.
type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StorageRoom belongs to exactly one workspace and is destroyed with it.
type StorageRoom struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StorageLocation is a place within a room, e.g. a box or a shelf.
type StorageLocation struct {
	ID            int64     `json:"id"`
	StorageRoomID int64     `json:"storage_room_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	LocationType  *string   `json:"location_type"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Item is a physical object stored at a location.
type Item struct {
	ID                 int64     `json:"id"`
	StorageLocationID  int64     `json:"storage_location_id"`
	Description        string    `json:"description"`
	Color              *string   `json:"color"`
	Quantity           int64     `json:"quantity"`
	LocationWithinRoom *string   `json:"location_within_room"`
	ImageURL           *string   `json:"image_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SearchItem is an item annotated with the names of its ancestor chain.
type SearchItem struct {
	Item
	WorkspaceName       string `json:"workspace_name"`
	StorageRoomName     string `json:"storage_room_name"`
	StorageLocationName string `json:"storage_location_name"`
}

// User is an account that owns uploaded images. PasswordHash is the opaque
// salt:iterations:hash string produced by the credential manager and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Image is metadata for an uploaded file. The bytes live in the file store;
// only the path, size and mime type are recorded here. Images are immutable
// once stored, so there is no updated_at.
type Image struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewImage carries the fields required to record an uploaded image.
type NewImage struct {
	UserID       int64  `json:"user_id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FilePath     string `json:"file_path"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
}
