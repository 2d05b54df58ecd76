package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/stashd/stashd/internal/domain"
)

// workspaceRepository is the subset of store.WorkspaceStore that
// InventoryService requires.
type workspaceRepository interface {
	Create(ctx context.Context, name string, description *string) (*domain.Workspace, error)
	GetByID(ctx context.Context, id int64) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	Update(ctx context.Context, id int64, patch domain.WorkspacePatch) (*domain.Workspace, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// roomRepository is the subset of store.RoomStore that InventoryService
// requires.
type roomRepository interface {
	Create(ctx context.Context, workspaceID int64, name string, description *string) (*domain.StorageRoom, error)
	GetByID(ctx context.Context, id int64) (*domain.StorageRoom, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]*domain.StorageRoom, error)
	Update(ctx context.Context, id int64, patch domain.StorageRoomPatch) (*domain.StorageRoom, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// locationRepository is the subset of store.LocationStore that
// InventoryService requires.
type locationRepository interface {
	Create(ctx context.Context, roomID int64, name string, description, locationType, imageURL *string) (*domain.StorageLocation, error)
	GetByID(ctx context.Context, id int64) (*domain.StorageLocation, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.StorageLocation, error)
	Update(ctx context.Context, id int64, patch domain.StorageLocationPatch) (*domain.StorageLocation, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// itemRepository is the subset of store.ItemStore that InventoryService
// requires.
type itemRepository interface {
	Create(ctx context.Context, locationID int64, description string, color *string, quantity int64, locationWithinRoom, imageURL *string) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByLocation(ctx context.Context, locationID int64) ([]*domain.Item, error)
	Update(ctx context.Context, id int64, patch domain.ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// searchRepository is the subset of store.SearchStore that InventoryService
// requires.
type searchRepository interface {
	Search(ctx context.Context, query string, workspaceID *int64) ([]*domain.SearchItem, error)
}

// InventoryService validates inputs and orchestrates the entity stores for
// the workspace hierarchy.
type InventoryService struct {
	workspaces workspaceRepository
	rooms      roomRepository
	locations  locationRepository
	items      itemRepository
	search     searchRepository
	logger     *slog.Logger
}

func NewInventoryService(
	workspaces workspaceRepository,
	rooms roomRepository,
	locations locationRepository,
	items itemRepository,
	search searchRepository,
	logger *slog.Logger,
) *InventoryService {
	return &InventoryService{
		workspaces: workspaces,
		rooms:      rooms,
		locations:  locations,
		items:      items,
		search:     search,
		logger:     logger,
	}
}

// NewItemInput carries the create parameters for an item. A nil Quantity
// defaults to 1.
type NewItemInput struct {
	StorageLocationID  int64   `json:"storage_location_id"`
	Description        string  `json:"description"`
	Color              *string `json:"color"`
	Quantity           *int64  `json:"quantity"`
	LocationWithinRoom *string `json:"location_within_room"`
	ImageURL           *string `json:"image_url"`
}

func (s *InventoryService) CreateWorkspace(ctx context.Context, name string, description *string) (*domain.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return s.workspaces.Create(ctx, name, description)
}

func (s *InventoryService) ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error) {
	return s.workspaces.List(ctx)
}

func (s *InventoryService) GetWorkspace(ctx context.Context, id int64) (*domain.Workspace, error) {
	return s.workspaces.GetByID(ctx, id)
}

func (s *InventoryService) UpdateWorkspace(ctx context.Context, id int64, patch domain.WorkspacePatch) (*domain.Workspace, error) {
	if err := requireField(patch.Name, "name"); err != nil {
		return nil, err
	}
	return s.workspaces.Update(ctx, id, patch)
}

func (s *InventoryService) DeleteWorkspace(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.workspaces.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("workspace deleted", "workspace_id", id)
	}
	return deleted, nil
}

func (s *InventoryService) CreateRoom(ctx context.Context, workspaceID int64, name string, description *string) (*domain.StorageRoom, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, &domain.ValidationError{Field: "workspace_id", Reason: "workspace does not exist"}
	}
	return s.rooms.Create(ctx, workspaceID, name, description)
}

func (s *InventoryService) ListRooms(ctx context.Context, workspaceID int64) ([]*domain.StorageRoom, error) {
	return s.rooms.ListByWorkspace(ctx, workspaceID)
}

func (s *InventoryService) GetRoom(ctx context.Context, id int64) (*domain.StorageRoom, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *InventoryService) UpdateRoom(ctx context.Context, id int64, patch domain.StorageRoomPatch) (*domain.StorageRoom, error) {
	if err := requireField(patch.Name, "name"); err != nil {
		return nil, err
	}
	return s.rooms.Update(ctx, id, patch)
}

func (s *InventoryService) DeleteRoom(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("storage room deleted", "room_id", id)
	}
	return deleted, nil
}

func (s *InventoryService) CreateLocation(ctx context.Context, roomID int64, name string, description, locationType, imageURL *string) (*domain.StorageLocation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &domain.ValidationError{Field: "storage_room_id", Reason: "storage room does not exist"}
	}
	return s.locations.Create(ctx, roomID, name, description, locationType, imageURL)
}

func (s *InventoryService) ListLocations(ctx context.Context, roomID int64) ([]*domain.StorageLocation, error) {
	return s.locations.ListByRoom(ctx, roomID)
}

func (s *InventoryService) GetLocation(ctx context.Context, id int64) (*domain.StorageLocation, error) {
	return s.locations.GetByID(ctx, id)
}

func (s *InventoryService) UpdateLocation(ctx context.Context, id int64, patch domain.StorageLocationPatch) (*domain.StorageLocation, error) {
	if err := requireField(patch.Name, "name"); err != nil {
		return nil, err
	}
	return s.locations.Update(ctx, id, patch)
}

func (s *InventoryService) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.locations.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info("storage location deleted", "location_id", id)
	}
	return deleted, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, input NewItemInput) (*domain.Item, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, &domain.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	quantity := int64(1)
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, &domain.ValidationError{Field: "quantity", Reason: "must not be negative"}
		}
		quantity = *input.Quantity
	}
	loc, err := s.locations.GetByID(ctx, input.StorageLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, &domain.ValidationError{Field: "storage_location_id", Reason: "storage location does not exist"}
	}
	return s.items.Create(ctx, input.StorageLocationID, input.Description, input.Color, quantity, input.LocationWithinRoom, input.ImageURL)
}

func (s *InventoryService) ListItems(ctx context.Context, locationID int64) ([]*domain.Item, error) {
	return s.items.ListByLocation(ctx, locationID)
}

func (s *InventoryService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id int64, patch domain.ItemPatch) (*domain.Item, error) {
	if err := requireField(patch.Description, "description"); err != nil {
		return nil, err
	}
	if patch.Quantity.Set {
		if patch.Quantity.Null {
			return nil, &domain.ValidationError{Field: "quantity", Reason: "must not be null"}
		}
		if patch.Quantity.Value < 0 {
			return nil, &domain.ValidationError{Field: "quantity", Reason: "must not be negative"}
		}
	}
	return s.items.Update(ctx, id, patch)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) (bool, error) {
	return s.items.Delete(ctx, id)
}

// Search matches the query as a case-insensitive substring against item
// fields and ancestor names. An empty or whitespace-only query is a
// validation error, not an empty result.
func (s *InventoryService) Search(ctx context.Context, query string, workspaceID *int64) ([]*domain.SearchItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Field: "query", Reason: "must not be empty"}
	}
	return s.search.Search(ctx, query, workspaceID)
}

// requireField rejects explicit nulls and empty values on required string
// fields of a patch.
func requireField(f domain.Field[string], name string) error {
	if !f.Set {
		return nil
	}
	if f.Null {
		return &domain.ValidationError{Field: name, Reason: "must not be null"}
	}
	if strings.TrimSpace(f.Value) == "" {
		return &domain.ValidationError{Field: name, Reason: "must not be empty"}
	}
	return nil
}
