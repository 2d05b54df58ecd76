package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

type LocationStore struct {
	db *sql.DB
}

func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

func (s *LocationStore) Create(ctx context.Context, roomID int64, name string, description, locationType, imageURL *string) (*domain.StorageLocation, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO storage_locations (storage_room_id, name, description, location_type, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, roomID, name, description, locationType, imageURL, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage location: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *LocationStore) GetByID(ctx context.Context, id int64) (*domain.StorageLocation, error) {
	loc := &domain.StorageLocation{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, storage_room_id, name, description, location_type, image_url, created_at, updated_at
		FROM storage_locations WHERE id = ?
	`, id).Scan(&loc.ID, &loc.StorageRoomID, &loc.Name, &loc.Description, &loc.LocationType, &loc.ImageURL, &loc.CreatedAt, &loc.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get storage location: %w", err)
	}

	return loc, nil
}

func (s *LocationStore) ListByRoom(ctx context.Context, roomID int64) ([]*domain.StorageLocation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, storage_room_id, name, description, location_type, image_url, created_at, updated_at
		FROM storage_locations WHERE storage_room_id = ? ORDER BY id ASC
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.StorageLocation
	for rows.Next() {
		loc := &domain.StorageLocation{}
		if err := rows.Scan(&loc.ID, &loc.StorageRoomID, &loc.Name, &loc.Description, &loc.LocationType, &loc.ImageURL, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan storage location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating storage locations: %w", err)
	}

	return locations, nil
}

// Update applies the supplied fields only and refreshes updated_at. It
// returns (nil, nil) when the id does not exist.
func (s *LocationStore) Update(ctx context.Context, id int64, patch domain.StorageLocationPatch) (*domain.StorageLocation, error) {
	assignments, args := []string{}, []any{}
	if patch.Name.Set {
		assignments = append(assignments, "name = ?")
		args = append(args, patch.Name.Value)
	}
	if patch.Description.Set {
		assignments = append(assignments, "description = ?")
		args = append(args, nullableString(patch.Description))
	}
	if patch.LocationType.Set {
		assignments = append(assignments, "location_type = ?")
		args = append(args, nullableString(patch.LocationType))
	}
	if patch.ImageURL.Set {
		assignments = append(assignments, "image_url = ?")
		args = append(args, nullableString(patch.ImageURL))
	}

	n, err := applyPatch(ctx, s.db, "storage_locations", id, assignments, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update storage location: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return s.GetByID(ctx, id)
}

// Delete removes the location with its items in one transaction. It returns
// false when the location does not exist.
func (s *LocationStore) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var target int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM storage_locations WHERE id = ?`, id).Scan(&target)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read storage location: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE storage_location_id = ?
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM storage_locations WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete storage location: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit cascade: %w", err)
	}
	return true, nil
}
