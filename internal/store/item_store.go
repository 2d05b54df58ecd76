package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func (s *ItemStore) Create(ctx context.Context, locationID int64, description string, color *string, quantity int64, locationWithinRoom, imageURL *string) (*domain.Item, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO items (storage_location_id, description, color, quantity, location_within_room, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, locationID, description, color, quantity, locationWithinRoom, imageURL, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, storage_location_id, description, color, quantity, location_within_room, image_url, created_at, updated_at
		FROM items WHERE id = ?
	`, id).Scan(&item.ID, &item.StorageLocationID, &item.Description, &item.Color, &item.Quantity, &item.LocationWithinRoom, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (s *ItemStore) ListByLocation(ctx context.Context, locationID int64) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, storage_location_id, description, color, quantity, location_within_room, image_url, created_at, updated_at
		FROM items WHERE storage_location_id = ? ORDER BY id ASC
	`, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.StorageLocationID, &item.Description, &item.Color, &item.Quantity, &item.LocationWithinRoom, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Update applies the supplied fields only and refreshes updated_at. It
// returns (nil, nil) when the id does not exist.
func (s *ItemStore) Update(ctx context.Context, id int64, patch domain.ItemPatch) (*domain.Item, error) {
	assignments, args := []string{}, []any{}
	if patch.Description.Set {
		assignments = append(assignments, "description = ?")
		args = append(args, patch.Description.Value)
	}
	if patch.Color.Set {
		assignments = append(assignments, "color = ?")
		args = append(args, nullableString(patch.Color))
	}
	if patch.Quantity.Set {
		assignments = append(assignments, "quantity = ?")
		args = append(args, patch.Quantity.Value)
	}
	if patch.LocationWithinRoom.Set {
		assignments = append(assignments, "location_within_room = ?")
		args = append(args, nullableString(patch.LocationWithinRoom))
	}
	if patch.ImageURL.Set {
		assignments = append(assignments, "image_url = ?")
		args = append(args, nullableString(patch.ImageURL))
	}

	n, err := applyPatch(ctx, s.db, "items", id, assignments, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return s.GetByID(ctx, id)
}

// Delete removes a single item. It returns false when the id does not exist.
func (s *ItemStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return n > 0, nil
}
