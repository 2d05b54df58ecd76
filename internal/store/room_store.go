package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

type RoomStore struct {
	db *sql.DB
}

func NewRoomStore(db *sql.DB) *RoomStore {
	return &RoomStore{db: db}
}

func (s *RoomStore) Create(ctx context.Context, workspaceID int64, name string, description *string) (*domain.StorageRoom, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO storage_rooms (workspace_id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, workspaceID, name, description, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage room: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *RoomStore) GetByID(ctx context.Context, id int64) (*domain.StorageRoom, error) {
	room := &domain.StorageRoom{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, workspace_id, name, description, created_at, updated_at
		FROM storage_rooms WHERE id = ?
	`, id).Scan(&room.ID, &room.WorkspaceID, &room.Name, &room.Description, &room.CreatedAt, &room.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get storage room: %w", err)
	}

	return room, nil
}

func (s *RoomStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]*domain.StorageRoom, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, workspace_id, name, description, created_at, updated_at
		FROM storage_rooms WHERE workspace_id = ? ORDER BY id ASC
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*domain.StorageRoom
	for rows.Next() {
		room := &domain.StorageRoom{}
		if err := rows.Scan(&room.ID, &room.WorkspaceID, &room.Name, &room.Description, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan storage room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating storage rooms: %w", err)
	}

	return rooms, nil
}

// Update applies the supplied fields only and refreshes updated_at. It
// returns (nil, nil) when the id does not exist.
func (s *RoomStore) Update(ctx context.Context, id int64, patch domain.StorageRoomPatch) (*domain.StorageRoom, error) {
	assignments, args := []string{}, []any{}
	if patch.Name.Set {
		assignments = append(assignments, "name = ?")
		args = append(args, patch.Name.Value)
	}
	if patch.Description.Set {
		assignments = append(assignments, "description = ?")
		args = append(args, nullableString(patch.Description))
	}

	n, err := applyPatch(ctx, s.db, "storage_rooms", id, assignments, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update storage room: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return s.GetByID(ctx, id)
}

// Delete removes the room with its locations and items in one transaction.
// It returns false when the room does not exist.
func (s *RoomStore) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var target int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM storage_rooms WHERE id = ?`, id).Scan(&target)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read storage room: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE storage_location_id IN (
			SELECT id FROM storage_locations WHERE storage_room_id = ?
		)
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM storage_locations WHERE storage_room_id = ?
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete storage locations: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM storage_rooms WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete storage room: %w", err)
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
