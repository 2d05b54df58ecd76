package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

type WorkspaceStore struct {
	db *sql.DB
}

func NewWorkspaceStore(db *sql.DB) *WorkspaceStore {
	return &WorkspaceStore{db: db}
}

func (s *WorkspaceStore) Create(ctx context.Context, name string, description *string) (*domain.Workspace, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO workspaces (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)
	`, name, description, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *WorkspaceStore) GetByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	ws := &domain.Workspace{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at FROM workspaces WHERE id = ?
	`, id).Scan(&ws.ID, &ws.Name, &ws.Description, &ws.CreatedAt, &ws.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return ws, nil
}

func (s *WorkspaceStore) List(ctx context.Context) ([]*domain.Workspace, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at FROM workspaces ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*domain.Workspace
	for rows.Next() {
		ws := &domain.Workspace{}
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Description, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspaces: %w", err)
	}

	return workspaces, nil
}

// Update applies the supplied fields only and refreshes updated_at. It
// returns (nil, nil) when the id does not exist.
func (s *WorkspaceStore) Update(ctx context.Context, id int64, patch domain.WorkspacePatch) (*domain.Workspace, error) {
	assignments, args := []string{}, []any{}
	if patch.Name.Set {
		assignments = append(assignments, "name = ?")
		args = append(args, patch.Name.Value)
	}
	if patch.Description.Set {
		assignments = append(assignments, "description = ?")
		args = append(args, nullableString(patch.Description))
	}

	n, err := applyPatch(ctx, s.db, "workspaces", id, assignments, args)
	if err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return s.GetByID(ctx, id)
}

// Delete removes the workspace together with every room, location and item
// underneath it as one transaction. It returns false when the workspace does
// not exist, including when a concurrent cascade removed it first.
func (s *WorkspaceStore) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var target int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM workspaces WHERE id = ?`, id).Scan(&target)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read workspace: %w", err)
	}

	// Bottom-up so no child row ever references a missing parent inside the
	// transaction.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE storage_location_id IN (
			SELECT l.id FROM storage_locations l
			JOIN storage_rooms r ON r.id = l.storage_room_id
			WHERE r.workspace_id = ?
		)
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM storage_locations WHERE storage_room_id IN (
			SELECT id FROM storage_rooms WHERE workspace_id = ?
		)
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete storage locations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM storage_rooms WHERE workspace_id = ?
	`, id); err != nil {
		return false, fmt.Errorf("failed to delete storage rooms: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete workspace: %w", err)
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
