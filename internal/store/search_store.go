package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/stashd/stashd/internal/domain"
)

// SearchStore is a read-only view over the full item hierarchy.
type SearchStore struct {
	db *sql.DB
}

func NewSearchStore(db *sql.DB) *SearchStore {
	return &SearchStore{db: db}
}

// Search returns every item whose description, color or position matches the
// query as a case-insensitive substring, or whose owning location, room or
// workspace name does. A non-nil workspaceID limits results to that
// workspace. Results are ordered by ascending item id, which is the
// documented stable order.
func (s *SearchStore) Search(ctx context.Context, query string, workspaceID *int64) ([]*domain.SearchItem, error) {
	term := strings.ToLower(query)

	q := `
		SELECT i.id, i.storage_location_id, i.description, i.color, i.quantity,
		       i.location_within_room, i.image_url, i.created_at, i.updated_at,
		       w.name, r.name, l.name
		FROM items i
		JOIN storage_locations l ON l.id = i.storage_location_id
		JOIN storage_rooms r ON r.id = l.storage_room_id
		JOIN workspaces w ON w.id = r.workspace_id
		WHERE (
			instr(lower(i.description), ?) > 0 OR
			instr(lower(coalesce(i.color, '')), ?) > 0 OR
			instr(lower(coalesce(i.location_within_room, '')), ?) > 0 OR
			instr(lower(l.name), ?) > 0 OR
			instr(lower(r.name), ?) > 0 OR
			instr(lower(w.name), ?) > 0
		)`
	args := []any{term, term, term, term, term, term}

	if workspaceID != nil {
		q += ` AND w.id = ?`
		args = append(args, *workspaceID)
	}
	q += ` ORDER BY i.id ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	var results []*domain.SearchItem
	for rows.Next() {
		res := &domain.SearchItem{}
		if err := rows.Scan(
			&res.ID, &res.StorageLocationID, &res.Description, &res.Color, &res.Quantity,
			&res.LocationWithinRoom, &res.ImageURL, &res.CreatedAt, &res.UpdatedAt,
			&res.WorkspaceName, &res.StorageRoomName, &res.StorageLocationName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}
