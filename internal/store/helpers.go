package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

// nullableString converts a presence-aware field into a bind value: explicit
// null clears the column, otherwise the value is written as-is.
func nullableString(f domain.Field[string]) any {
	if f.Null {
		return nil
	}
	return f.Value
}

// applyPatch runs an UPDATE with the given assignments, always refreshing
// updated_at, and returns the number of matched rows.
func applyPatch(ctx context.Context, db *sql.DB, table string, id int64, assignments []string, args []any) (int64, error) {
	assignments = append(assignments, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(assignments, ", "))
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
