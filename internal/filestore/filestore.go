package filestore

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the backing file does not exist.
var ErrNotFound = errors.New("file not found")

// FileStore persists uploaded image bytes outside the database. Delete
// returns ErrNotFound for a missing file; callers that only need database
// consistency treat any Delete failure as best-effort.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (path string, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
