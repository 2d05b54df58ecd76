package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stashd/stashd/internal/auth"
	"github.com/stashd/stashd/internal/db"
	"github.com/stashd/stashd/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func newTestInventoryService(t *testing.T) (*InventoryService, *sql.DB) {
	t.Helper()
	d := openTestDB(t)
	svc := NewInventoryService(
		store.NewWorkspaceStore(d),
		store.NewRoomStore(d),
		store.NewLocationStore(d),
		store.NewItemStore(d),
		store.NewSearchStore(d),
		testLogger(),
	)
	return svc, d
}

// stubFileRemover records Delete calls and can be told to fail.
type stubFileRemover struct {
	deleted []string
	err     error
}

func (s *stubFileRemover) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return s.err
}

func newTestAccountService(t *testing.T) (*AccountService, *stubFileRemover) {
	t.Helper()
	d := openTestDB(t)
	files := &stubFileRemover{}
	svc := NewAccountService(
		store.NewUserStore(d),
		store.NewImageStore(d),
		files,
		auth.NewTokenIssuer("test-secret", time.Hour),
		testLogger(),
	)
	return svc, files
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

var errDiskFull = errors.New("disk full")
