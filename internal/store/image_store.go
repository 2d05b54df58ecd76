package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stashd/stashd/internal/domain"
)

type ImageStore struct {
	db *sql.DB
}

func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db}
}

func (s *ImageStore) Create(ctx context.Context, input domain.NewImage) (*domain.Image, error) {
	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO images (user_id, filename, original_name, file_path, file_size, mime_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, input.UserID, input.Filename, input.OriginalName, input.FilePath, input.FileSize, input.MimeType, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id, input.UserID)
}

// GetByID is scoped by the owning user: a mismatched user_id behaves exactly
// like a missing image.
func (s *ImageStore) GetByID(ctx context.Context, id, userID int64) (*domain.Image, error) {
	img := &domain.Image{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, filename, original_name, file_path, file_size, mime_type, created_at
		FROM images WHERE id = ? AND user_id = ?
	`, id, userID).Scan(&img.ID, &img.UserID, &img.Filename, &img.OriginalName, &img.FilePath, &img.FileSize, &img.MimeType, &img.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return img, nil
}

// ListByUser returns the user's images, newest first.
func (s *ImageStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, filename, original_name, file_path, file_size, mime_type, created_at
		FROM images WHERE user_id = ? ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []*domain.Image
	for rows.Next() {
		img := &domain.Image{}
		if err := rows.Scan(&img.ID, &img.UserID, &img.Filename, &img.OriginalName, &img.FilePath, &img.FileSize, &img.MimeType, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating images: %w", err)
	}

	return images, nil
}

// Delete removes the image row scoped by owner. It returns false when the
// image does not exist or belongs to someone else.
func (s *ImageStore) Delete(ctx context.Context, id, userID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM images WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete image: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return n > 0, nil
}
