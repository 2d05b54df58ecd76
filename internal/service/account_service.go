package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/stashd/stashd/internal/auth"
	"github.com/stashd/stashd/internal/domain"
	"github.com/stashd/stashd/internal/filestore"
)

const (
	minPasswordLength = 8
	minUsernameLength = 3
	maxUsernameLength = 50

	// maxImageSize is inclusive: a file of exactly 50 MiB is accepted.
	maxImageSize = 50 * 1024 * 1024
)

// allowedImageMimeTypes is the recognized set for uploads, compared after
// lowercasing.
var allowedImageMimeTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/jpg":     {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
	"image/bmp":     {},
	"image/tiff":    {},
}

// userRepository is the subset of store.UserStore that AccountService
// requires.
type userRepository interface {
	Create(ctx context.Context, email, username, passwordHash string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	FindConflict(ctx context.Context, email, username string) (*domain.User, error)
}

// imageRepository is the subset of store.ImageStore that AccountService
// requires.
type imageRepository interface {
	Create(ctx context.Context, input domain.NewImage) (*domain.Image, error)
	GetByID(ctx context.Context, id, userID int64) (*domain.Image, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Image, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// fileRemover is the slice of the file store AccountService needs for
// best-effort cleanup of deleted images.
type fileRemover interface {
	Delete(ctx context.Context, path string) error
}

// AccountService owns registration, login and the image subtree.
type AccountService struct {
	users  userRepository
	images imageRepository
	files  fileRemover
	tokens *auth.TokenIssuer
	logger *slog.Logger
}

func NewAccountService(
	users userRepository,
	images imageRepository,
	files fileRemover,
	tokens *auth.TokenIssuer,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		users:  users,
		images: images,
		files:  files,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account. Email and username collisions are
// rejected with a DuplicateError naming the colliding field; nothing is
// persisted on failure. The raw password is never stored.
func (s *AccountService) Register(ctx context.Context, email, password, username string) (*domain.User, error) {
	if !govalidator.IsEmail(email) {
		return nil, &domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(password) < minPasswordLength {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, &domain.ValidationError{Field: "username", Reason: "must be between 3 and 50 characters"}
	}

	existing, err := s.users.FindConflict(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		field := "username"
		if existing.Email == email {
			field = "email"
		}
		return nil, &domain.DuplicateError{Field: field}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, username, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password both fail with ErrInvalidCredentials so the
// caller cannot tell which one happened.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// UploadImage validates and records image metadata. The file bytes are
// assumed to be already persisted by the caller.
func (s *AccountService) UploadImage(ctx context.Context, input domain.NewImage) (*domain.Image, error) {
	if input.Filename == "" {
		return nil, &domain.ValidationError{Field: "filename", Reason: "must not be empty"}
	}
	if input.FilePath == "" {
		return nil, &domain.ValidationError{Field: "file_path", Reason: "must not be empty"}
	}
	if input.FileSize <= 0 {
		return nil, &domain.ValidationError{Field: "file_size", Reason: "must be greater than 0"}
	}
	if input.FileSize > maxImageSize {
		return nil, &domain.ValidationError{Field: "file_size", Reason: "exceeds the 50MB limit"}
	}
	if _, ok := allowedImageMimeTypes[strings.ToLower(input.MimeType)]; !ok {
		return nil, &domain.ValidationError{Field: "mime_type", Reason: "unrecognized image type"}
	}

	owner, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &domain.ValidationError{Field: "user_id", Reason: "user does not exist"}
	}

	return s.images.Create(ctx, input)
}

// ListImages returns the user's images, newest first.
func (s *AccountService) ListImages(ctx context.Context, userID int64) ([]*domain.Image, error) {
	return s.images.ListByUser(ctx, userID)
}

// GetImage is scoped by owner; a mismatch behaves like a missing image.
func (s *AccountService) GetImage(ctx context.Context, id, userID int64) (*domain.Image, error) {
	return s.images.GetByID(ctx, id, userID)
}

// DeleteImage removes the database row and attempts to remove the backing
// file. The file removal is best-effort: a failure is logged and never
// surfaces to the caller. It returns false when the image is absent or
// owned by someone else.
func (s *AccountService) DeleteImage(ctx context.Context, id, userID int64) (bool, error) {
	img, err := s.images.GetByID(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if img == nil {
		return false, nil
	}

	if err := s.files.Delete(ctx, img.FilePath); err != nil && !errors.Is(err, filestore.ErrNotFound) {
		s.logger.Error("failed to delete image file", "image_id", id, "path", img.FilePath, "error", err)
	}

	return s.images.Delete(ctx, id, userID)
}
