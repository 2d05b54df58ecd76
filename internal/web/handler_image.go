package web

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/stashd/stashd/internal/domain"
	"github.com/stashd/stashd/internal/filestore"
)

// maxUploadBytes caps the request body a little above the 50MB image limit
// so the limit itself is enforced (with a proper error) by the service.
const maxUploadBytes = 50<<20 + 1<<20

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file field required")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	filename := uuid.NewString() + extForMime(mimeType)

	path, err := s.files.Save(r.Context(), filename, file)
	if err != nil {
		s.logger.Error("failed to save uploaded file", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	img, err := s.accounts.UploadImage(r.Context(), domain.NewImage{
		UserID:       claims.UserID,
		Filename:     filename,
		OriginalName: header.Filename,
		FilePath:     path,
		FileSize:     header.Size,
		MimeType:     mimeType,
	})
	if err != nil {
		// The metadata row was rejected; remove the orphaned file.
		if derr := s.files.Delete(r.Context(), path); derr != nil && !errors.Is(derr, filestore.ErrNotFound) {
			s.logger.Error("failed to remove rejected upload", "path", path, "error", derr)
		}
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, img)
}

func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	images, err := s.accounts.ListImages(r.Context(), claims.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if images == nil {
		images = []*domain.Image{}
	}
	s.writeJSON(w, http.StatusOK, images)
}

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	img, err := s.accounts.GetImage(r.Context(), id, claims.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if img == nil {
		s.writeError(w, http.StatusNotFound, "image not found")
		return
	}
	s.writeJSON(w, http.StatusOK, img)
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	deleted, err := s.accounts.DeleteImage(r.Context(), id, claims.UserID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "image not found or not owned by you")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func extForMime(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	default:
		return ".jpg"
	}
}
