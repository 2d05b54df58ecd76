package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/stashd/stashd/internal/auth"
	"github.com/stashd/stashd/internal/domain"
	"github.com/stashd/stashd/internal/filestore"
	"github.com/stashd/stashd/internal/service"
)

type Server struct {
	inventory *service.InventoryService
	accounts  *service.AccountService
	tokens    *auth.TokenIssuer
	files     filestore.FileStore
	mux       *http.ServeMux
	logger    *slog.Logger
}

func NewServer(
	inventory *service.InventoryService,
	accounts *service.AccountService,
	tokens *auth.TokenIssuer,
	files filestore.FileStore,
	logger *slog.Logger,
) *Server {
	s := &Server{
		inventory: inventory,
		accounts:  accounts,
		tokens:    tokens,
		files:     files,
		mux:       http.NewServeMux(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/healthcheck", s.handleHealthcheck)

	s.mux.HandleFunc("POST /api/workspaces", s.handleCreateWorkspace)
	s.mux.HandleFunc("GET /api/workspaces", s.handleListWorkspaces)
	s.mux.HandleFunc("GET /api/workspaces/{id}", s.handleGetWorkspace)
	s.mux.HandleFunc("PATCH /api/workspaces/{id}", s.handleUpdateWorkspace)
	s.mux.HandleFunc("DELETE /api/workspaces/{id}", s.handleDeleteWorkspace)
	s.mux.HandleFunc("GET /api/workspaces/{id}/rooms", s.handleListRooms)

	s.mux.HandleFunc("POST /api/rooms", s.handleCreateRoom)
	s.mux.HandleFunc("GET /api/rooms/{id}", s.handleGetRoom)
	s.mux.HandleFunc("PATCH /api/rooms/{id}", s.handleUpdateRoom)
	s.mux.HandleFunc("DELETE /api/rooms/{id}", s.handleDeleteRoom)
	s.mux.HandleFunc("GET /api/rooms/{id}/locations", s.handleListLocations)

	s.mux.HandleFunc("POST /api/locations", s.handleCreateLocation)
	s.mux.HandleFunc("GET /api/locations/{id}", s.handleGetLocation)
	s.mux.HandleFunc("PATCH /api/locations/{id}", s.handleUpdateLocation)
	s.mux.HandleFunc("DELETE /api/locations/{id}", s.handleDeleteLocation)
	s.mux.HandleFunc("GET /api/locations/{id}/items", s.handleListItems)

	s.mux.HandleFunc("POST /api/items", s.handleCreateItem)
	s.mux.HandleFunc("GET /api/items/{id}", s.handleGetItem)
	s.mux.HandleFunc("PATCH /api/items/{id}", s.handleUpdateItem)
	s.mux.HandleFunc("DELETE /api/items/{id}", s.handleDeleteItem)

	s.mux.HandleFunc("GET /api/search", s.handleSearch)

	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Image routes derive the owning user from the verified bearer token,
	// never from a client-supplied id.
	s.mux.Handle("POST /api/images", s.requireAuth(s.handleUploadImage))
	s.mux.Handle("GET /api/images", s.requireAuth(s.handleListImages))
	s.mux.Handle("GET /api/images/{id}", s.requireAuth(s.handleGetImage))
	s.mux.Handle("DELETE /api/images/{id}", s.requireAuth(s.handleDeleteImage))
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) Handler() http.Handler {
	return s.logRequests(securityHeaders(s.mux))
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unclassified is a 500 with the detail kept out of the response.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case domain.IsDuplicate(err):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		s.writeError(w, http.StatusUnauthorized, err.Error())
	default:
		s.logger.Error("internal error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
