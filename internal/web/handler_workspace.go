package web

import (
	"net/http"

	"github.com/stashd/stashd/internal/domain"
)

type createWorkspaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) handleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	ws, err := s.inventory.CreateWorkspace(r.Context(), req.Name, req.Description)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, ws)
}

func (s *Server) handleListWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces, err := s.inventory.ListWorkspaces(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if workspaces == nil {
		workspaces = []*domain.Workspace{}
	}
	s.writeJSON(w, http.StatusOK, workspaces)
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid workspace id")
		return
	}

	ws, err := s.inventory.GetWorkspace(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if ws == nil {
		s.writeError(w, http.StatusNotFound, "workspace not found")
		return
	}
	s.writeJSON(w, http.StatusOK, ws)
}

func (s *Server) handleUpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid workspace id")
		return
	}

	var patch domain.WorkspacePatch
	if !s.decodeJSON(w, r, &patch) {
		return
	}

	ws, err := s.inventory.UpdateWorkspace(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if ws == nil {
		s.writeError(w, http.StatusNotFound, "workspace not found")
		return
	}
	s.writeJSON(w, http.StatusOK, ws)
}

func (s *Server) handleDeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid workspace id")
		return
	}

	deleted, err := s.inventory.DeleteWorkspace(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "workspace not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
