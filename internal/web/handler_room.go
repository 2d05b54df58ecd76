package web

import (
	"net/http"

	"github.com/stashd/stashd/internal/domain"
)

type createRoomRequest struct {
	WorkspaceID int64   `json:"workspace_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	room, err := s.inventory.CreateRoom(r.Context(), req.WorkspaceID, req.Name, req.Description)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid workspace id")
		return
	}

	rooms, err := s.inventory.ListRooms(r.Context(), workspaceID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if rooms == nil {
		rooms = []*domain.StorageRoom{}
	}
	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := s.inventory.GetRoom(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if room == nil {
		s.writeError(w, http.StatusNotFound, "storage room not found")
		return
	}
	s.writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var patch domain.StorageRoomPatch
	if !s.decodeJSON(w, r, &patch) {
		return
	}

	room, err := s.inventory.UpdateRoom(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if room == nil {
		s.writeError(w, http.StatusNotFound, "storage room not found")
		return
	}
	s.writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	deleted, err := s.inventory.DeleteRoom(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "storage room not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
