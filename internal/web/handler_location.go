package web

import (
	"net/http"

	"github.com/stashd/stashd/internal/domain"
)

type createLocationRequest struct {
	StorageRoomID int64   `json:"storage_room_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	LocationType  *string `json:"location_type"`
	ImageURL      *string `json:"image_url"`
}

func (s *Server) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	loc, err := s.inventory.CreateLocation(r.Context(), req.StorageRoomID, req.Name, req.Description, req.LocationType, req.ImageURL)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, loc)
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	roomID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	locations, err := s.inventory.ListLocations(r.Context(), roomID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if locations == nil {
		locations = []*domain.StorageLocation{}
	}
	s.writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	loc, err := s.inventory.GetLocation(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if loc == nil {
		s.writeError(w, http.StatusNotFound, "storage location not found")
		return
	}
	s.writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	var patch domain.StorageLocationPatch
	if !s.decodeJSON(w, r, &patch) {
		return
	}

	loc, err := s.inventory.UpdateLocation(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if loc == nil {
		s.writeError(w, http.StatusNotFound, "storage location not found")
		return
	}
	s.writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	deleted, err := s.inventory.DeleteLocation(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "storage location not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
