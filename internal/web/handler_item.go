package web

import (
	"net/http"

	"github.com/stashd/stashd/internal/domain"
	"github.com/stashd/stashd/internal/service"
)

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req service.NewItemInput
	if !s.decodeJSON(w, r, &req) {
		return
	}

	item, err := s.inventory.CreateItem(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	locationID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	items, err := s.inventory.ListItems(r.Context(), locationID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []*domain.Item{}
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := s.inventory.GetItem(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if item == nil {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var patch domain.ItemPatch
	if !s.decodeJSON(w, r, &patch) {
		return
	}

	item, err := s.inventory.UpdateItem(r.Context(), id, patch)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if item == nil {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	deleted, err := s.inventory.DeleteItem(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if !deleted {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
