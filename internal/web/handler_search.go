package web

import (
	"net/http"
	"strconv"

	"github.com/stashd/stashd/internal/domain"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var workspaceID *int64
	if raw := r.URL.Query().Get("workspace_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}
		workspaceID = &id
	}

	items, err := s.inventory.Search(r.Context(), query, workspaceID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []*domain.SearchItem{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
