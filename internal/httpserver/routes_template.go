package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wovenflow/runtime/internal/store"
)

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, "failed to read request body", http.StatusBadRequest, err)
		return
	}

	var tpl store.Template
	if err := json.Unmarshal(body, &tpl); err != nil {
		s.writeError(w, "failed to parse template", http.StatusBadRequest, err)
		return
	}

	if err := s.engine.Store().SaveTemplate(r.Context(), &tpl); err != nil {
		s.writeError(w, "failed to save template", http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      tpl.ID,
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tpl, err := s.engine.Store().GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, "template not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to load template", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"template": tpl,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	templates, err := s.engine.Store().ListTemplates(r.Context(), category)
	if err != nil {
		s.writeError(w, "failed to list templates", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"templates": templates,
		"count":     len(templates),
	})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.engine.Store().DeleteTemplate(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, "template not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to delete template", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
