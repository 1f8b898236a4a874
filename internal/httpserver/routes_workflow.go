package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wovenflow/runtime/internal/dag"
	"github.com/wovenflow/runtime/internal/schema"
	"github.com/wovenflow/runtime/internal/store"
)

func (s *Server) handleSaveWorkflow(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, "failed to read request body", http.StatusBadRequest, err)
		return
	}

	var wf schema.Workflow
	if err := json.Unmarshal(body, &wf); err != nil {
		s.writeError(w, "failed to parse workflow", http.StatusBadRequest, err)
		return
	}

	graph := dag.New(wf.Nodes, wf.Edges)
	if err := graph.Validate(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "workflow failed validation: " + err.Error(),
		})
		return
	}
	if err := graph.ValidateHTTPTargets(s.engine.Config()); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := s.engine.Store().CreateWorkflow(r.Context(), &wf); err != nil {
		s.writeError(w, "failed to save workflow", http.StatusInternalServerError, err)
		return
	}

	s.logger.WithField("id", wf.ID).WithField("name", wf.Name).Info("workflow saved")
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      wf.ID,
	})
}

func (s *Server) handleLoadWorkflow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	wf, err := s.engine.Store().GetWorkflow(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, "workflow not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to load workflow", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"workflow": wf,
	})
}

func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows, err := s.engine.Store().ListWorkflows(r.Context())
	if err != nil {
		s.writeError(w, "failed to list workflows", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"workflows": workflows,
		"count":     len(workflows),
	})
}

func (s *Server) handleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.engine.Store().DeleteWorkflow(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, "workflow not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to delete workflow", http.StatusInternalServerError, err)
		return
	}
	s.logger.WithField("id", id).Info("workflow deleted")
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleValidateWorkflow(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, "failed to read request body", http.StatusBadRequest, err)
		return
	}

	var wf schema.Workflow
	if err := json.Unmarshal(body, &wf); err != nil {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	graph := dag.New(wf.Nodes, wf.Edges)
	if err := graph.Validate(); err != nil {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		})
		return
	}
	if err := graph.ValidateHTTPTargets(s.engine.Config()); err != nil {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{"valid": true})
}
