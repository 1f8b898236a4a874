package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wovenflow/runtime/internal/engine"
	"github.com/wovenflow/runtime/internal/store"
)

type executeRequest struct {
	Input interface{} `json:"input"`
}

func (s *Server) handleExecuteWorkflow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req executeRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, "failed to read request body", http.StatusBadRequest, err)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, "failed to parse request", http.StatusBadRequest, err)
			return
		}
	}

	exec, err := s.engine.ExecuteWorkflow(r.Context(), id, req.Input)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownWorkflow) {
			s.writeError(w, "workflow not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to start execution", http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"success":     true,
		"executionId": exec.ID,
		"status":      exec.Status,
	})
}

func (s *Server) handleGetExecution(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	exec, err := s.engine.Store().GetExecution(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, "execution not found", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to load execution", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"execution": exec,
	})
}

func (s *Server) handleStopExecution(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.engine.StopExecution(r.Context(), id); err != nil {
		if errors.Is(err, engine.ErrUnknownExecution) {
			s.writeError(w, "execution not found or already terminal", http.StatusNotFound, err)
			return
		}
		s.writeError(w, "failed to stop execution", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleGetExecutionLogs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	logs, err := s.engine.Store().ListLogs(r.Context(), id)
	if err != nil {
		s.writeError(w, "failed to load logs", http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"logs":    logs,
	})
}

// handleStreamExecution upgrades to a websocket and streams the execution's
// events live. Requires a WebSocketSink to have been wired into both the
// Engine's sink and this Server at construction time.
func (s *Server) handleStreamExecution(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if s.wsSink == nil {
		http.Error(w, "event streaming not configured", http.StatusNotImplemented)
		return
	}
	if err := s.wsSink.ServeExecutionStream(w, r, id); err != nil {
		s.logger.WithField("executionId", id).WithError(err).Warn("websocket stream ended with error")
	}
}
