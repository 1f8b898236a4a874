package httpserver

import (
	"encoding/json"
	"net/http"
)

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, message string, statusCode int, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
		s.logger.WithError(err).WithField("status_code", statusCode).Error(message)
	} else {
		s.logger.WithField("status_code", statusCode).Error(message)
	}
	s.writeJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   message,
		"details": detail,
	})
}
