package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wovenflow/runtime/internal/engine"
	"github.com/wovenflow/runtime/internal/eventsink"
	"github.com/wovenflow/runtime/internal/health"
	"github.com/wovenflow/runtime/internal/logging"
)

// Config holds server configuration.
type Config struct {
	Address            string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	EnableCORS         bool
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Address:            ":8080",
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 10 * 1024 * 1024,
		EnableCORS:         true,
	}
}

// Server is the HTTP API server fronting an Engine.
type Server struct {
	config     Config
	httpServer *http.Server
	engine     *engine.Engine
	wsSink     *eventsink.WebSocketSink
	health     *health.Checker
	logger     *logging.Logger
}

// New builds a Server. wsSink may be nil, in which case the websocket
// stream endpoint responds 501 Not Implemented — callers that want
// streaming must construct an eventsink.WebSocketSink, register it with
// the Engine's sink (directly or via eventsink.Multi), and pass it here too
// so the HTTP layer can upgrade connections into it.
func New(cfg Config, eng *engine.Engine, wsSink *eventsink.WebSocketSink) *Server {
	s := &Server{
		config: cfg,
		engine: eng,
		wsSink: wsSink,
		health: health.NewChecker("wovenflow-runtime", "0.1.0"),
		logger: logging.New(logging.DefaultConfig()),
	}
	s.health.RegisterCheck("store", func(ctx context.Context) error {
		return eng.Store().Ping(ctx)
	}, 5*time.Second, true)

	router := mux.NewRouter()
	s.registerRoutes(router)

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.middlewareChain(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) registerRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.health.HTTPHandler()).Methods(http.MethodGet)
	r.HandleFunc("/health/live", s.health.LivenessHandler()).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", s.health.ReadinessHandler()).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/workflows", s.handleListWorkflows).Methods(http.MethodGet)
	api.HandleFunc("/workflows", s.handleSaveWorkflow).Methods(http.MethodPost)
	api.HandleFunc("/workflows/validate", s.handleValidateWorkflow).Methods(http.MethodPost)
	api.HandleFunc("/workflows/{id}", s.handleLoadWorkflow).Methods(http.MethodGet)
	api.HandleFunc("/workflows/{id}", s.handleDeleteWorkflow).Methods(http.MethodDelete)
	api.HandleFunc("/workflows/{id}/execute", s.handleExecuteWorkflow).Methods(http.MethodPost)

	api.HandleFunc("/executions/{id}", s.handleGetExecution).Methods(http.MethodGet)
	api.HandleFunc("/executions/{id}/stop", s.handleStopExecution).Methods(http.MethodPost)
	api.HandleFunc("/executions/{id}/logs", s.handleGetExecutionLogs).Methods(http.MethodGet)
	api.HandleFunc("/executions/{id}/stream", s.handleStreamExecution).Methods(http.MethodGet)

	api.HandleFunc("/templates", s.handleListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates", s.handleSaveTemplate).Methods(http.MethodPost)
	api.HandleFunc("/templates/{id}", s.handleGetTemplate).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}", s.handleDeleteTemplate).Methods(http.MethodDelete)
}

func (s *Server) middlewareChain(handler http.Handler) http.Handler {
	if s.config.EnableCORS {
		handler = s.corsMiddleware(handler)
	}
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)
	return handler
}

// Start runs the HTTP server until it is shut down. It always returns a
// non-nil error, mirroring net/http.Server.ListenAndServe, except that a
// clean shutdown surfaces as nil.
func (s *Server) Start() error {
	s.logger.WithField("address", s.config.Address).Info("starting http server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		s.logger.WithFields(map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": rw.statusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		}).Info("http request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithField("error", fmt.Sprintf("%v", err)).
					WithField("path", r.URL.Path).
					Error("panic recovered")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
