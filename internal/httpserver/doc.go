// Package httpserver provides the HTTP API surface over internal/engine and
// internal/store. It exposes:
//   - workflow CRUD (save, load, list, delete)
//   - workflow validation and asynchronous execution by saved id
//   - execution status/stop and a websocket event stream
//   - template CRUD
//   - health and Prometheus metrics endpoints
//
// Routing is gorilla/mux rather than the teacher's bare net/http.ServeMux,
// so path-parameter extraction doesn't need hand-rolled prefix trimming.
package httpserver
