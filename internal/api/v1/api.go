// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
)

// Config holds API server configuration.
type Config struct {
	// SourceRoot is the default import source when a request omits path.
	SourceRoot string
	// LibraryRoot is the default destination when a request omits outputPath.
	LibraryRoot string
	Version     string
}

// Server is the v1 API server.
type Server struct {
	deps   Deps
	cfg    Config
	runSeq atomic.Int64
}

// New creates a new v1 API server.
func New(deps Deps, cfg Config) *Server {
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = "/downloads"
	}
	if cfg.LibraryRoot == "" {
		cfg.LibraryRoot = "/movies"
	}
	return &Server{deps: deps, cfg: cfg}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Imports
	mux.HandleFunc("POST /api/v1/import", s.requireEngine(s.runImport))

	// History
	mux.HandleFunc("GET /api/v1/history", s.requireAnalytics(s.listHistory))
	mux.HandleFunc("GET /api/v1/history/{id}", s.requireAnalytics(s.getHistory))
	mux.HandleFunc("GET /api/v1/history/{id}/files", s.requireAnalytics(s.listHistoryFiles))

	// Release groups
	mux.HandleFunc("GET /api/v1/groups", s.requireAnalytics(s.listGroups))
	mux.HandleFunc("GET /api/v1/groups/{id}", s.requireAnalytics(s.getGroup))

	// Events
	mux.HandleFunc("GET /api/v1/events", s.listEvents)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
	})
}
