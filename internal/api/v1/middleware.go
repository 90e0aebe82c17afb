package v1

import "net/http"

// requireEngine wraps a handler and returns 503 if no import engine is configured.
func (s *Server) requireEngine(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Engine == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Import engine not configured")
			return
		}
		next(w, r)
	}
}

// requireAnalytics wraps a handler and returns 503 if the analytics store is not configured.
func (s *Server) requireAnalytics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Analytics == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Analytics store not configured")
			return
		}
		next(w, r)
	}
}
