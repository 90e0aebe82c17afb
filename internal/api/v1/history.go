// internal/api/v1/history.go
package v1

import (
	"errors"
	"net/http"

	"github.com/vmunix/curator/internal/analytics"
)

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	if limit < 0 || offset < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", "limit and offset must be non-negative")
		return
	}

	runs, err := s.deps.Analytics.ListRuns(limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listRunsResponse{
		Items:  make([]runResponse, len(runs)),
		Limit:  limit,
		Offset: offset,
	}
	for i, run := range runs {
		resp.Items[i] = runToResponse(run)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	run, err := s.deps.Analytics.GetRun(id)
	if err != nil {
		if errors.Is(err, analytics.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Run not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, runToResponse(run))
}

func (s *Server) listHistoryFiles(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	if _, err := s.deps.Analytics.GetRun(id); err != nil {
		if errors.Is(err, analytics.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Run not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	files, err := s.deps.Analytics.ListRunFiles(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := make([]runFileResponse, len(files))
	for i, f := range files {
		resp[i] = runFileResponse{
			ID:           f.ID,
			RunID:        f.RunID,
			OriginalPath: f.OriginalPath,
			NewPath:      f.NewPath,
			Size:         f.Size,
			Quality:      f.Quality,
			Hardlinked:   f.Hardlinked,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.deps.Analytics.ListGroups()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = groupToResponse(g)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	g, err := s.deps.Analytics.GetGroup(id)
	if err != nil {
		if errors.Is(err, analytics.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Group not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, groupToResponse(g))
}
