// internal/api/v1/api_test.go
package v1

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	_ "modernc.org/sqlite"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/api/v1/mocks"
	"github.com/vmunix/curator/internal/events"
	"github.com/vmunix/curator/internal/importer"
	"github.com/vmunix/curator/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err, "apply schema")
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupServer builds a server backed by a real store and event log, with
// the engine mocked out.
func setupServer(t *testing.T) (*Server, *mocks.MockEngine, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)

	db := setupTestDB(t)
	srv := New(Deps{
		Engine:    engine,
		Analytics: analytics.NewStore(db),
		EventLog:  events.NewEventLog(db),
	}, Config{Version: "test"})

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)
	return srv, engine, mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestImport_DefaultsToDryRun(t *testing.T) {
	_, engine, mux := setupServer(t)

	engine.EXPECT().
		Run(gomock.Any(), importer.Request{SourcePath: "/downloads", DestPath: "/movies", DryRun: true}).
		Return(&importer.Result{
			Success:         true,
			Message:         "dry run complete",
			DryRun:          true,
			SourcePath:      "/downloads",
			DestinationPath: "/movies",
			ImportedFiles:   []importer.ImportedFile{},
		}, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{}")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["dryRun"])
	assert.Equal(t, "/downloads", resp["sourcePath"])
	assert.Equal(t, "/movies", resp["destinationPath"])
}

func TestImport_EmptyBodyDefaults(t *testing.T) {
	_, engine, mux := setupServer(t)

	engine.EXPECT().
		Run(gomock.Any(), importer.Request{SourcePath: "/downloads", DestPath: "/movies", DryRun: true}).
		Return(&importer.Result{Success: true, DryRun: true}, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestImport_ExplicitRequest(t *testing.T) {
	_, engine, mux := setupServer(t)

	engine.EXPECT().
		Run(gomock.Any(), importer.Request{SourcePath: "/data/done", DestPath: "/library", DryRun: false}).
		Return(&importer.Result{
			Success:         true,
			Message:         "import complete",
			SourcePath:      "/data/done",
			DestinationPath: "/library",
			Stats:           importer.Stats{FilesScanned: 2, FilesAnalyzed: 2, SuccessfulImports: 2, TotalSize: 4096, HardlinksCreated: 2},
			ImportedFiles: []importer.ImportedFile{
				{OriginalPath: "/data/done/a.mkv", NewPath: "/library/A (2020)/A (2020) Bluray-1080p.mkv", Size: 2048, Quality: "Bluray-1080p", Hardlinked: true},
				{OriginalPath: "/data/done/b.mkv", NewPath: "/library/B (2021)/B (2021) WEBDL-720p.mkv", Size: 2048, Quality: "WEBDL-720p", Hardlinked: true},
			},
			Groups: map[string]importer.GroupStats{
				"SPARKS": {Releases: 2, Bytes: 4096, Successes: 2},
			},
		}, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import",
		`{"path": "/data/done", "outputPath": "/library", "dryRun": false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp importResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.DryRun)
	assert.Equal(t, 2, resp.Stats.SuccessfulImports)
	require.Len(t, resp.ImportedFiles, 2)
	assert.Equal(t, "Bluray-1080p", resp.ImportedFiles[0].Quality)
	require.Contains(t, resp.Groups, "SPARKS")
	assert.Equal(t, 2, resp.Groups["SPARKS"].Successes)
}

func TestImport_InvalidJSON(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport_ScanFailurePassesThrough(t *testing.T) {
	_, engine, mux := setupServer(t)

	engine.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&importer.Result{
			Success: false,
			Message: "source unavailable: stat /downloads: no such file or directory",
			DryRun:  true,
		}, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{}")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "source unavailable")
}

func TestImport_EngineError(t *testing.T) {
	_, engine, mux := setupServer(t)

	engine.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("worker pool failed"))

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{}")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "IMPORT_FAILED", resp["code"])
}

func TestImport_NoEngine(t *testing.T) {
	db := setupTestDB(t)
	srv := New(Deps{Analytics: analytics.NewStore(db)}, Config{})
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{}")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestImport_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)

	db := setupTestDB(t)
	log := events.NewEventLog(db)
	bus := events.NewBus(log, testLogger())
	t.Cleanup(func() { _ = bus.Close() })

	srv := New(Deps{Engine: engine, Bus: bus, EventLog: log}, Config{})
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)

	engine.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&importer.Result{Success: true, DryRun: true}, nil)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/import", "{}")
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := log.Since(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, events.EventRunStarted, raw[0].EventType)
	assert.Equal(t, events.EventRunCompleted, raw[1].EventType)
	assert.Equal(t, raw[0].EntityID, raw[1].EntityID)
}

func TestStatus(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}

func seedRun(t *testing.T, store *analytics.Store) *analytics.Run {
	t.Helper()
	run := &analytics.Run{
		SourcePath:        "/downloads",
		DestPath:          "/movies",
		FilesScanned:      1,
		FilesAnalyzed:     1,
		SuccessfulImports: 1,
		TotalSize:         2048,
		HardlinksCreated:  1,
	}
	files := []analytics.RunFile{{
		OriginalPath: "/downloads/f.mkv",
		NewPath:      "/movies/F (2020)/F (2020) Bluray-1080p.mkv",
		Size:         2048,
		Quality:      "Bluray-1080p",
		Hardlinked:   true,
	}}
	groups := map[string]analytics.GroupMetrics{
		"SPARKS": {Releases: 1, Bytes: 2048, Successes: 1},
	}
	_, err := store.RecordRun(run, files, groups)
	require.NoError(t, err)
	return run
}

func TestHistory_ListAndGet(t *testing.T) {
	srv, _, mux := setupServer(t)
	run := seedRun(t, srv.deps.Analytics)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list listRunsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, run.ID, list.Items[0].ID)
	assert.Equal(t, 1, list.Items[0].SuccessfulImports)

	w = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/history/%d", run.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var got runResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "/downloads", got.SourcePath)
}

func TestHistory_NotFound(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/history/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/api/v1/history/999/files", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory_InvalidID(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/history/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistoryFiles(t *testing.T) {
	srv, _, mux := setupServer(t)
	run := seedRun(t, srv.deps.Analytics)

	w := doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/history/%d/files", run.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var files []runFileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &files))
	require.Len(t, files, 1)
	assert.Equal(t, run.ID, files[0].RunID)
	assert.True(t, files[0].Hardlinked)
}

func TestGroups_ListAndGet(t *testing.T) {
	srv, _, mux := setupServer(t)
	seedRun(t, srv.deps.Analytics)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/groups", "")
	require.Equal(t, http.StatusOK, w.Code)

	var groups []groupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "SPARKS", groups[0].Name)
	assert.Equal(t, 1, groups[0].Successes)

	w = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/v1/groups/%d", groups[0].ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var g groupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, "SPARKS", g.Name)
}

func TestGroups_NotFound(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/groups/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEvents_List(t *testing.T) {
	srv, _, mux := setupServer(t)

	_, err := srv.deps.EventLog.Append(&events.RunStarted{
		BaseEvent:  events.NewBaseEvent(events.EventRunStarted, events.EntityRun, 1),
		SourcePath: "/downloads",
	})
	require.NoError(t, err)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/events?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listEventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, events.EventRunStarted, resp.Items[0].EventType)
}

func TestEvents_InvalidPagination(t *testing.T) {
	_, _, mux := setupServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/v1/events?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
