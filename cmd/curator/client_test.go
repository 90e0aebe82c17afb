package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientStatus_Success(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		ExpectGET().
		RespondJSON(StatusResponse{
			Status:  "ok",
			Version: "1.0.0",
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
}

func TestClientStatus_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusInternalServerError, "internal server error").
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClientStatus_ConnectionError(t *testing.T) {
	srv := newMockServer(t).Build()
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Status()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClientImport_SendsRequest(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/import").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var req ImportRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "/data/done", req.Path)
			require.NotNil(t, req.DryRun)
			assert.False(t, *req.DryRun)

			respondJSON(t, w, ImportResponse{
				Success:    true,
				Message:    "import complete",
				SourcePath: req.Path,
				Stats:      StatsResponse{FilesScanned: 3, SuccessfulImports: 3},
			})
		}).
		Build()
	defer srv.Close()

	dryRun := false
	client := NewClient(srv.URL)
	resp, err := client.Import(&ImportRequest{Path: "/data/done", DryRun: &dryRun})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Stats.SuccessfulImports)
}

func TestClientHistory(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/history").
		ExpectGET().
		RespondJSON(ListRunsResponse{
			Items: []RunResponse{{ID: 1, SuccessfulImports: 2}},
			Limit: 20,
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	runs, err := client.History(20)
	require.NoError(t, err)
	require.Len(t, runs.Items, 1)
	assert.Equal(t, int64(1), runs.Items[0].ID)
}

func TestClientGroups(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/groups").
		ExpectGET().
		RespondJSON([]GroupResponse{
			{ID: 1, Name: "SPARKS", Releases: 4, Successes: 4},
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	groups, err := client.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "SPARKS", groups[0].Name)
}

func TestClientRunFiles_NotFound(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusNotFound, `{"error":"Run not found","code":"NOT_FOUND"}`).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.RunFiles(999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.0 KB", formatSize(1024))
	assert.Equal(t, "1.5 MB", formatSize(1572864))
	assert.Equal(t, "2.0 GB", formatSize(2147483648))
}
