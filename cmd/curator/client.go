package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client wraps HTTP calls to the curator server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new curator API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute, // live imports move real data
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ImportRequest struct {
	Path       string `json:"path,omitempty"`
	OutputPath string `json:"outputPath,omitempty"`
	DryRun     *bool  `json:"dryRun,omitempty"`
}

type StatsResponse struct {
	FilesScanned      int   `json:"filesScanned"`
	FilesAnalyzed     int   `json:"filesAnalyzed"`
	SuccessfulImports int   `json:"successfulImports"`
	FailedImports     int   `json:"failedImports"`
	SkippedFiles      int   `json:"skippedFiles"`
	TotalSize         int64 `json:"totalSize"`
	TotalDurationMs   int64 `json:"totalDurationMs"`
	HardlinksCreated  int   `json:"hardlinksCreated"`
	FilesCopied       int   `json:"filesCopied"`
}

type ImportedFileResponse struct {
	OriginalPath string `json:"originalPath"`
	NewPath      string `json:"newPath"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

type GroupStatsResponse struct {
	Releases  int   `json:"releases"`
	Bytes     int64 `json:"bytes"`
	Successes int   `json:"successes"`
	Failures  int   `json:"failures"`
}

type ImportResponse struct {
	Success         bool                          `json:"success"`
	Message         string                        `json:"message"`
	Stats           StatsResponse                 `json:"stats"`
	DryRun          bool                          `json:"dryRun"`
	SourcePath      string                        `json:"sourcePath"`
	DestinationPath string                        `json:"destinationPath"`
	ImportedFiles   []ImportedFileResponse        `json:"importedFiles"`
	Groups          map[string]GroupStatsResponse `json:"groups,omitempty"`
}

type RunResponse struct {
	ID                int64  `json:"id"`
	SourcePath        string `json:"sourcePath"`
	DestinationPath   string `json:"destinationPath"`
	DryRun            bool   `json:"dryRun"`
	FilesScanned      int    `json:"filesScanned"`
	SuccessfulImports int    `json:"successfulImports"`
	FailedImports     int    `json:"failedImports"`
	SkippedFiles      int    `json:"skippedFiles"`
	TotalSize         int64  `json:"totalSize"`
	DurationMs        int64  `json:"durationMs"`
	CreatedAt         string `json:"createdAt"`
}

type ListRunsResponse struct {
	Items  []RunResponse `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type RunFileResponse struct {
	ID           int64  `json:"id"`
	RunID        int64  `json:"runId"`
	OriginalPath string `json:"originalPath"`
	NewPath      string `json:"newPath"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

type GroupResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Releases   int    `json:"releases"`
	TotalBytes int64  `json:"totalBytes"`
	Successes  int    `json:"successes"`
	Failures   int    `json:"failures"`
	FirstSeen  string `json:"firstSeen"`
	LastSeen   string `json:"lastSeen"`
}

type EventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"eventType"`
	EntityType string `json:"entityType"`
	EntityID   int64  `json:"entityId"`
	OccurredAt string `json:"occurredAt"`
}

type ListEventsResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Import(req *ImportRequest) (*ImportResponse, error) {
	var resp ImportResponse
	if err := c.post("/api/v1/import", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) History(limit int) (*ListRunsResponse, error) {
	var resp ListRunsResponse
	if err := c.get(fmt.Sprintf("/api/v1/history?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Run(id int64) (*RunResponse, error) {
	var resp RunResponse
	if err := c.get(fmt.Sprintf("/api/v1/history/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RunFiles(id int64) ([]RunFileResponse, error) {
	var resp []RunFileResponse
	if err := c.get(fmt.Sprintf("/api/v1/history/%d/files", id), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Groups() ([]GroupResponse, error) {
	var resp []GroupResponse
	if err := c.get("/api/v1/groups", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Events(limit int) (*ListEventsResponse, error) {
	var resp ListEventsResponse
	if err := c.get(fmt.Sprintf("/api/v1/events?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Output helpers

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	ago := time.Since(t)

	switch {
	case ago < time.Minute:
		return "just now"
	case ago < time.Hour:
		mins := int(ago.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case ago < 24*time.Hour:
		hours := int(ago.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	default:
		days := int(ago.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	}
}
