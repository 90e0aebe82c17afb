// internal/api/v1/types.go
package v1

import (
	"time"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/importer"
)

// importRequest is the body of POST /import. All fields are optional;
// omitted fields fall back to the configured roots and a dry run.
type importRequest struct {
	Path       string `json:"path"`
	OutputPath string `json:"outputPath"`
	DryRun     *bool  `json:"dryRun"`
}

// importedFileResponse is the API representation of one imported file.
type importedFileResponse struct {
	OriginalPath string `json:"originalPath"`
	NewPath      string `json:"newPath"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

// groupStatsResponse is the per-group activity within one run.
type groupStatsResponse struct {
	Releases  int   `json:"releases"`
	Bytes     int64 `json:"bytes"`
	Successes int   `json:"successes"`
	Failures  int   `json:"failures"`
}

// importResponse is the response for POST /import.
type importResponse struct {
	Success         bool                          `json:"success"`
	Message         string                        `json:"message"`
	Stats           importer.Stats                `json:"stats"`
	DryRun          bool                          `json:"dryRun"`
	SourcePath      string                        `json:"sourcePath"`
	DestinationPath string                        `json:"destinationPath"`
	ImportedFiles   []importedFileResponse        `json:"importedFiles"`
	Groups          map[string]groupStatsResponse `json:"groups,omitempty"`
}

func resultToResponse(res *importer.Result) importResponse {
	resp := importResponse{
		Success:         res.Success,
		Message:         res.Message,
		Stats:           res.Stats,
		DryRun:          res.DryRun,
		SourcePath:      res.SourcePath,
		DestinationPath: res.DestinationPath,
		ImportedFiles:   make([]importedFileResponse, len(res.ImportedFiles)),
	}
	for i, f := range res.ImportedFiles {
		resp.ImportedFiles[i] = importedFileResponse(f)
	}
	if len(res.Groups) > 0 {
		resp.Groups = make(map[string]groupStatsResponse, len(res.Groups))
		for name, g := range res.Groups {
			resp.Groups[name] = groupStatsResponse(g)
		}
	}
	return resp
}

// runResponse is the API representation of a recorded run.
type runResponse struct {
	ID                int64     `json:"id"`
	SourcePath        string    `json:"sourcePath"`
	DestinationPath   string    `json:"destinationPath"`
	DryRun            bool      `json:"dryRun"`
	FilesScanned      int       `json:"filesScanned"`
	FilesAnalyzed     int       `json:"filesAnalyzed"`
	SuccessfulImports int       `json:"successfulImports"`
	FailedImports     int       `json:"failedImports"`
	SkippedFiles      int       `json:"skippedFiles"`
	TotalSize         int64     `json:"totalSize"`
	DurationMs        int64     `json:"durationMs"`
	HardlinksCreated  int       `json:"hardlinksCreated"`
	FilesCopied       int       `json:"filesCopied"`
	CreatedAt         time.Time `json:"createdAt"`
}

func runToResponse(r *analytics.Run) runResponse {
	return runResponse{
		ID:                r.ID,
		SourcePath:        r.SourcePath,
		DestinationPath:   r.DestPath,
		DryRun:            r.DryRun,
		FilesScanned:      r.FilesScanned,
		FilesAnalyzed:     r.FilesAnalyzed,
		SuccessfulImports: r.SuccessfulImports,
		FailedImports:     r.FailedImports,
		SkippedFiles:      r.SkippedFiles,
		TotalSize:         r.TotalSize,
		DurationMs:        r.DurationMs,
		HardlinksCreated:  r.HardlinksCreated,
		FilesCopied:       r.FilesCopied,
		CreatedAt:         r.CreatedAt,
	}
}

// listRunsResponse is the response for GET /history.
type listRunsResponse struct {
	Items  []runResponse `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// runFileResponse is the API representation of a recorded run file.
type runFileResponse struct {
	ID           int64  `json:"id"`
	RunID        int64  `json:"runId"`
	OriginalPath string `json:"originalPath"`
	NewPath      string `json:"newPath"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

// groupResponse is the API representation of a release group aggregate.
type groupResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Releases   int       `json:"releases"`
	TotalBytes int64     `json:"totalBytes"`
	Successes  int       `json:"successes"`
	Failures   int       `json:"failures"`
	FirstSeen  time.Time `json:"firstSeen"`
	LastSeen   time.Time `json:"lastSeen"`
}

func groupToResponse(g *analytics.Group) groupResponse {
	return groupResponse{
		ID:         g.ID,
		Name:       g.Name,
		Releases:   g.Releases,
		TotalBytes: g.TotalBytes,
		Successes:  g.Successes,
		Failures:   g.Failures,
		FirstSeen:  g.FirstSeen,
		LastSeen:   g.LastSeen,
	}
}

// eventResponse is the API representation of a persisted event.
type eventResponse struct {
	ID         int64  `json:"id"`
	EventType  string `json:"eventType"`
	EntityType string `json:"entityType"`
	EntityID   int64  `json:"entityId"`
	OccurredAt string `json:"occurredAt"`
}

// listEventsResponse is the response for GET /events.
type listEventsResponse struct {
	Items  []eventResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
