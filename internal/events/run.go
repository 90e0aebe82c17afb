// internal/events/run.go
package events

// EntityRun is the entity type for import run events. The entity id is a
// process-local sequence number assigned when the run is accepted.
const EntityRun = "run"

// Run event types.
const (
	EventRunStarted   = "run.started"
	EventRunCompleted = "run.completed"
	EventRunFailed    = "run.failed"
)

// RunStarted is emitted when an import run is accepted.
type RunStarted struct {
	BaseEvent
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"`
	DryRun     bool   `json:"dry_run"`
}

// FileImported is the per-file payload carried by RunCompleted.
type FileImported struct {
	OriginalPath string `json:"original_path"`
	NewPath      string `json:"new_path"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

// GroupActivity is the per-release-group aggregate carried by RunCompleted.
type GroupActivity struct {
	Releases  int   `json:"releases"`
	Bytes     int64 `json:"bytes"`
	Successes int   `json:"successes"`
	Failures  int   `json:"failures"`
}

// RunCompleted is emitted when a run finishes, including runs that had
// per-file failures. Consumers use it to persist history and group
// reputation.
type RunCompleted struct {
	BaseEvent
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"`
	DryRun     bool   `json:"dry_run"`

	FilesScanned      int   `json:"files_scanned"`
	FilesAnalyzed     int   `json:"files_analyzed"`
	SuccessfulImports int   `json:"successful_imports"`
	FailedImports     int   `json:"failed_imports"`
	SkippedFiles      int   `json:"skipped_files"`
	TotalSize         int64 `json:"total_size"`
	DurationMs        int64 `json:"duration_ms"`
	HardlinksCreated  int   `json:"hardlinks_created"`
	FilesCopied       int   `json:"files_copied"`

	Files  []FileImported           `json:"files,omitempty"`
	Groups map[string]GroupActivity `json:"groups,omitempty"`
}

// AllSucceeded reports whether every scanned file imported or was skipped.
func (e *RunCompleted) AllSucceeded() bool {
	return e.FailedImports == 0
}

// RunFailed is emitted when a run could not start (source unavailable).
type RunFailed struct {
	BaseEvent
	SourcePath string `json:"source_path"`
	Reason     string `json:"reason"`
}
