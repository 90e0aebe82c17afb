// internal/importer/stats.go
package importer

// Stats aggregates the outcome counters of one import run.
// FilesScanned always equals SuccessfulImports + FailedImports + SkippedFiles.
type Stats struct {
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

// outcomeStatus is the terminal state of one plan entry.
type outcomeStatus int

const (
	outcomeSuccess outcomeStatus = iota
	outcomeFailed
	outcomeSkipped
)

// outcome is the per-entry result collected by the executor.
type outcome struct {
	entry      *PlanEntry
	status     outcomeStatus
	hardlinked bool
	skipReason string
	err        error
}

// statsFromOutcomes folds per-entry outcomes into run counters.
// TotalSize accumulates over non-failed entries: a skipped file already
// occupies its bytes in the library.
func statsFromOutcomes(outcomes []outcome) Stats {
	s := Stats{
		FilesScanned:  len(outcomes),
		FilesAnalyzed: len(outcomes),
	}

	for _, o := range outcomes {
		switch o.status {
		case outcomeSuccess:
			s.SuccessfulImports++
			s.TotalSize += o.entry.Source.Size
			if o.hardlinked {
				s.HardlinksCreated++
			} else {
				s.FilesCopied++
			}
		case outcomeFailed:
			s.FailedImports++
		case outcomeSkipped:
			s.SkippedFiles++
			s.TotalSize += o.entry.Source.Size
		}
	}

	return s
}
