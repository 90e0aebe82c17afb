// internal/importer/result.go
package importer

// ImportedFile describes one successfully imported file.
type ImportedFile struct {
	OriginalPath string `json:"originalPath"`
	NewPath      string `json:"newPath"`
	Size         int64  `json:"size"`
	Quality      string `json:"quality"`
	Hardlinked   bool   `json:"hardlinked"`
}

// GroupStats aggregates run activity per release group.
type GroupStats struct {
	Releases  int
	Bytes     int64
	Successes int
	Failures  int
}

// Result is the full report of one import run. Success is false only when
// the run could not start at all; individual file failures are reflected in
// Stats and leave Success true.
type Result struct {
	Success         bool
	Message         string
	Stats           Stats
	DryRun          bool
	SourcePath      string
	DestinationPath string
	ImportedFiles   []ImportedFile
	Groups          map[string]GroupStats
}

// buildResult assembles the report from the executed outcomes.
func buildResult(req Request, outcomes []outcome, durationMs int64) *Result {
	stats := statsFromOutcomes(outcomes)
	stats.TotalDurationMs = durationMs

	r := &Result{
		Success:         true,
		Stats:           stats,
		DryRun:          req.DryRun,
		SourcePath:      req.SourcePath,
		DestinationPath: req.DestPath,
		ImportedFiles:   []ImportedFile{},
		Groups:          make(map[string]GroupStats),
	}

	for _, o := range outcomes {
		if o.status == outcomeSuccess {
			r.ImportedFiles = append(r.ImportedFiles, ImportedFile{
				OriginalPath: o.entry.Source.Path,
				NewPath:      o.entry.DestPath(),
				Size:         o.entry.Source.Size,
				Quality:      o.entry.Quality,
				Hardlinked:   o.hardlinked,
			})
		}

		group := o.entry.Meta.Group
		if group == "" {
			continue
		}
		g := r.Groups[group]
		g.Releases++
		switch o.status {
		case outcomeSuccess:
			g.Successes++
			g.Bytes += o.entry.Source.Size
		case outcomeFailed:
			g.Failures++
		case outcomeSkipped:
			g.Bytes += o.entry.Source.Size
		}
		r.Groups[group] = g
	}

	r.Message = resultMessage(stats, req.DryRun)
	return r
}

func resultMessage(s Stats, dryRun bool) string {
	switch {
	case dryRun:
		return "dry run complete"
	case s.FailedImports > 0:
		return "import completed with failures"
	default:
		return "import complete"
	}
}
