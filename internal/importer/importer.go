// Package importer turns completed downloads into a named, organized media
// library: scan the source, parse release metadata, plan hardlink/copy/skip
// per file, execute the plan, and report the outcome.
package importer

import (
	"context"
	"log/slog"
	"time"
)

const defaultWorkers = 4

// Config holds importer configuration.
type Config struct {
	Workers     int   // concurrent transfers, defaults to 4
	MinFileSize int64 // files below this are ignored during scan
}

// Request describes one import run.
type Request struct {
	SourcePath string
	DestPath   string
	DryRun     bool
}

// Importer executes import runs.
type Importer struct {
	workers     int
	minFileSize int64
	locks       *rootLocks
	logger      *slog.Logger
}

// New creates a new importer.
func New(cfg Config, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Importer{
		workers:     workers,
		minFileSize: cfg.MinFileSize,
		locks:       newRootLocks(),
		logger:      logger,
	}
}

// Run scans the source, plans transfers against the destination library,
// and executes the plan. The destination root is held exclusively for the
// duration of the run. An unreadable source yields a Result with Success
// false; per-file failures leave Success true and are counted in Stats.
// Cancellation aborts between entries and returns the context error.
func (im *Importer) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	unlock := im.locks.acquire(req.DestPath)
	defer unlock()

	im.logger.Info("import run starting",
		"source", req.SourcePath,
		"dest", req.DestPath,
		"dry_run", req.DryRun,
	)

	files, err := ScanSource(req.SourcePath, im.minFileSize)
	if err != nil {
		im.logger.Error("scan failed", "source", req.SourcePath, "error", err)
		return &Result{
			Success:         false,
			Message:         err.Error(),
			DryRun:          req.DryRun,
			SourcePath:      req.SourcePath,
			DestinationPath: req.DestPath,
			ImportedFiles:   []ImportedFile{},
			Groups:          map[string]GroupStats{},
			Stats:           Stats{TotalDurationMs: time.Since(start).Milliseconds()},
		}, nil
	}

	planner := NewPlanner(req.DestPath, im.logger)
	entries := planner.Plan(files)

	outcomes, err := im.execute(ctx, entries, req.DryRun)
	if err != nil {
		return nil, err
	}

	result := buildResult(req, outcomes, time.Since(start).Milliseconds())

	im.logger.Info("import run finished",
		"scanned", result.Stats.FilesScanned,
		"imported", result.Stats.SuccessfulImports,
		"failed", result.Stats.FailedImports,
		"skipped", result.Stats.SkippedFiles,
		"hardlinks", result.Stats.HardlinksCreated,
		"copies", result.Stats.FilesCopied,
		"duration_ms", result.Stats.TotalDurationMs,
		"dry_run", req.DryRun,
	)

	return result, nil
}
