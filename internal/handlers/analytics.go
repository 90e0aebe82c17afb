// internal/handlers/analytics.go
package handlers

import (
	"context"
	"log/slog"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/events"
)

// AnalyticsHandler persists completed import runs to the analytics store.
type AnalyticsHandler struct {
	*BaseHandler
	store *analytics.Store
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(bus *events.Bus, store *analytics.Store, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler: NewBaseHandler(bus, logger),
		store:       store,
	}
}

// Name returns the handler name.
func (h *AnalyticsHandler) Name() string {
	return "analytics"
}

// Start begins processing events.
func (h *AnalyticsHandler) Start(ctx context.Context) error {
	completed := h.Bus().Subscribe(events.EventRunCompleted, 100)

	for {
		select {
		case e := <-completed:
			if e == nil {
				return nil // Channel closed
			}
			h.handleRunCompleted(e.(*events.RunCompleted))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *AnalyticsHandler) handleRunCompleted(e *events.RunCompleted) {
	run := &analytics.Run{
		SourcePath:        e.SourcePath,
		DestPath:          e.DestPath,
		DryRun:            e.DryRun,
		FilesScanned:      e.FilesScanned,
		FilesAnalyzed:     e.FilesAnalyzed,
		SuccessfulImports: e.SuccessfulImports,
		FailedImports:     e.FailedImports,
		SkippedFiles:      e.SkippedFiles,
		TotalSize:         e.TotalSize,
		DurationMs:        e.DurationMs,
		HardlinksCreated:  e.HardlinksCreated,
		FilesCopied:       e.FilesCopied,
	}

	files := make([]analytics.RunFile, 0, len(e.Files))
	for _, f := range e.Files {
		files = append(files, analytics.RunFile{
			OriginalPath: f.OriginalPath,
			NewPath:      f.NewPath,
			Size:         f.Size,
			Quality:      f.Quality,
			Hardlinked:   f.Hardlinked,
		})
	}

	// Dry runs are recorded for history but must not move group reputation.
	var groups map[string]analytics.GroupMetrics
	if !e.DryRun {
		groups = make(map[string]analytics.GroupMetrics, len(e.Groups))
		for name, g := range e.Groups {
			groups[name] = analytics.GroupMetrics{
				Releases:  g.Releases,
				Bytes:     g.Bytes,
				Successes: g.Successes,
				Failures:  g.Failures,
			}
		}
	}

	ids, err := h.store.RecordRun(run, files, groups)
	if err != nil {
		h.Logger().Error("failed to record run", "run", e.EntityID(), "error", err)
		return
	}

	h.Logger().Info("run recorded",
		"run", e.EntityID(),
		"stored_id", run.ID,
		"files", len(files),
		"groups", len(ids),
		"dry_run", e.DryRun,
	)
}
