// internal/api/v1/import.go
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vmunix/curator/internal/events"
	"github.com/vmunix/curator/internal/importer"
)

func (s *Server) runImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	// Omitted fields fall back to the configured roots; imports are dry
	// runs unless explicitly requested live.
	ireq := importer.Request{
		SourcePath: req.Path,
		DestPath:   req.OutputPath,
		DryRun:     true,
	}
	if ireq.SourcePath == "" {
		ireq.SourcePath = s.cfg.SourceRoot
	}
	if ireq.DestPath == "" {
		ireq.DestPath = s.cfg.LibraryRoot
	}
	if req.DryRun != nil {
		ireq.DryRun = *req.DryRun
	}

	runID := s.runSeq.Add(1)
	s.publish(r.Context(), &events.RunStarted{
		BaseEvent:  events.NewBaseEvent(events.EventRunStarted, events.EntityRun, runID),
		SourcePath: ireq.SourcePath,
		DestPath:   ireq.DestPath,
		DryRun:     ireq.DryRun,
	})

	res, err := s.deps.Engine.Run(r.Context(), ireq)
	if err != nil {
		s.publish(r.Context(), &events.RunFailed{
			BaseEvent:  events.NewBaseEvent(events.EventRunFailed, events.EntityRun, runID),
			SourcePath: ireq.SourcePath,
			Reason:     err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "IMPORT_FAILED", err.Error())
		return
	}

	if res.Success {
		s.publish(r.Context(), runCompletedEvent(runID, res))
	} else {
		s.publish(r.Context(), &events.RunFailed{
			BaseEvent:  events.NewBaseEvent(events.EventRunFailed, events.EntityRun, runID),
			SourcePath: ireq.SourcePath,
			Reason:     res.Message,
		})
	}

	writeJSON(w, http.StatusOK, resultToResponse(res))
}

func (s *Server) publish(ctx context.Context, e events.Event) {
	if s.deps.Bus == nil {
		return
	}
	_ = s.deps.Bus.Publish(ctx, e)
}

func runCompletedEvent(runID int64, res *importer.Result) *events.RunCompleted {
	e := &events.RunCompleted{
		BaseEvent:  events.NewBaseEvent(events.EventRunCompleted, events.EntityRun, runID),
		SourcePath: res.SourcePath,
		DestPath:   res.DestinationPath,
		DryRun:     res.DryRun,

		FilesScanned:      res.Stats.FilesScanned,
		FilesAnalyzed:     res.Stats.FilesAnalyzed,
		SuccessfulImports: res.Stats.SuccessfulImports,
		FailedImports:     res.Stats.FailedImports,
		SkippedFiles:      res.Stats.SkippedFiles,
		TotalSize:         res.Stats.TotalSize,
		DurationMs:        res.Stats.TotalDurationMs,
		HardlinksCreated:  res.Stats.HardlinksCreated,
		FilesCopied:       res.Stats.FilesCopied,
	}

	for _, f := range res.ImportedFiles {
		e.Files = append(e.Files, events.FileImported(f))
	}
	if len(res.Groups) > 0 {
		e.Groups = make(map[string]events.GroupActivity, len(res.Groups))
		for name, g := range res.Groups {
			e.Groups[name] = events.GroupActivity(g)
		}
	}
	return e
}
