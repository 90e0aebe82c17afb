// internal/importer/exec.go
package importer

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"
)

// execute runs the plan with a bounded worker pool. Individual entry
// failures are recorded in the outcome slice and never abort the batch;
// only context cancellation stops the run. Outcomes are returned in plan
// order regardless of completion order.
func (im *Importer) execute(ctx context.Context, entries []*PlanEntry, dryRun bool) ([]outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)

	outcomes := make([]outcome, len(entries))
	for i, entry := range entries {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			outcomes[i] = im.executeEntry(entry, dryRun)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (im *Importer) executeEntry(e *PlanEntry, dryRun bool) outcome {
	o := outcome{entry: e}

	if e.Strategy == StrategySkip {
		o.status = outcomeSkipped
		o.skipReason = e.SkipReason
		im.logger.Debug("skipping file", "src", e.Source.Path, "reason", e.SkipReason)
		return o
	}

	if dryRun {
		o.status = outcomeSuccess
		o.hardlinked = e.Strategy == StrategyHardlink
		im.logger.Debug("dry run", "src", e.Source.Path, "dst", e.DestPath(), "strategy", e.Strategy.String())
		return o
	}

	// Re-validate: the plan may be stale by the time a worker gets here.
	dst := e.DestPath()
	if info, err := os.Stat(dst); err == nil && info.Size() == e.Source.Size {
		o.status = outcomeSkipped
		o.skipReason = "already imported"
		return o
	}

	// A directory that cannot be created (permission, a file squatting on
	// the name) makes the destination unavailable, not the import failed.
	if err := ensureDir(e.DestDir); err != nil {
		o.status = outcomeSkipped
		o.skipReason = "destination unavailable"
		im.logger.Warn("destination unavailable, skipping", "src", e.Source.Path, "dst", dst, "error", err)
		return o
	}

	if e.Strategy == StrategyHardlink {
		err := linkFile(e.Source.Path, dst)
		if err == nil {
			o.status = outcomeSuccess
			o.hardlinked = true
			im.logger.Info("imported file", "src", e.Source.Path, "dst", dst, "strategy", "hardlink")
			return o
		}
		if !isCrossDevice(err) {
			o.status = outcomeFailed
			o.err = err
			im.logger.Error("import failed", "src", e.Source.Path, "dst", dst, "error", err)
			return o
		}
		im.logger.Warn("hardlink crossed devices, copying instead", "src", e.Source.Path, "dst", dst)
	}

	if _, err := copyFile(e.Source.Path, dst); err != nil {
		o.status = outcomeFailed
		o.err = err
		im.logger.Error("import failed", "src", e.Source.Path, "dst", dst, "error", err)
		return o
	}

	o.status = outcomeSuccess
	im.logger.Info("imported file", "src", e.Source.Path, "dst", dst, "strategy", "copy")
	return o
}
