// internal/importer/plan.go
package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/curator/pkg/release"
)

// Strategy is the planned transfer method for a single file.
type Strategy int

const (
	StrategyCopy Strategy = iota
	StrategyHardlink
	StrategySkip
)

func (s Strategy) String() string {
	switch s {
	case StrategyHardlink:
		return "hardlink"
	case StrategySkip:
		return "skip"
	default:
		return "copy"
	}
}

// PlanEntry is the planned import of one source file. The planner records
// intent only; the executor re-validates before touching the filesystem.
type PlanEntry struct {
	Source      SourceFile
	Meta        *release.Info
	Quality     string
	DestDir     string // absolute
	DestName    string
	Strategy    Strategy
	SkipReason  string // set when Strategy == StrategySkip
	NeedsReview bool   // destination derived from the raw filename
}

// DestPath returns the full destination path for the entry.
func (e *PlanEntry) DestPath() string {
	return filepath.Join(e.DestDir, e.DestName)
}

// Planner builds transfer plans against a single library root.
type Planner struct {
	destRoot   string
	destDevice uint64
	existing   []string // current top-level library directories
	logger     *slog.Logger
}

// NewPlanner creates a planner for the given library root. The root device
// id is resolved from the nearest existing ancestor so hardlink eligibility
// can be decided before the root itself is created.
func NewPlanner(destRoot string, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Planner{
		destRoot:   filepath.Clean(destRoot),
		destDevice: rootDevice(destRoot),
		logger:     logger,
	}

	if entries, err := os.ReadDir(p.destRoot); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				p.existing = append(p.existing, e.Name())
			}
		}
	}

	return p
}

// Plan maps each source file to a destination and transfer strategy.
// One entry is produced per input file, in input order.
func (p *Planner) Plan(files []SourceFile) []*PlanEntry {
	entries := make([]*PlanEntry, 0, len(files))

	for _, f := range files {
		meta := release.Parse(filepath.Base(f.Path))
		quality := meta.QualityLabel()
		dir, name, review := BuildDestination(meta, quality, f.Path)
		dir = p.resolveDir(dir, meta)

		entry := &PlanEntry{
			Source:      f,
			Meta:        meta,
			Quality:     quality,
			DestDir:     filepath.Join(p.destRoot, dir),
			DestName:    name,
			NeedsReview: review,
		}

		entry.Strategy = p.decide(entry)
		entries = append(entries, entry)
	}

	return entries
}

func (p *Planner) decide(e *PlanEntry) Strategy {
	if err := ValidatePath(e.DestPath(), p.destRoot); err != nil {
		e.SkipReason = "destination outside library root"
		return StrategySkip
	}

	if info, err := os.Stat(e.DestPath()); err == nil && info.Size() == e.Source.Size {
		e.SkipReason = "already imported"
		return StrategySkip
	}

	if e.Source.Device != 0 && e.Source.Device == p.destDevice {
		return StrategyHardlink
	}
	return StrategyCopy
}

// resolveDir reuses an existing library directory when it matches the
// computed one closely (accents, punctuation, alternate articles). The year
// must agree; a near-match to a different film is worse than a duplicate
// directory.
func (p *Planner) resolveDir(dir string, meta *release.Info) string {
	if len(p.existing) == 0 {
		return dir
	}
	for _, name := range p.existing {
		if name == dir {
			return dir
		}
	}

	m := release.MatchTitle(dir, p.existing)
	if m.Confidence != release.ConfidenceHigh {
		return dir
	}
	if meta.Year > 0 && !containsYear(m.Name, meta.Year) {
		return dir
	}

	p.logger.Debug("reusing existing library directory", "computed", dir, "existing", m.Name, "score", m.Score)
	return m.Name
}

func containsYear(name string, year int) bool {
	return strings.Contains(name, fmt.Sprintf("(%d)", year))
}
