package v1

import (
	"context"
	"errors"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/events"
	"github.com/vmunix/curator/internal/importer"
)

//go:generate mockgen -source=deps.go -destination=mocks/deps.go -package=mocks

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Engine executes import runs. Satisfied by *importer.Importer.
type Engine interface {
	Run(ctx context.Context, req importer.Request) (*importer.Result, error)
}

// Deps holds the server's collaborators. Engine is required for imports;
// the rest degrade individual endpoints when nil.
type Deps struct {
	Engine    Engine
	Analytics *analytics.Store
	Bus       *events.Bus
	EventLog  *events.EventLog
}
