// Package server wires the event-driven components behind the HTTP API.
package server

import (
	"context"
	"database/sql"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/events"
	"github.com/vmunix/curator/internal/handlers"
)

// Runner owns the event bus and the handlers consuming it.
type Runner struct {
	bus      *events.Bus
	eventLog *events.EventLog
	store    *analytics.Store
	handlers []handlers.Handler
	logger   *slog.Logger
}

// NewRunner creates the bus (persisted to the events table) and the
// standard handler set.
func NewRunner(db *sql.DB, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	eventLog := events.NewEventLog(db)
	bus := events.NewBus(eventLog, logger.With("component", "bus"))
	store := analytics.NewStore(db)

	return &Runner{
		bus:      bus,
		eventLog: eventLog,
		store:    store,
		handlers: []handlers.Handler{
			handlers.NewAnalyticsHandler(bus, store, logger.With("component", "analytics")),
		},
		logger: logger,
	}
}

// Bus returns the event bus for publishers.
func (r *Runner) Bus() *events.Bus {
	return r.bus
}

// EventLog returns the persistent event log.
func (r *Runner) EventLog() *events.EventLog {
	return r.eventLog
}

// Analytics returns the analytics store.
func (r *Runner) Analytics() *analytics.Store {
	return r.store
}

// Run starts all handlers and blocks until the context is canceled or a
// handler fails. The bus is closed on the way out.
func (r *Runner) Run(ctx context.Context) error {
	defer func() { _ = r.bus.Close() }()

	g, ctx := errgroup.WithContext(ctx)
	for _, h := range r.handlers {
		r.logger.Info("starting handler", "handler", h.Name())
		g.Go(func() error {
			return h.Start(ctx)
		})
	}

	return g.Wait()
}
