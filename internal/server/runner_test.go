package server

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/curator/internal/analytics"
	"github.com/vmunix/curator/internal/events"
	"github.com/vmunix/curator/internal/migrations"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)
	return db
}

func TestRunner_StopsOnCancel(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testLogger())
	require.NotNil(t, runner.Bus())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_DeliversToAnalytics(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = runner.Run(ctx) }()

	// Give the handlers time to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)

	err := runner.Bus().Publish(ctx, &events.RunCompleted{
		BaseEvent:         events.NewBaseEvent(events.EventRunCompleted, events.EntityRun, 1),
		SourcePath:        "/downloads",
		DestPath:          "/movies",
		FilesScanned:      1,
		SuccessfulImports: 1,
	})
	require.NoError(t, err)

	store := analytics.NewStore(db)
	require.Eventually(t, func() bool {
		runs, err := store.ListRuns(10, 0)
		return err == nil && len(runs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// The bus also persisted the event itself.
	raw, err := events.NewEventLog(db).Since(time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, events.EventRunCompleted, raw[0].EventType)
}
