package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Sample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{MaxOpenConnections: 10}
	w := newPoolWatcher(logger, func() sql.DBStats { return current })
	w.last = current

	w.sample(context.Background())
	assert.Empty(t, buf.String(), "no waits, no log")

	current.WaitCount = 4
	current.WaitDuration = 200 * time.Millisecond
	w.sample(context.Background())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":4`)

	buf.Reset()
	current.WaitCount = 5
	current.WaitDuration = 201 * time.Millisecond
	w.sample(context.Background())
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":1`)
}

func TestPoolWatcher_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := newPoolWatcher(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), func() sql.DBStats { return sql.DBStats{} })

	done := make(chan struct{})
	go func() {
		w.run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
