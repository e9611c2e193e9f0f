package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))

	verbose := New(&buf, true)
	assert.True(t, verbose.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_WritesRecords(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("job created", "id", "42")
	assert.Contains(t, buf.String(), "job created")
	assert.Contains(t, buf.String(), "42")
}
