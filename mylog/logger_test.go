package mylog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFormattedRecordToFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logger.log")
	cfg := testConfig(t)

	l, err := NewBuilder(cfg).Name("test").AddFile(path, FlushNone).Build()
	require.NoError(t, err)

	l.Info("main.go", 42, "starting up: %d workers", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)

	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[test]")
	assert.Contains(t, line, "[main.go:42]")
	assert.Contains(t, line, "starting up: 3 workers")
	assert.True(t, len(line) > 0 && line[len(line)-1] == '\n')
}

func TestLogger_MultipleLevelsAllReachSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.log")
	cfg := testConfig(t)

	l, err := NewBuilder(cfg).Name("levels").AddFile(path, FlushNone).Build()
	require.NoError(t, err)

	l.Debug("a.go", 1, "d")
	l.Info("a.go", 2, "i")
	l.Warn("a.go", 3, "w")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[DEBUG]")
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "[WARN]")
}

func TestLogger_CloseStopsAcceptingFurtherFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.log")
	cfg := testConfig(t)

	l, err := NewBuilder(cfg).Name("closeme").AddFile(path, FlushNone).Build()
	require.NoError(t, err)

	l.Info("a.go", 1, "before close")
	require.NoError(t, l.Close())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Pushing after Close is a best-effort no-op in ModeSafe: the AsyncWorker
	// has stopped, so Push returns without writing.
	l.Info("a.go", 2, "after close")
	time.Sleep(20 * time.Millisecond)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestBuilder_DefaultsToStdoutWhenNoSinkAdded(t *testing.T) {
	l, err := NewBuilder(testConfig(t)).Name("noop").Build()
	require.NoError(t, err)
	defer l.Close()

	assert.Len(t, l.sinks, 1)
	_, ok := l.sinks[0].(*StdoutSink)
	assert.True(t, ok)
}

func TestBuilder_PanicsOnEmptyName(t *testing.T) {
	b := NewBuilder(testConfig(t))
	b.name = ""
	assert.Panics(t, func() { b.Build() })
}
