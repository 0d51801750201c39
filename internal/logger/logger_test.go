package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture re-initializes the package logger into a buffer and restores a
// discarding logger afterwards.
func capture(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	buf.Reset() // drop the init line
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, Config{LogLevel: "warn"})
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestSourceIsCaller(t *testing.T) {
	buf := capture(t, Config{LogLevel: "debug"})
	Debugf("where am I")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	buf := capture(t, Config{LogLevel: "debug", DisabledTags: []string{"History"}})
	DebugTagf("history", "quiet")
	DebugTagf("draw", "loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "tag=draw")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	buf := capture(t, Config{LogLevel: "debug", EnabledTags: []string{"draw"}})
	Debugf("untagged")
	DebugTagf("draw", "tagged")
	assert.NotContains(t, buf.String(), "untagged")
	assert.Contains(t, buf.String(), "tagged")
}

func TestPackageAndFileFiltering(t *testing.T) {
	buf := capture(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	assert.Empty(t, buf.String())

	buf = capture(t, Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}})
	Infof("from test file")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for name, want := range tests {
		got, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	got, ok := ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestOpenOutputStderr(t *testing.T) {
	w, err := OpenOutput("-", "medhapad")
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestOpenOutputFile(t *testing.T) {
	path := t.TempDir() + "/test.log"
	w, err := OpenOutput(path, "medhapad")
	assert.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}
