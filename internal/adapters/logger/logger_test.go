package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/logger"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_DefaultLevelIsWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden debug")
	lg.Info("hidden info")
	assert.Empty(t, buf.String())

	lg.Warn("some warning")
	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)

	lg.Debug("resolving script")
	lg.Info("package up to date")

	g := goldie.New(t)
	g.Assert(t, "verbose", buf.Bytes())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("permission denied"),
					"failed to write package file",
				),
				"failed to render package",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "metadata on main error",
			err: zerr.With(
				zerr.Wrap(errors.New("connection refused"), "service unavailable"),
				"service", "auth-api",
			),
			goldenName: "error_metadata_main",
		},
		{
			name:       "metadata on upgraded stdlib error",
			err:        zerr.With(errors.New("disk full"), "path", "/tmp/x"),
			goldenName: "error_metadata_upgraded",
		},
		{
			name: "sorted metadata keys",
			err: func() error {
				e := zerr.New("validation failed")
				e = zerr.With(e, "zebra", "z")
				e = zerr.With(e, "alpha", "a")
				return e
			}(),
			goldenName: "error_metadata_sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("json warning")
	lg.Error(zerr.New("json error"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "json warning", rec["msg"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, map[string]any{"msg": "json error"}, rec["error"])
}

func TestLogger_SinkReceivesDebug(t *testing.T) {
	lg, console := newTestLogger(t)
	sink := &bytes.Buffer{}
	lg.SetSink(sink)

	lg.Debug("only in the file")
	lg.Warn("in both")

	assert.Equal(t, "! in both\n", console.String())

	lines := strings.Split(strings.TrimSpace(sink.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"only in the file"`)
	assert.Contains(t, lines[1], `"level":"WARN"`)
}

func TestNewFileSink(t *testing.T) {
	sink, err := logger.NewFileSink(&domain.Settings{})
	require.NoError(t, err)
	assert.Nil(t, sink)

	path := filepath.Join(t.TempDir(), "logs", "rscript.log")
	sink, err = logger.NewFileSink(&domain.Settings{LogFile: path, LogMaxSize: 1, LogMaxBackups: 2})
	require.NoError(t, err)
	require.NotNil(t, sink)
	t.Cleanup(func() { _ = sink.Close() })
	assert.NoDirExists(t, filepath.Dir(path), "the log directory is created on first write")

	lg, _ := newTestLogger(t)
	lg.SetSink(sink)
	lg.Debug("written to disk")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to disk")
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(zerr.New("inner"), "outer"), "id", 7)

	entries := logger.CollectErrorEntries(err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Error: outer (id=7)\n\n  Caused by:\n    → inner", logger.FormatErrorEntries(entries))
}
