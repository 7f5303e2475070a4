package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rscript/internal/adapters/shell"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T, stdout, stderr *bytes.Buffer, env ...string) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return shell.NewExecutor(log,
		shell.WithStreams(strings.NewReader(""), stdout, stderr),
		shell.WithEnviron(func() []string { return env }),
		shell.WithWaitDelay(time.Second),
	)
}

func TestExecutor_Execute_Success(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr, "PATH=/usr/bin:/bin")

	code, err := exec.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_ExitCodeSurfaced(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr, "PATH=/usr/bin:/bin")

	code, err := exec.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecutor_Execute_CommandEnvironment(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr, "PATH=/usr/bin:/bin", "RSCRIPT_SAFE_NAME=stale")

	code, err := exec.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "printf '%s|%s' \"$RSCRIPT_SAFE_NAME\" \"$RSCRIPT_PATH\""},
		Env:  []string{"RSCRIPT_SAFE_NAME=hello", "RSCRIPT_PATH=/tmp/hello.rs"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello|/tmp/hello.rs", stdout.String())
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr, "PATH=/usr/bin:/bin")
	dir := t.TempDir()

	_, err := exec.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "pwd -P"},
		Dir:  dir,
	})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(stdout.String()))
}

func TestExecutor_Execute_StartFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)

	code, err := exec.Execute(context.Background(), domain.Command{
		Name: "/nonexistent/rscript-build-tool",
	})
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.ErrorContains(t, err, domain.ErrCommandStartFailed.Error())
}

func TestExecutor_Execute_InterruptOnCancel(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr, "PATH=/usr/bin:/bin")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	code, err := exec.Execute(ctx, domain.Command{
		Name: "sh",
		Args: []string{"-c", "while true; do sleep 0.05; done"},
	})
	require.NoError(t, err)
	assert.Greater(t, code, 128)
}
