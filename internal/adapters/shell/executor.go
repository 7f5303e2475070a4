// Package shell provides the executor that runs the build tool.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay is how long a child gets to exit after an interrupt before it is killed.
const DefaultWaitDelay = 5 * time.Second

// signalExitBase is added to the signal number when the child was killed by a signal.
const signalExitBase = 128

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger    ports.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	environ   func() []string
	waitDelay time.Duration
}

// Option configures an Executor.
type Option func(*Executor)

// WithStreams replaces the standard streams handed to the child.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithEnviron replaces the base environment the command environment is merged into.
func WithEnviron(environ func() []string) Option {
	return func(e *Executor) {
		e.environ = environ
	}
}

// WithWaitDelay sets the grace period after an interrupt.
func WithWaitDelay(d time.Duration) Option {
	return func(e *Executor) {
		e.waitDelay = d
	}
}

// NewExecutor creates a new Executor wired to the process standard streams.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger:    logger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		environ:   os.Environ,
		waitDelay: DefaultWaitDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the command and waits for it to finish.
// The environment is the base environment with cmd.Env applied on top.
// Cancelling ctx interrupts the child rather than killing it outright.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // build tool is user configured
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(e.environ(), cmd.Env)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = e.waitDelay

	e.logger.Debug("exec: " + cmd.Name + " " + strings.Join(cmd.Args, " "))

	if err := c.Start(); err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.Name)
	}

	if err := c.Wait(); err != nil && c.ProcessState == nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.Name)
	}

	return exitCode(c.ProcessState), nil
}

func exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return signalExitBase + int(ws.Signal())
	}
	return 1
}

// mergeEnvironment applies overrides on top of base. Later entries win and the
// result is sorted by key.
func mergeEnvironment(base, overrides []string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	for _, list := range [][]string{base, overrides} {
		for _, entry := range list {
			k, v, ok := strings.Cut(entry, "=")
			if ok {
				envMap[k] = v
			}
		}
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
