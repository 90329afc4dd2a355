package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"ffext/internal/logging"
)

var commandContext = exec.CommandContext

// cancelGrace bounds how long the relay keeps reading after ctx is done.
// A descendant that inherited stderr could otherwise hold the pipe open.
var cancelGrace = 2 * time.Second

// Result describes a completed backend run.
type Result struct {
	// ExitCode is the backend's exit status; -1 when it was killed by a signal.
	ExitCode int           `json:"exit_code"`
	Lines    int           `json:"lines"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Success reports whether the backend exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a plan. Executor is the production implementation.
type Runner interface {
	Run(ctx context.Context, plan Plan) (Result, error)
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithRelay sets where diagnostic lines are written.
func WithRelay(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		if w != nil {
			e.relay = w
		}
	}
}

// WithStdout connects the backend's stdout to w. Without it the backend's
// stdout is discarded.
func WithStdout(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.stdout = w
	}
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Executor spawns one backend process per Run and relays its stderr.
type Executor struct {
	relay  io.Writer
	stdout io.Writer
	logger *slog.Logger
}

// NewExecutor constructs an Executor that relays diagnostics to os.Stdout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		relay:  os.Stdout,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run starts plan.Program with plan.Args and blocks until the backend's
// diagnostic stream reaches end of data. Spawn and stream failures are
// returned as errors; a nonzero exit status is only recorded in the Result.
func (e *Executor) Run(ctx context.Context, plan Plan) (Result, error) {
	program := strings.TrimSpace(plan.Program)
	if program == "" {
		return Result{}, errors.New("start backend: empty program")
	}
	logger := logging.WithContext(ctx, e.logger).With(
		logging.String(logging.FieldProgram, program),
	)

	started := time.Now()
	cmd := commandContext(ctx, program, plan.Args...) //nolint:gosec
	relay, stdout := e.writers()
	cmd.Stdout = stdout
	cmd.WaitDelay = cancelGrace
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("start %s: %w", program, err)
	}
	logger.Debug("backend started", logging.Int("pid", cmd.Process.Pid), logging.Strings("args", plan.Args))

	stop := context.AfterFunc(ctx, func() {
		time.AfterFunc(cancelGrace, func() { _ = stderr.Close() })
	})
	lines, relayErr := relayLines(stderr, relay)
	stop()
	if relayErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		result := Result{Lines: lines, ExitCode: -1, Elapsed: time.Since(started)}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("run %s: %w", program, ctxErr)
		}
		return result, fmt.Errorf("read %s diagnostics: %w", program, relayErr)
	}

	result := Result{Lines: lines}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			result.Elapsed = time.Since(started)
			return result, fmt.Errorf("wait for %s: %w", program, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Elapsed = time.Since(started)
	if ctxErr := ctx.Err(); ctxErr != nil && !result.Success() {
		return result, fmt.Errorf("run %s: %w", program, ctxErr)
	}

	logger.Debug("backend finished",
		logging.Int("exit_code", result.ExitCode),
		logging.Int("lines", result.Lines),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// writers returns the relay and stdout writers for one run. When stdout is
// not a file, os/exec copies the child's stdout from its own goroutine, so
// both writers share a lock in case they are the same underlying writer.
func (e *Executor) writers() (io.Writer, io.Writer) {
	if e.stdout == nil {
		return e.relay, nil
	}
	if _, ok := e.stdout.(*os.File); ok {
		return e.relay, e.stdout
	}
	mu := &sync.Mutex{}
	return &lockedWriter{mu: mu, w: e.relay}, &lockedWriter{mu: mu, w: e.stdout}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// relayLines copies r to w one line at a time, stripping the line
// terminator and writing each line back with a single "\n". A trailing
// line without a terminator is still relayed.
func relayLines(r io.Reader, w io.Writer) (int, error) {
	reader := bufio.NewReader(r)
	count := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if _, werr := io.WriteString(w, line+"\n"); werr != nil {
				return count, werr
			}
			count++
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}

var _ Runner = (*Executor)(nil)
