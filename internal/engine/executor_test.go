package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExecutorRelaysDiagnosticLines(t *testing.T) {
	captured := setHelperCommand(t, "lines")

	var relay, stdout bytes.Buffer
	executor := NewExecutor(WithRelay(&relay), WithStdout(&stdout))
	plan := Plan{Program: "ffmpeg", Args: []string{"-hide_banner", "-vf", "scale=-1:-1"}}

	result, err := executor.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if captured.name != "ffmpeg" {
		t.Fatalf("expected program ffmpeg, got %q", captured.name)
	}
	if !reflect.DeepEqual(captured.args, plan.Args) {
		t.Fatalf("expected args passed through unchanged, got %q", captured.args)
	}
	want := "frame=1\nwindows line\n\nlast line\n"
	if relay.String() != want {
		t.Fatalf("unexpected relay output:\n got %q\nwant %q", relay.String(), want)
	}
	if result.Lines != 4 {
		t.Fatalf("expected 4 relayed lines, got %d", result.Lines)
	}
	if result.ExitCode != 0 || !result.Success() {
		t.Fatalf("expected clean exit, got %+v", result)
	}
	if stdout.String() != "stdout payload\n" {
		t.Fatalf("expected stdout to reach configured writer, got %q", stdout.String())
	}
	if strings.Contains(relay.String(), "stdout payload") {
		t.Fatal("stdout must not be mixed into the diagnostic relay")
	}
}

func TestExecutorSharedWriter(t *testing.T) {
	setHelperCommand(t, "lines")

	var out bytes.Buffer
	result, err := NewExecutor(WithRelay(&out), WithStdout(&out)).Run(context.Background(), Plan{Program: "ffmpeg"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Lines != 4 {
		t.Fatalf("expected 4 relayed lines, got %d", result.Lines)
	}
	got := out.String()
	for _, line := range []string{"stdout payload\n", "frame=1\n", "windows line\n", "last line\n"} {
		if !strings.Contains(got, line) {
			t.Fatalf("expected %q in shared output, got %q", line, got)
		}
	}
	if want := len("stdout payload\n") + len("frame=1\nwindows line\n\nlast line\n"); len(got) != want {
		t.Fatalf("expected %d bytes in shared output, got %d: %q", want, len(got), got)
	}
}

func TestExecutorCancelWithInheritedStderr(t *testing.T) {
	setHelperCommand(t, "orphan")
	original := cancelGrace
	cancelGrace = 100 * time.Millisecond
	t.Cleanup(func() { cancelGrace = original })

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var relay bytes.Buffer
	started := time.Now()
	_, err := NewExecutor(WithRelay(&relay)).Run(ctx, Plan{Program: "ffmpeg"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if elapsed := time.Since(started); elapsed > 5*time.Second {
		t.Fatalf("relay kept reading after cancellation for %s", elapsed)
	}
	if !strings.HasPrefix(relay.String(), "frame=1\n") {
		t.Fatalf("expected lines before cancellation to be relayed, got %q", relay.String())
	}
}

func TestExecutorNonzeroExitIsNotAnError(t *testing.T) {
	setHelperCommand(t, "exit3")

	var relay bytes.Buffer
	result, err := NewExecutor(WithRelay(&relay)).Run(context.Background(), Plan{Program: "scenedetect"})
	if err != nil {
		t.Fatalf("expected nonzero exit to be reported in result only, got %v", err)
	}
	if result.ExitCode != 3 || result.Success() {
		t.Fatalf("expected exit code 3, got %+v", result)
	}
	if relay.String() != "fatal: bad input\n" {
		t.Fatalf("unexpected relay output %q", relay.String())
	}
}

func TestExecutorRelaysLongLines(t *testing.T) {
	setHelperCommand(t, "long")

	var relay bytes.Buffer
	result, err := NewExecutor(WithRelay(&relay)).Run(context.Background(), Plan{Program: "ffmpeg"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Lines != 1 {
		t.Fatalf("expected a single long line, got %d", result.Lines)
	}
	if relay.Len() != 200_001 {
		t.Fatalf("expected long line relayed intact, got %d bytes", relay.Len())
	}
}

func TestExecutorSpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-backend")
	var relay bytes.Buffer
	_, err := NewExecutor(WithRelay(&relay)).Run(context.Background(), Plan{Program: missing})
	if err == nil {
		t.Fatal("expected spawn failure")
	}
	if !strings.Contains(err.Error(), "start "+missing) {
		t.Fatalf("expected start error, got %v", err)
	}
	if relay.Len() != 0 {
		t.Fatalf("expected no relay output, got %q", relay.String())
	}
}

func TestExecutorSpawnFailureNotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("not a program"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := NewExecutor(WithRelay(&bytes.Buffer{})).Run(context.Background(), Plan{Program: path})
	if err == nil {
		t.Fatal("expected permission failure")
	}
}

func TestExecutorEmptyProgram(t *testing.T) {
	if _, err := NewExecutor().Run(context.Background(), Plan{Program: "  "}); err == nil {
		t.Fatal("expected error for empty program")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("relay closed") }

func TestExecutorRelayWriteFailure(t *testing.T) {
	setHelperCommand(t, "lines")

	_, err := NewExecutor(WithRelay(failingWriter{})).Run(context.Background(), Plan{Program: "ffmpeg"})
	if err == nil {
		t.Fatal("expected relay failure to propagate")
	}
	if !strings.Contains(err.Error(), "read ffmpeg diagnostics") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRelayLines(t *testing.T) {
	var out bytes.Buffer
	n, err := relayLines(strings.NewReader("a\r\nb\n\nc"), &out)
	if err != nil {
		t.Fatalf("relayLines returned error: %v", err)
	}
	if n != 4 || out.String() != "a\nb\n\nc\n" {
		t.Fatalf("unexpected relay: n=%d out=%q", n, out.String())
	}

	out.Reset()
	n, err = relayLines(strings.NewReader(""), &out)
	if err != nil || n != 0 || out.Len() != 0 {
		t.Fatalf("expected nothing relayed for empty stream, got n=%d err=%v out=%q", n, err, out.String())
	}
}

type capturedCommand struct {
	name string
	args []string
}

func setHelperCommand(t *testing.T, mode string) *capturedCommand {
	t.Helper()
	captured := &capturedCommand{}
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		captured.name = name
		captured.args = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", fmt.Sprintf("FFEXT_HELPER_MODE=%s", mode))
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
	return captured
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("FFEXT_HELPER_MODE") {
	case "lines":
		fmt.Fprint(os.Stdout, "stdout payload\n")
		fmt.Fprint(os.Stderr, "frame=1\nwindows line\r\n\nlast line")
		os.Exit(0)
	case "exit3":
		fmt.Fprintln(os.Stderr, "fatal: bad input")
		os.Exit(3)
	case "orphan":
		child := exec.Command(os.Args[0], "-test.run=TestHelperProcess")
		child.Env = append(os.Environ(), "FFEXT_HELPER_MODE=sleep")
		child.Stderr = os.Stderr
		if err := child.Start(); err != nil {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "frame=1")
		time.Sleep(30 * time.Second)
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "long":
		fmt.Fprintln(os.Stderr, strings.Repeat("x", 200_000))
		os.Exit(0)
	default:
		os.Exit(0)
	}
}
