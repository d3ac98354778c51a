// ABOUTME: Tests for the exec runner: exit codes, output capture, cwd
// ABOUTME: Runs real shell commands, following the repo's test conventions

package runcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func newTestRunner() (*ExecRunner, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	return &ExecRunner{Stdout: &out, Stderr: &errBuf}, &out, &errBuf
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use a POSIX shell")
	}
}

func TestRunSuccessStreamsOutput(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	r, out, _ := newTestRunner()
	if err := r.Run(context.Background(), "", []string{"sh", "-c", "echo hello"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Errorf("stdout = %q; want %q", got, "hello")
	}
}

func TestRunNonZeroExitReturnsCommandError(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	r, _, _ := newTestRunner()
	err := r.Run(context.Background(), "", []string{"sh", "-c", "exit 3"})

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v; want *CommandError", err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d; want 3", cmdErr.ExitCode)
	}
	if !strings.Contains(cmdErr.Command, "exit 3") {
		t.Errorf("Command = %q; want it to contain the argv", cmdErr.Command)
	}
}

func TestRunUsesWorkingDirectory(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("m"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, out, _ := newTestRunner()
	if err := r.Run(context.Background(), dir, []string{"ls"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "marker.txt") {
		t.Errorf("ls output = %q; want it to list marker.txt", out.String())
	}
}

func TestRunMissingBinary(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRunner()
	err := r.Run(context.Background(), "", []string{"neuron-no-such-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		t.Errorf("got *CommandError %v; want plain start failure", cmdErr)
	}
}

func TestRunEmptyArgv(t *testing.T) {
	t.Parallel()

	r, _, _ := newTestRunner()
	if err := r.Run(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty argv")
	}
}

func TestRunStderrPassthrough(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	r, _, errBuf := newTestRunner()
	if err := r.Run(context.Background(), "", []string{"sh", "-c", "echo oops >&2"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.TrimSpace(errBuf.String()); got != "oops" {
		t.Errorf("stderr = %q; want %q", got, "oops")
	}
}
