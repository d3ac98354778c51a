// ABOUTME: External command execution with live stdio passthrough
// ABOUTME: Non-zero exits surface as CommandError carrying the exit code

package runcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
)

// CommandError reports a command that started but exited non-zero.
type CommandError struct {
	Command  string
	Dir      string
	ExitCode int
}

func (e *CommandError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q in %s exited with status %d", e.Command, e.Dir, e.ExitCode)
}

// Runner runs external commands on behalf of pipeline stages.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs commands with output streamed straight to the operator's
// terminal. Writers are fields so tests can capture output.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes argv with dir as working directory ("" means inherit) and
// blocks until the command exits. A non-zero exit returns *CommandError;
// failing to start at all returns a wrapped error.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	rendered := strings.Join(argv, " ")
	log.Debug("running %q in %q", rendered, dir)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Command: rendered, Dir: dir, ExitCode: exitErr.ExitCode()}
	}
	return fmt.Errorf("starting %q: %w", argv[0], err)
}
