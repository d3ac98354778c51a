// ABOUTME: Interactive yes/no prompts with force-mode short-circuiting
// ABOUTME: Detects non-TTY stdin and falls back to safe default answers

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
)

// Prompter asks yes/no questions on behalf of pipeline stages.
type Prompter interface {
	// Confirm asks question and returns the operator's answer. def is the
	// answer for an empty reply (and for non-interactive stdin); forced is
	// the predetermined answer used in force mode, where no prompt is shown.
	Confirm(question string, def, forced bool) bool
}

// Console is the interactive Prompter backed by the process terminal.
type Console struct {
	Force bool
	In    io.Reader
	Out   io.Writer

	br *bufio.Reader
}

// NewConsole returns a Console reading stdin and writing stdout.
func NewConsole(force bool) *Console {
	return &Console{Force: force, In: os.Stdin, Out: os.Stdout}
}

// Confirm implements Prompter.
func (c *Console) Confirm(question string, def, forced bool) bool {
	if c.Force {
		log.Debug("force mode: %q -> %v", question, forced)
		return forced
	}
	if !c.interactive() {
		log.Warn("stdin is not a terminal; assuming %q for: %s", answerWord(def), question)
		return def
	}

	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Fprintf(c.Out, "%s %s ", question, dimStyle.Render(suffix))

	line, err := c.reader().ReadString('\n')
	if err != nil && line == "" {
		return def
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// interactive reports whether prompts can actually be answered. Readers
// other than a file (tests, pipes wired explicitly) count as interactive.
func (c *Console) interactive() bool {
	f, ok := c.In.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *Console) reader() *bufio.Reader {
	if c.br == nil {
		c.br = bufio.NewReader(c.In)
	}
	return c.br
}

func answerWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
