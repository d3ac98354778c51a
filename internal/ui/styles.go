// ABOUTME: Styled operator-facing output: stage banners, status lines
// ABOUTME: Wraps lipgloss styles over stdout, separate from diagnostic logs

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Out is where operator-facing output goes. Tests may swap it.
var Out io.Writer = os.Stdout

// Headerf prints a stage banner.
func Headerf(format string, args ...any) {
	fmt.Fprintln(Out, headerStyle.Render("==> "+fmt.Sprintf(format, args...)))
}

// Successf prints a green status line.
func Successf(format string, args ...any) {
	fmt.Fprintln(Out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow warning line.
func Warnf(format string, args ...any) {
	fmt.Fprintln(Out, warnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a red error line.
func Errorf(format string, args ...any) {
	fmt.Fprintln(Out, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Infof prints a plain status line.
func Infof(format string, args ...any) {
	fmt.Fprintf(Out, "%s\n", fmt.Sprintf(format, args...))
}

// Dimf prints a faint detail line.
func Dimf(format string, args ...any) {
	fmt.Fprintln(Out, dimStyle.Render(fmt.Sprintf(format, args...)))
}
