// ABOUTME: Tests for confirmation prompts: answers, defaults, force mode
// ABOUTME: Feeds scripted replies through a strings.Reader console

package ui

import (
	"bytes"
	"strings"
	"testing"
)

func newTestConsole(force bool, input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return &Console{Force: force, In: strings.NewReader(input), Out: &out}, &out
}

func TestConfirmParsesAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"uppercase yes", "Y\n", false, true},
		{"no", "n\n", true, false},
		{"no word", "no\n", true, false},
		{"empty takes default true", "\n", true, true},
		{"empty takes default false", "\n", false, false},
		{"garbage takes default", "maybe\n", false, false},
		{"eof takes default", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestConsole(false, tt.input)
			if got := c.Confirm("proceed?", tt.def, true); got != tt.want {
				t.Errorf("Confirm = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmForceReturnsForcedAnswerWithoutReading(t *testing.T) {
	t.Parallel()

	// Input that would answer "no"; force must never consume it.
	c, out := newTestConsole(true, "n\n")

	if got := c.Confirm("replace directory?", false, true); !got {
		t.Error("forced Confirm = false; want true")
	}
	if got := c.Confirm("start now?", false, false); got {
		t.Error("forced Confirm = true; want false")
	}
	if out.Len() != 0 {
		t.Errorf("force mode printed a prompt: %q", out.String())
	}
}

func TestConfirmSequentialPromptsShareReader(t *testing.T) {
	t.Parallel()

	c, _ := newTestConsole(false, "y\nn\n")

	if got := c.Confirm("first?", false, false); !got {
		t.Error("first Confirm = false; want true")
	}
	if got := c.Confirm("second?", true, false); got {
		t.Error("second Confirm = true; want false")
	}
}

func TestConfirmShowsDefaultInSuffix(t *testing.T) {
	t.Parallel()

	c, out := newTestConsole(false, "\n")
	c.Confirm("install the SDK?", true, true)

	if !strings.Contains(out.String(), "install the SDK?") {
		t.Errorf("prompt output = %q; want question text", out.String())
	}
	if !strings.Contains(out.String(), "Y/n") {
		t.Errorf("prompt output = %q; want capitalized default marker", out.String())
	}
}
