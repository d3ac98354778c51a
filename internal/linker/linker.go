// ABOUTME: Artifact linking with an ordered strategy chain and fallbacks
// ABOUTME: symlink, then directory junction, then plain copy; idempotent

package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// Kind names a link strategy. It selects the entry point in the fallback
// chain, not the only strategy tried.
type Kind string

const (
	KindSymlink  Kind = "symlink"
	KindJunction Kind = "junction"
	KindCopy     Kind = "copy"
)

// Spec describes one artifact placement.
type Spec struct {
	Source string
	Target string
	Kind   Kind
}

// LinkError reports that every strategy in the chain failed.
type LinkError struct {
	Source   string
	Target   string
	Attempts []string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linking %s -> %s: %s", e.Target, e.Source, strings.Join(e.Attempts, "; "))
}

// Linker places built artifacts, degrading through the strategy chain on
// host-capability failures rather than branching on OS names.
type Linker struct {
	strategies []strategy
	warnf      func(format string, args ...any)
}

// New returns a Linker with the full symlink/junction/copy chain.
func New() *Linker {
	return &Linker{
		strategies: []strategy{symlinkStrategy{}, junctionStrategy{}, copyStrategy{}},
		warnf:      ui.Warnf,
	}
}

// Link exposes spec.Source at spec.Target. Whatever occupies the target is
// removed first, so repeated runs converge on the same end state. Only
// exhausting the whole strategy chain is an error.
func (l *Linker) Link(spec Spec) error {
	if _, err := os.Stat(spec.Source); err != nil {
		return fmt.Errorf("link source %s: %w", spec.Source, err)
	}
	if err := os.MkdirAll(filepath.Dir(spec.Target), 0o755); err != nil {
		return fmt.Errorf("creating target directory: %w", err)
	}
	if _, err := os.Lstat(spec.Target); err == nil {
		log.Debug("removing existing target %s", spec.Target)
		if err := os.RemoveAll(spec.Target); err != nil {
			return fmt.Errorf("removing existing target %s: %w", spec.Target, err)
		}
	}

	chain := l.strategies[chainStart(spec.Kind):]
	var attempts []string
	for i, s := range chain {
		if !s.available(spec.Source) {
			log.Debug("%s strategy unavailable for %s", s.name(), spec.Source)
			attempts = append(attempts, s.name()+": unavailable")
			continue
		}
		err := s.link(spec.Source, spec.Target)
		if err == nil {
			log.Debug("linked %s -> %s (%s)", spec.Target, spec.Source, s.name())
			return nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", s.name(), err))
		if i < len(chain)-1 {
			l.warnf("%s failed (%v); falling back", s.name(), err)
		}
	}
	return &LinkError{Source: spec.Source, Target: spec.Target, Attempts: attempts}
}

func chainStart(k Kind) int {
	switch k {
	case KindJunction:
		return 1
	case KindCopy:
		return 2
	default:
		return 0
	}
}
