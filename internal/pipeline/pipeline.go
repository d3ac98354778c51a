// ABOUTME: Sequential stage driver with explicit states and fail-fast aborts
// ABOUTME: First stage error moves the pipeline to Aborted and stops the run

package pipeline

import (
	"context"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
)

// State identifies where in the install sequence a run currently is.
type State int

const (
	StateNotStarted State = iota
	StateCheckingPrereqs
	StateFetching
	StateConfiguring
	StateInstallingDeps
	StateBuilding
	StateLinking
	StateDone
	StateAborted
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateCheckingPrereqs:
		return "checking prerequisites"
	case StateFetching:
		return "fetching repositories"
	case StateConfiguring:
		return "materializing configuration"
	case StateInstallingDeps:
		return "installing dependencies"
	case StateBuilding:
		return "building projects"
	case StateLinking:
		return "linking artifacts"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stage is one unit of installer work.
type Stage struct {
	Name  string
	State State
	Run   func(ctx context.Context) error
}

// Pipeline executes stages strictly in order, exactly once each.
type Pipeline struct {
	// OnEnter, when set, observes each stage just before it runs.
	OnEnter func(Stage)

	stages []Stage
	state  State
	reason error
}

// New returns a pipeline over the given stages.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, state: StateNotStarted}
}

// State returns the current pipeline state.
func (p *Pipeline) State() State { return p.state }

// AbortReason returns the error that aborted the run, if any.
func (p *Pipeline) AbortReason() error { return p.reason }

// Run drives the stages forward. The first error aborts the whole run and
// is returned as-is; nothing is retried or rolled back.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, st := range p.stages {
		p.state = st.State
		log.Debug("stage: %s", st.Name)
		if p.OnEnter != nil {
			p.OnEnter(st)
		}
		if err := st.Run(ctx); err != nil {
			p.state = StateAborted
			p.reason = err
			return err
		}
	}
	p.state = StateDone
	return nil
}
