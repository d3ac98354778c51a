// ABOUTME: Repository fetching: confirm-or-force replacement, then git clone
// ABOUTME: A declined replacement cancels the whole run, not just one repo

package fetch

import (
	"context"
	"fmt"
	"os"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/manifest"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/runcmd"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// UserCancelledError signals that the operator declined a destructive
// replacement; the entire pipeline aborts.
type UserCancelledError struct {
	Dir string
}

func (e *UserCancelledError) Error() string {
	return fmt.Sprintf("installation cancelled; %s left untouched", e.Dir)
}

// FetchError reports a failed clone.
type FetchError struct {
	Repo string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Repo, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher clones project repositories.
type Fetcher struct {
	Runner   runcmd.Runner
	Prompter ui.Prompter
}

// Fetch clones proj.RepoURL into dir. An existing checkout is removed first,
// after confirmation (automatic in force mode). Partial clones left behind
// by a failed git run are not cleaned up.
func (f *Fetcher) Fetch(ctx context.Context, proj manifest.Project, dir string) error {
	if _, err := os.Lstat(dir); err == nil {
		q := fmt.Sprintf("%s already exists. Remove it and clone fresh?", dir)
		if !f.Prompter.Confirm(q, false, true) {
			return &UserCancelledError{Dir: dir}
		}
		log.Info("removing existing %s", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}

	ui.Infof("cloning %s", proj.RepoURL)
	if err := f.Runner.Run(ctx, "", []string{"git", "clone", proj.RepoURL, dir}); err != nil {
		return &FetchError{Repo: proj.RepoURL, Err: err}
	}
	return nil
}
