// ABOUTME: CLI entry point for the Neuron stack installer
// ABOUTME: Resolves the install plan, drives the six-stage pipeline, offers to start the app

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/manifest"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/pipeline"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/plan"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/runcmd"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// Manifest names of the optional components the skip flags control.
const (
	sdkProject          = "neuron-sdk"
	registrationProject = "neuron-registration"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("neuron-installer %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the plan, executes the pipeline, and offers to start the app.
func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	m, err := loadManifest(args.manifestPath)
	if err != nil {
		return err
	}

	prompter := ui.NewConsole(args.force)
	p, err := plan.Resolve(m, plan.Options{
		Force: args.force,
		Root:  args.dir,
		Skip:  skippedProjects(args),
	}, prompter)
	if err != nil {
		return err
	}

	ctx := context.Background()
	runner := runcmd.NewExecRunner()

	pipe := pipeline.New(buildStages(p, prompter, runner)...)
	pipe.OnEnter = func(st pipeline.Stage) {
		ui.Headerf("%s", st.State)
	}
	if err := pipe.Run(ctx); err != nil {
		return err
	}

	ui.Successf("installation complete")
	return offerStart(ctx, p, prompter, runner, args.start)
}

// loadManifest returns the user-supplied manifest or the embedded default.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.Load(path)
	}
	return manifest.Default()
}

// skippedProjects maps the skip flags to manifest project names.
func skippedProjects(args cliArgs) []string {
	var skip []string
	if args.skipSDK {
		skip = append(skip, sdkProject)
	}
	if args.skipRegistration {
		skip = append(skip, registrationProject)
	}
	return skip
}
