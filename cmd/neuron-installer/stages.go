// ABOUTME: Assembles the six install stages over the resolved plan
// ABOUTME: Each stage is a closure; the pipeline runs them strictly in order

package main

import (
	"context"
	"strings"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/fetch"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/linker"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/manifest"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/materialize"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/pipeline"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/plan"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/runcmd"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/toolcheck"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// buildStages wires the pipeline stages over the resolved plan.
func buildStages(p *plan.Plan, prompter ui.Prompter, runner runcmd.Runner) []pipeline.Stage {
	fetcher := &fetch.Fetcher{Runner: runner, Prompter: prompter}

	return []pipeline.Stage{
		{Name: "prerequisites", State: pipeline.StateCheckingPrereqs, Run: func(ctx context.Context) error {
			return checkTools(ctx, p)
		}},
		{Name: "fetch", State: pipeline.StateFetching, Run: func(ctx context.Context) error {
			return fetchRepos(ctx, p, fetcher)
		}},
		{Name: "configure", State: pipeline.StateConfiguring, Run: func(context.Context) error {
			return configure(p)
		}},
		{Name: "install", State: pipeline.StateInstallingDeps, Run: func(ctx context.Context) error {
			return runProjectCommands(ctx, p, runner, installCmd)
		}},
		{Name: "build", State: pipeline.StateBuilding, Run: func(ctx context.Context) error {
			return runProjectCommands(ctx, p, runner, buildCmd)
		}},
		{Name: "link", State: pipeline.StateLinking, Run: func(context.Context) error {
			return linkArtifacts(p)
		}},
	}
}

// checkTools verifies every required tool before anything touches disk.
func checkTools(ctx context.Context, p *plan.Plan) error {
	for _, req := range p.Tools() {
		found, err := toolcheck.Check(ctx, req)
		if err != nil {
			return err
		}
		if found == "" {
			ui.Successf("%s", req.Name)
			continue
		}
		ui.Successf("%s %s", req.Name, found)
	}
	return nil
}

// fetchRepos clones every planned repository beneath the install root.
func fetchRepos(ctx context.Context, p *plan.Plan, fetcher *fetch.Fetcher) error {
	for _, proj := range p.Projects() {
		if err := fetcher.Fetch(ctx, proj, p.ProjectDir(proj)); err != nil {
			return err
		}
	}
	return nil
}

// configure materializes env files and seeds first-run defaults.
func configure(p *plan.Plan) error {
	mat, err := materialize.New(p)
	if err != nil {
		return err
	}
	return mat.Run()
}

// runProjectCommands runs the selected command of every planned project
// that declares one, in its checkout directory, with inherited stdio.
func runProjectCommands(ctx context.Context, p *plan.Plan, runner runcmd.Runner, cmd func(manifest.Project) []string) error {
	for _, proj := range p.Projects() {
		argv := cmd(proj)
		if len(argv) == 0 {
			continue
		}
		ui.Infof("%s: %s", proj.Name, strings.Join(argv, " "))
		if err := runner.Run(ctx, p.ProjectDir(proj), argv); err != nil {
			return err
		}
	}
	return nil
}

func installCmd(proj manifest.Project) []string { return proj.InstallCmd }

func buildCmd(proj manifest.Project) []string { return proj.BuildCmd }

// linkArtifacts exposes built artifacts to their consuming projects.
func linkArtifacts(p *plan.Plan) error {
	lk := linker.New()
	for _, l := range p.Links() {
		spec := linker.Spec{
			Source: p.AbsPath(l.Source),
			Target: p.AbsPath(l.Target),
			Kind:   linker.Kind(l.Kind),
		}
		if err := lk.Link(spec); err != nil {
			return err
		}
		ui.Successf("linked %s", l.Target)
	}
	return nil
}
