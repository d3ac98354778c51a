// ABOUTME: Post-install launch: offers to start the editor in the foreground
// ABOUTME: Reads PORT from the live env file via godotenv to print the editor URL

package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/plan"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/runcmd"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

const defaultPort = "1880"

// offerStart asks to launch the application and runs its start command in
// the foreground. Declining is not a failure. Force runs never start the
// app; --start always does.
func offerStart(ctx context.Context, p *plan.Plan, prompter ui.Prompter, runner runcmd.Runner, always bool) error {
	proj, ok := p.StartProject()
	if !ok {
		return nil
	}

	if !always && !prompter.Confirm("Start the application now?", false, false) {
		ui.Infof("start it later with: cd %s && %s", p.ProjectDir(proj), strings.Join(proj.StartCmd, " "))
		return nil
	}

	ui.Infof("editor: http://localhost:%s", editorPort(p))
	return runner.Run(ctx, p.ProjectDir(proj), proj.StartCmd)
}

// editorPort reads PORT from the live env file, defaulting when unset.
func editorPort(p *plan.Plan) string {
	dir, ok := p.EnvDir()
	if !ok {
		return defaultPort
	}
	env, err := godotenv.Read(filepath.Join(dir, p.Env().Live))
	if err != nil {
		return defaultPort
	}
	if port := env["PORT"]; port != "" {
		return port
	}
	return defaultPort
}
