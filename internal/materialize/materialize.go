// ABOUTME: Config materialization: env file from template, computed path keys
// ABOUTME: Seeds example files on first run; missing templates warn, not fail

package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/envfile"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/plan"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// Materializer derives runtime configuration files for one install run.
type Materializer struct {
	Plan    *plan.Plan
	HomeDir string
}

// New returns a Materializer rooted at the operator's home directory.
func New(p *plan.Plan) (*Materializer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &Materializer{Plan: p, HomeDir: home}, nil
}

// Run refreshes the live env file from its template, upserts the computed
// path keys, and seeds first-run example files.
func (m *Materializer) Run() error {
	if err := m.materializeEnv(); err != nil {
		return err
	}
	return m.seedFiles()
}

func (m *Materializer) materializeEnv() error {
	env := m.Plan.Env()
	envDir, ok := m.Plan.EnvDir()
	if !ok || env.Live == "" {
		log.Debug("no env file work declared")
		return nil
	}
	livePath := filepath.Join(envDir, env.Live)

	if env.Template != "" {
		templatePath := filepath.Join(envDir, env.Template)
		data, err := os.ReadFile(templatePath)
		switch {
		case os.IsNotExist(err):
			ui.Warnf("%s missing; skipping defaults refresh", env.Template)
		case err != nil:
			return fmt.Errorf("reading template %s: %w", templatePath, err)
		default:
			// Overwrite the live file every run; computed keys are
			// reapplied below.
			if err := os.WriteFile(livePath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", livePath, err)
			}
			log.Debug("wrote %s from %s", livePath, templatePath)
		}
	}

	f, err := envfile.Load(livePath)
	if err != nil {
		return err
	}

	if env.SDKPathKey != "" {
		if sdkPath, ok := m.Plan.SDKArtifactPath(); ok {
			f.Upsert(env.SDKPathKey, sdkPath)
		}
	}

	if env.UserPathKey != "" && env.UserDir != "" {
		userPath := filepath.Join(m.HomeDir, env.UserDir)
		if err := os.MkdirAll(userPath, 0o755); err != nil {
			return fmt.Errorf("creating user state dir: %w", err)
		}
		f.Upsert(env.UserPathKey, userPath)
	}

	if err := f.Save(livePath); err != nil {
		return err
	}
	ui.Infof("configured %s", livePath)
	return nil
}

func (m *Materializer) seedFiles() error {
	for _, seed := range m.Plan.Seeds() {
		dir, ok := m.Plan.DirOf(seed.Project)
		if !ok {
			continue
		}
		livePath := filepath.Join(dir, seed.Live)
		examplePath := filepath.Join(dir, seed.Example)

		if _, err := os.Lstat(livePath); err == nil {
			ui.Infof("%s already present; leaving it as is", seed.Live)
			continue
		}
		if _, err := os.Lstat(examplePath); err != nil {
			ui.Warnf("%s missing; nothing to seed", seed.Example)
			continue
		}
		if err := os.Rename(examplePath, livePath); err != nil {
			return fmt.Errorf("seeding %s: %w", seed.Live, err)
		}
		ui.Infof("seeded %s from %s", seed.Live, seed.Example)
	}
	return nil
}
