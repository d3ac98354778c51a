// ABOUTME: Install plan resolution: which projects this run will handle
// ABOUTME: Built once from flags and prompts before any stage executes

package plan

import (
	"fmt"
	"path/filepath"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/manifest"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

// Options carry the CLI-level choices that shape a plan.
type Options struct {
	Force bool
	Root  string
	// Skip lists optional project names excluded without prompting.
	Skip []string
}

// Plan is the resolved, immutable selection of projects and derived work
// for one pipeline run.
type Plan struct {
	root     string
	force    bool
	m        *manifest.Manifest
	projects []manifest.Project
	included map[string]bool
}

// Resolve builds the plan. Optional projects not named in opts.Skip are
// offered interactively (auto-accepted in force mode).
func Resolve(m *manifest.Manifest, opts Options, prompter ui.Prompter) (*Plan, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving install root: %w", err)
	}

	skip := make(map[string]bool, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[name] = true
	}

	p := &Plan{
		root:     absRoot,
		force:    opts.Force,
		m:        m,
		included: make(map[string]bool, len(m.Projects)),
	}

	for _, proj := range m.Projects {
		switch {
		case skip[proj.Name]:
			log.Debug("skipping %s (flag)", proj.Name)
			continue
		case proj.Optional:
			q := fmt.Sprintf("Install the optional %s component?", proj.Name)
			if !prompter.Confirm(q, true, true) {
				log.Debug("skipping %s (declined)", proj.Name)
				continue
			}
		}
		p.projects = append(p.projects, proj)
		p.included[proj.Name] = true
	}

	return p, nil
}

// Root returns the absolute directory repositories are cloned beneath.
func (p *Plan) Root() string { return p.root }

// Force reports whether prompts are short-circuited this run.
func (p *Plan) Force() bool { return p.force }

// Projects returns the planned projects in declared order.
func (p *Plan) Projects() []manifest.Project { return p.projects }

// Includes reports whether the named project is part of this run.
func (p *Plan) Includes(name string) bool { return p.included[name] }

// Tools returns the tool requirements that apply to this run.
func (p *Plan) Tools() []manifest.ToolRequirement {
	var reqs []manifest.ToolRequirement
	for _, req := range p.m.Tools {
		if req.OnlyFor != "" && !p.included[req.OnlyFor] {
			log.Debug("tool %s not required: %s not planned", req.Name, req.OnlyFor)
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs
}

// Links returns the link specs whose projects are planned.
func (p *Plan) Links() []manifest.Link {
	var links []manifest.Link
	for _, l := range p.m.Links {
		if p.included[l.Project] {
			links = append(links, l)
		}
	}
	return links
}

// Seeds returns the seed renames whose projects are planned.
func (p *Plan) Seeds() []manifest.Seed {
	var seeds []manifest.Seed
	for _, s := range p.m.Seeds {
		if p.included[s.Project] {
			seeds = append(seeds, s)
		}
	}
	return seeds
}

// Env returns the manifest's environment file spec.
func (p *Plan) Env() manifest.EnvSpec { return p.m.Env }

// EnvDir returns the absolute directory holding the environment file, when
// the env spec names a planned project.
func (p *Plan) EnvDir() (string, bool) {
	if p.m.Env.Project == "" || !p.included[p.m.Env.Project] {
		return "", false
	}
	return p.DirOf(p.m.Env.Project)
}

// DirOf returns the absolute checkout directory of a named project.
func (p *Plan) DirOf(name string) (string, bool) {
	proj, ok := p.m.Project(name)
	if !ok {
		return "", false
	}
	return p.ProjectDir(*proj), true
}

// ProjectDir returns the absolute checkout directory for a project.
func (p *Plan) ProjectDir(proj manifest.Project) string {
	return filepath.Join(p.root, proj.LocalDir)
}

// AbsPath resolves a slash-separated manifest path against the root.
func (p *Plan) AbsPath(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

// SDKArtifactPath returns the absolute path of the built companion binary
// when the artifact-bearing project is part of this run.
func (p *Plan) SDKArtifactPath() (string, bool) {
	proj, ok := p.m.ArtifactProject()
	if !ok || !p.included[proj.Name] {
		return "", false
	}
	return filepath.Join(p.root, proj.LocalDir, manifest.ArtifactName(proj.Artifact)), true
}

// StartProject returns the first planned project declaring a start command.
func (p *Plan) StartProject() (manifest.Project, bool) {
	for _, proj := range p.projects {
		if len(proj.StartCmd) > 0 {
			return proj, true
		}
	}
	return manifest.Project{}, false
}
