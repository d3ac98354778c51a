// ABOUTME: Install manifest: tool requirements, project specs, env keys, links
// ABOUTME: Loads embedded default or user-supplied YAML and expands ${ARTIFACT}

package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// artifactToken is replaced in commands and link paths by the
// platform-suffixed artifact name of the owning project.
const artifactToken = "${ARTIFACT}"

// Link kinds understood by the artifact linker.
const (
	KindSymlink  = "symlink"
	KindJunction = "junction"
	KindCopy     = "copy"
)

// ToolRequirement names a prerequisite executable and optionally a minimum
// version. OnlyFor restricts the requirement to runs whose plan includes the
// named project.
type ToolRequirement struct {
	Name        string   `yaml:"name"`
	MinVersion  string   `yaml:"min_version"`
	VersionArgs []string `yaml:"version_args"`
	OnlyFor     string   `yaml:"only_for"`
}

// Project describes one managed repository. Commands are argv lists run
// without a shell, with the project checkout as working directory. Artifact
// names a built executable whose on-disk name gains the platform suffix.
type Project struct {
	Name       string   `yaml:"name"`
	RepoURL    string   `yaml:"repo"`
	LocalDir   string   `yaml:"dir"`
	InstallCmd []string `yaml:"install"`
	BuildCmd   []string `yaml:"build"`
	StartCmd   []string `yaml:"start"`
	Artifact   string   `yaml:"artifact"`
	Optional   bool     `yaml:"optional"`
}

// EnvSpec locates the environment file inside a project checkout and names
// the keys the installer manages.
type EnvSpec struct {
	Project     string `yaml:"project"`
	Template    string `yaml:"template"`
	Live        string `yaml:"live"`
	SDKPathKey  string `yaml:"sdk_path_key"`
	UserPathKey string `yaml:"user_path_key"`
	UserDir     string `yaml:"user_dir"`
}

// Seed is a first-run-only rename of an example file to its live name.
type Seed struct {
	Project string `yaml:"project"`
	Example string `yaml:"example"`
	Live    string `yaml:"live"`
}

// Link exposes a built artifact to a consuming project. Source and Target
// are slash-separated paths relative to the install root. Kind is the
// preferred strategy; the linker may fall back down the chain.
type Link struct {
	Project string `yaml:"project"`
	Source  string `yaml:"source"`
	Target  string `yaml:"target"`
	Kind    string `yaml:"kind"`
}

// Manifest is the static configuration table for one install run. It is
// immutable after Load.
type Manifest struct {
	Tools    []ToolRequirement `yaml:"tools"`
	Projects []Project         `yaml:"projects"`
	Env      EnvSpec           `yaml:"env"`
	Seeds    []Seed            `yaml:"seeds"`
	Links    []Link            `yaml:"links"`
}

// Default parses the manifest embedded in the binary.
func Default() (*Manifest, error) {
	m, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded manifest: %w", err)
	}
	return m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse unmarshals, validates, and expands a manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	m.expandArtifacts()
	return &m, nil
}

// Project returns the project with the given name.
func (m *Manifest) Project(name string) (*Project, bool) {
	for i := range m.Projects {
		if m.Projects[i].Name == name {
			return &m.Projects[i], true
		}
	}
	return nil, false
}

// ArtifactProject returns the project that builds a platform-suffixed
// executable, when the manifest declares one.
func (m *Manifest) ArtifactProject() (*Project, bool) {
	for i := range m.Projects {
		if m.Projects[i].Artifact != "" {
			return &m.Projects[i], true
		}
	}
	return nil, false
}

func (m *Manifest) validate() error {
	if len(m.Projects) == 0 {
		return fmt.Errorf("manifest declares no projects")
	}

	seen := make(map[string]bool, len(m.Projects))
	artifacts := 0
	for _, p := range m.Projects {
		switch {
		case p.Name == "":
			return fmt.Errorf("project with empty name")
		case seen[p.Name]:
			return fmt.Errorf("duplicate project %q", p.Name)
		case p.RepoURL == "":
			return fmt.Errorf("project %q: missing repo URL", p.Name)
		case p.LocalDir == "":
			return fmt.Errorf("project %q: missing dir", p.Name)
		}
		seen[p.Name] = true
		if p.Artifact != "" {
			artifacts++
		}
	}
	if artifacts > 1 {
		return fmt.Errorf("multiple projects declare an artifact; at most one is supported")
	}

	if m.Env.Project != "" && !seen[m.Env.Project] {
		return fmt.Errorf("env section references unknown project %q", m.Env.Project)
	}
	for _, s := range m.Seeds {
		if !seen[s.Project] {
			return fmt.Errorf("seed %q references unknown project %q", s.Live, s.Project)
		}
	}
	for _, l := range m.Links {
		if !seen[l.Project] {
			return fmt.Errorf("link %q references unknown project %q", l.Target, l.Project)
		}
		switch l.Kind {
		case KindSymlink, KindJunction, KindCopy:
		case "":
			return fmt.Errorf("link %q: missing kind", l.Target)
		default:
			return fmt.Errorf("link %q: unknown kind %q", l.Target, l.Kind)
		}
	}
	return nil
}

// expandArtifacts substitutes ${ARTIFACT} once, at load time, so no
// downstream consumer ever sees the placeholder.
func (m *Manifest) expandArtifacts() {
	for i := range m.Projects {
		p := &m.Projects[i]
		if p.Artifact == "" {
			continue
		}
		name := ArtifactName(p.Artifact)
		p.InstallCmd = expandArgs(p.InstallCmd, name)
		p.BuildCmd = expandArgs(p.BuildCmd, name)
		p.StartCmd = expandArgs(p.StartCmd, name)
	}
	for i := range m.Links {
		l := &m.Links[i]
		p, ok := m.Project(l.Project)
		if !ok || p.Artifact == "" {
			continue
		}
		name := ArtifactName(p.Artifact)
		l.Source = strings.ReplaceAll(l.Source, artifactToken, name)
		l.Target = strings.ReplaceAll(l.Target, artifactToken, name)
	}
}

func expandArgs(args []string, name string) []string {
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, artifactToken, name)
	}
	return args
}

// ArtifactName returns the executable name for the running platform.
func ArtifactName(base string) string {
	return ArtifactNameFor(base, runtime.GOOS)
}

// ArtifactNameFor returns the executable name for the given GOOS.
func ArtifactNameFor(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}
