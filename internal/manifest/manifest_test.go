// ABOUTME: Tests for manifest parsing, validation, and artifact expansion
// ABOUTME: Exercises the embedded default manifest and malformed inputs

package manifest

import (
	"runtime"
	"strings"
	"testing"
)

func TestDefaultManifestParses(t *testing.T) {
	t.Parallel()

	m, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if len(m.Projects) != 3 {
		t.Fatalf("len(Projects) = %d; want 3", len(m.Projects))
	}
	builder := m.Projects[0]
	if builder.Name != "neuron-node-builder" {
		t.Errorf("Projects[0].Name = %q; want %q", builder.Name, "neuron-node-builder")
	}
	if builder.Optional {
		t.Error("builder project marked optional")
	}
	if m.Env.Project != "neuron-node-builder" {
		t.Errorf("Env.Project = %q; want %q", m.Env.Project, "neuron-node-builder")
	}
	if m.Env.UserDir != ".neuron-node-builder" {
		t.Errorf("Env.UserDir = %q; want %q", m.Env.UserDir, ".neuron-node-builder")
	}

	sdk, ok := m.ArtifactProject()
	if !ok {
		t.Fatal("no artifact project in default manifest")
	}
	if sdk.Name != "neuron-sdk" || !sdk.Optional {
		t.Errorf("artifact project = %q optional=%v; want neuron-sdk optional=true", sdk.Name, sdk.Optional)
	}
}

func TestArtifactExpansion(t *testing.T) {
	t.Parallel()

	m, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	want := "neuron-sdk"
	if runtime.GOOS == "windows" {
		want = "neuron-sdk.exe"
	}

	sdk, _ := m.Project("neuron-sdk")
	found := false
	for _, arg := range sdk.BuildCmd {
		if strings.Contains(arg, "${ARTIFACT}") {
			t.Errorf("BuildCmd still contains placeholder: %v", sdk.BuildCmd)
		}
		if arg == want {
			found = true
		}
	}
	if !found {
		t.Errorf("BuildCmd = %v; want it to contain %q", sdk.BuildCmd, want)
	}

	for _, l := range m.Links {
		if strings.Contains(l.Source, "${ARTIFACT}") || strings.Contains(l.Target, "${ARTIFACT}") {
			t.Errorf("link still contains placeholder: %+v", l)
		}
	}
	if got := m.Links[0].Source; got != "neuron-go-hedera-sdk/"+want {
		t.Errorf("Links[0].Source = %q; want %q", got, "neuron-go-hedera-sdk/"+want)
	}
}

func TestArtifactNameFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want string
	}{
		{"linux", "neuron-sdk"},
		{"darwin", "neuron-sdk"},
		{"windows", "neuron-sdk.exe"},
	}
	for _, tt := range tests {
		if got := ArtifactNameFor("neuron-sdk", tt.goos); got != tt.want {
			t.Errorf("ArtifactNameFor(%q) = %q; want %q", tt.goos, got, tt.want)
		}
	}
}

func TestParseRejectsInvalidManifests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no projects",
			yaml:    "projects: []\n",
			wantErr: "no projects",
		},
		{
			name: "duplicate project",
			yaml: `projects:
  - {name: a, repo: r, dir: d}
  - {name: a, repo: r, dir: d2}
`,
			wantErr: "duplicate project",
		},
		{
			name: "missing repo",
			yaml: `projects:
  - {name: a, dir: d}
`,
			wantErr: "missing repo URL",
		},
		{
			name: "link to unknown project",
			yaml: `projects:
  - {name: a, repo: r, dir: d}
links:
  - {project: ghost, source: s, target: t, kind: symlink}
`,
			wantErr: "unknown project",
		},
		{
			name: "bad link kind",
			yaml: `projects:
  - {name: a, repo: r, dir: d}
links:
  - {project: a, source: s, target: t, kind: hardlink}
`,
			wantErr: "unknown kind",
		},
		{
			name: "two artifact projects",
			yaml: `projects:
  - {name: a, repo: r, dir: d, artifact: x}
  - {name: b, repo: r, dir: d2, artifact: y}
`,
			wantErr: "at most one",
		},
		{
			name: "env references unknown project",
			yaml: `projects:
  - {name: a, repo: r, dir: d}
env:
  project: ghost
`,
			wantErr: "unknown project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q; want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load("/nonexistent/manifest.yaml"); err == nil {
		t.Fatal("expected error for missing manifest file")
	}
}
