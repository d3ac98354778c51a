// ABOUTME: Prerequisite tool checks: PATH resolution and minimum version gates
// ABOUTME: Parses self-reported version strings and compares them numerically

package toolcheck

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/log"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/manifest"
)

const versionProbeTimeout = 10 * time.Second

// versionPattern matches the first dotted numeric in a tool's version
// output, e.g. "git version 2.39.2", "v18.17.0", "go1.23.1".
var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// MissingToolError reports a tool that is not resolvable on the search path.
type MissingToolError struct {
	Tool string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("required tool %q not found on PATH", e.Tool)
}

// VersionTooLowError reports a tool older than the required minimum.
type VersionTooLowError struct {
	Tool     string
	Found    string
	Required string
}

func (e *VersionTooLowError) Error() string {
	return fmt.Sprintf("%s version %s is below the required minimum %s", e.Tool, e.Found, e.Required)
}

// Check verifies that the required tool resolves on PATH and, when a
// minimum version is declared, that its self-reported version meets it.
// It returns the detected version string ("" when no probe ran) and has no
// side effects.
func Check(ctx context.Context, req manifest.ToolRequirement) (string, error) {
	path, err := exec.LookPath(req.Name)
	if err != nil {
		return "", &MissingToolError{Tool: req.Name}
	}
	log.Debug("found %s at %s", req.Name, path)

	args := req.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, req.Name, args...).CombinedOutput()
	if err != nil {
		if req.MinVersion == "" {
			log.Debug("version probe for %s failed: %v", req.Name, err)
			return "", nil
		}
		return "", fmt.Errorf("probing %s version: %w", req.Name, err)
	}

	found := versionPattern.FindString(string(out))
	if found == "" {
		if req.MinVersion == "" {
			return "", nil
		}
		return "", fmt.Errorf("no version number in %s output %q", req.Name, firstLine(string(out)))
	}

	if req.MinVersion != "" {
		ok, err := atLeast(found, req.MinVersion)
		if err != nil {
			return "", fmt.Errorf("comparing %s versions: %w", req.Name, err)
		}
		if !ok {
			return "", &VersionTooLowError{Tool: req.Name, Found: found, Required: req.MinVersion}
		}
	}
	return found, nil
}

// atLeast reports whether found >= required, comparing version components
// numerically so that "1.9" sorts below "1.10".
func atLeast(found, required string) (bool, error) {
	fv, err := goversion.NewVersion(found)
	if err != nil {
		return false, fmt.Errorf("parsing found version %q: %w", found, err)
	}
	rv, err := goversion.NewVersion(required)
	if err != nil {
		return false, fmt.Errorf("parsing required version %q: %w", required, err)
	}
	return fv.GreaterThanOrEqual(rv), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
