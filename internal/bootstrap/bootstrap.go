// ABOUTME: Bootstrap core: downloads the platform install script over HTTPS,
// ABOUTME: verifies an optional SHA256 digest, executes it, deletes it after

package bootstrap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/httputil"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/runcmd"
	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/ui"
)

const downloadTimeout = 10 * time.Minute

// Options controls a single bootstrap run.
type Options struct {
	URL     string   // explicit script URL; overrides BaseURL
	BaseURL string   // base location the script name is appended to
	SHA256  string   // expected hex digest; empty skips verification
	Keep    bool     // keep the downloaded script instead of deleting it
	Args    []string // forwarded to the install script
}

// Bootstrap downloads and runs a platform install script.
type Bootstrap struct {
	Client   *http.Client
	Runner   runcmd.Runner
	Launcher Launcher // nil means probe with Detect
}

// New returns a Bootstrap wired to the real network and console.
func New() *Bootstrap {
	return &Bootstrap{
		Client: httputil.SecureClient(downloadTimeout),
		Runner: runcmd.NewExecRunner(),
	}
}

// Run performs download, optional verification, execution, and cleanup.
// The downloaded script is removed even when it fails, unless Keep is set.
func (b *Bootstrap) Run(ctx context.Context, opts Options) error {
	launcher := b.Launcher
	if launcher == nil {
		var err error
		launcher, err = Detect()
		if err != nil {
			return err
		}
	}

	url, err := scriptURL(opts, launcher)
	if err != nil {
		return err
	}

	ui.Infof("downloading %s", url)
	path, err := b.download(ctx, url, launcher.ScriptName())
	if err != nil {
		return fmt.Errorf("downloading install script: %w", err)
	}
	if opts.Keep {
		ui.Infof("keeping downloaded script at %s", path)
	} else {
		defer os.Remove(path)
	}

	if opts.SHA256 != "" {
		if err := verifyChecksum(path, opts.SHA256); err != nil {
			return fmt.Errorf("verifying install script: %w", err)
		}
	}

	ui.Infof("running install script with %s", launcher.Name())
	return b.Runner.Run(ctx, "", launcher.Args(path, opts.Args))
}

// scriptURL resolves the script location from an explicit URL or the
// base URL plus the launcher's script name.
func scriptURL(opts Options, launcher Launcher) (string, error) {
	if opts.URL != "" {
		return opts.URL, nil
	}
	if opts.BaseURL == "" {
		return "", fmt.Errorf("no script URL configured")
	}
	return strings.TrimRight(opts.BaseURL, "/") + "/" + launcher.ScriptName(), nil
}

// download fetches the script to a temp file that keeps the script's
// extension (PowerShell refuses -File targets without .ps1) and marks
// it executable.
func (b *Bootstrap) download(ctx context.Context, url, scriptName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "neuron-bootstrap")

	resp, err := b.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return "", fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, strings.TrimSpace(string(body)))
	}

	tmpFile, err := os.CreateTemp("", "neuron-bootstrap-*"+filepath.Ext(scriptName))
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("writing script: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), 0o700); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("marking script executable: %w", err)
	}

	return tmpFile.Name(), nil
}

// verifyChecksum computes the SHA256 hash of the file and compares it
// to the expected value.
func verifyChecksum(path, expectedHex string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hashing file: %w", err)
	}

	actualHex := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(actualHex, expectedHex) {
		return fmt.Errorf("hash mismatch: expected %s, got %s", expectedHex, actualHex)
	}

	return nil
}
