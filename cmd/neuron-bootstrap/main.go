// ABOUTME: CLI entry point for the bootstrap wrapper
// ABOUTME: Downloads the platform install script over HTTPS, runs it, deletes it

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NeuronInnovations/neuron-node-builder-installer/internal/bootstrap"
)

const defaultBaseURL = "https://raw.githubusercontent.com/NeuronInnovations/neuron-node-builder-installer/main/scripts"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("neuron-bootstrap %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run downloads the platform script, verifies it when asked, and executes it.
func run(args cliArgs) error {
	var extra []string
	if args.force {
		extra = append(extra, "--force")
	}

	return bootstrap.New().Run(context.Background(), bootstrap.Options{
		URL:     args.url,
		BaseURL: args.baseURL,
		SHA256:  args.sha256,
		Keep:    args.keep,
		Args:    extra,
	})
}
