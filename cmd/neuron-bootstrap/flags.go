// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --url, --base-url, --sha256, --keep, --force, --version

package main

import "flag"

type cliArgs struct {
	url     string
	baseURL string
	sha256  string
	keep    bool
	force   bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.url, "url", "", "Explicit install script URL")
	flag.StringVar(&args.baseURL, "base-url", defaultBaseURL, "Base URL of the platform install scripts")
	flag.StringVar(&args.sha256, "sha256", "", "Expected SHA256 digest of the script (hex)")
	flag.BoolVar(&args.keep, "keep", false, "Keep the downloaded script for debugging")
	flag.BoolVar(&args.force, "force", false, "Forward --force to the install script")
	flag.BoolVar(&args.force, "f", false, "Shorthand for --force")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
