// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --force, --skip-sdk, --skip-registration, --dir, --manifest, --start, --verbose, --version

package main

import "flag"

type cliArgs struct {
	force            bool
	skipSDK          bool
	skipRegistration bool
	dir              string
	manifestPath     string
	start            bool
	verbose          bool
	version          bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.force, "force", false, "Suppress all prompts and accept the predetermined answers")
	flag.BoolVar(&args.force, "f", false, "Shorthand for --force")
	flag.BoolVar(&args.skipSDK, "skip-sdk", false, "Skip the optional Go companion SDK")
	flag.BoolVar(&args.skipRegistration, "skip-registration", false, "Skip the optional registration module")
	flag.StringVar(&args.dir, "dir", "", "Directory the repositories are cloned beneath (default: current directory)")
	flag.StringVar(&args.manifestPath, "manifest", "", "Alternative YAML manifest instead of the embedded one")
	flag.BoolVar(&args.start, "start", false, "Start the application after installing without prompting")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.verbose, "v", false, "Shorthand for --verbose")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
