// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --matcher, --json, --encoding, --runtimepath, --highlight and friends

package main

import (
	"flag"
	"io"
	"strings"
	"time"
)

type cliArgs struct {
	matcher     string
	json        bool
	encoding    string
	runtimePath listFlag
	highlight   bool
	pattern     bool
	list        bool
	fallback    bool
	timeout     time.Duration
	verbose     bool
	version     bool
	query       []string
}

// listFlag collects comma-separated values across repeated flags.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*l = append(*l, p)
		}
	}
	return nil
}

func parseFlags(argv []string, output io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("fzfmatch", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&args.matcher, "matcher", "", "Matcher to use (default from config, else matcher_fzf)")
	fs.BoolVar(&args.json, "json", false, "Read and write JSON lines candidates")
	fs.StringVar(&args.encoding, "encoding", "", "Codec for the external process (default utf-8)")
	fs.Var(&args.runtimePath, "runtimepath", "Comma-separated runtime roots searched for bin/<binary>")
	fs.BoolVar(&args.highlight, "highlight", false, "Highlight matched characters in text output")
	fs.BoolVar(&args.pattern, "pattern", false, "Print the converted fuzzy pattern and exit")
	fs.BoolVar(&args.list, "list", false, "List registered matchers and exit")
	fs.BoolVar(&args.fallback, "fallback", false, "Use matcher_fuzzy when the selected matcher is disabled")
	fs.DurationVar(&args.timeout, "timeout", 0, "Delegation timeout (default from config, else 30s)")
	fs.BoolVar(&args.verbose, "verbose", false, "Debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.query = fs.Args()
	return args, nil
}
