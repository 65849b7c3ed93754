// ABOUTME: CLI entry point for fzfmatch: filters stdin candidates against a query
// ABOUTME: Loads config, registers matchers, runs the selected one and prints survivors

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/mauromedda/fzf-matcher-go/internal/config"
	fmlog "github.com/mauromedda/fzf-matcher-go/internal/log"
	"github.com/mauromedda/fzf-matcher-go/internal/matcher/fuzzy"
	"github.com/mauromedda/fzf-matcher-go/internal/matcher/fzf"
	"github.com/mauromedda/fzf-matcher-go/internal/render"
	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("fzfmatch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: getting working directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}

	env := &runEnv{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		width:  render.TerminalWidth(os.Stdout),
		diag:   fmlog.Sink(),
	}
	if err := run(ctx, args, cfg, env); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runEnv carries the process streams so run can be driven from tests.
type runEnv struct {
	stdin    io.Reader
	stdout   io.Writer
	width    int
	diag     filter.Diagnostics
	lookPath func(string) (string, error)
}

// disabler is implemented by matchers that can switch themselves off.
type disabler interface {
	Disabled() bool
}

// run performs the full filter sequence for one invocation.
func run(ctx context.Context, args cliArgs, cfg *config.Settings, env *runEnv) error {
	if args.verbose {
		fmlog.SetLevel(fmlog.LevelDebug)
	}

	registry := newRegistry(cfg, args, env)

	if args.list {
		for _, m := range registry.All() {
			fmt.Fprintf(env.stdout, "%-16s %s\n", m.Name(), m.Description())
		}
		return nil
	}

	name := firstNonEmpty(args.matcher, cfg.Matcher, fzf.DefaultName)
	m, err := registry.Get(name)
	if err != nil {
		return err
	}

	query := strings.Join(args.query, " ")
	pattern := filter.ConvertToFuzzyPattern(query)
	if pc, ok := m.(filter.PatternConverter); ok {
		pattern = pc.ConvertPattern(query)
	}
	if args.pattern {
		fmt.Fprintln(env.stdout, pattern)
		return nil
	}

	candidates, err := readCandidates(env.stdin, args.json)
	if err != nil {
		return err
	}

	fctx := filter.Context{
		Input:       query,
		Encoding:    firstNonEmpty(args.encoding, cfg.Encoding, "utf-8"),
		IsWindows:   runtime.GOOS == "windows",
		RuntimePath: append(append([]string(nil), args.runtimePath...), cfg.RuntimePath...),
	}

	fmlog.Debug("filtering %d candidates with %s", len(candidates), m.Name())
	result, err := m.Filter(ctx, candidates, fctx)
	if err != nil {
		return fmt.Errorf("%s: %w", m.Name(), err)
	}

	if d, ok := m.(disabler); ok && d.Disabled() && (args.fallback || cfg.Fallback) {
		fb, err := registry.Get(fuzzy.Name)
		if err != nil {
			return err
		}
		fmlog.Debug("%s disabled, falling back to %s", m.Name(), fb.Name())
		if result, err = fb.Filter(ctx, candidates, fctx); err != nil {
			return fmt.Errorf("%s: %w", fb.Name(), err)
		}
	}

	if args.json {
		return filter.WriteJSONLines(env.stdout, result)
	}

	opts := render.Options{Width: env.width}
	if args.highlight || cfg.Highlight {
		opts.Pattern = pattern
	}
	r, err := render.New(opts)
	if err != nil {
		return err
	}
	return r.Write(env.stdout, result)
}

func newRegistry(cfg *config.Settings, args cliArgs, env *runEnv) *filter.Registry {
	timeout := time.Duration(cfg.Timeout)
	if args.timeout != 0 {
		timeout = args.timeout
	}
	return filter.NewRegistry(
		fzf.New(fzf.Options{
			Binary:      cfg.Binary,
			Args:        cfg.Args,
			Timeout:     timeout,
			Diagnostics: env.diag,
			LookPath:    env.lookPath,
		}),
		fuzzy.New(),
	)
}

func readCandidates(r io.Reader, jsonLines bool) ([]filter.Candidate, error) {
	if jsonLines {
		return filter.ReadJSONLines(r)
	}
	return filter.ReadLines(r)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
