// ABOUTME: matcher_fzf: narrows candidates by piping their words through fzf
// ABOUTME: Locates the binary once; a failed lookup disables the matcher for good

package fzf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mauromedda/fzf-matcher-go/internal/log"
	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
)

const (
	// DefaultName is the registry key of the fzf matcher.
	DefaultName = "matcher_fzf"
	// DefaultBinary is the executable searched for during discovery.
	DefaultBinary = "fzf"
	// DefaultTimeout bounds one delegated call.
	DefaultTimeout = 30 * time.Second
)

// DefaultArgs puts fzf in non-interactive filter mode without sorting; the
// query is appended as the final argument.
func DefaultArgs() []string {
	return []string{"+s", "-f"}
}

// Options configures a Matcher. Zero fields take the defaults above.
type Options struct {
	Name        string
	Binary      string
	Args        []string
	Timeout     time.Duration // 0 uses DefaultTimeout; negative disables the bound
	Diagnostics filter.Diagnostics
	LookPath    func(file string) (string, error) // defaults to exec.LookPath
}

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateDisabled
)

// Matcher is the fzf-backed filter. Calls are serialized per instance, so at
// most one child process runs at a time.
type Matcher struct {
	opts Options

	mu    sync.Mutex
	state state
	bin   string
}

var (
	_ filter.Matcher          = (*Matcher)(nil)
	_ filter.PatternConverter = (*Matcher)(nil)
)

// New creates a Matcher. Discovery is deferred to the first filtering call.
func New(opts Options) *Matcher {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Args == nil {
		opts.Args = DefaultArgs()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = log.Sink()
	}
	if opts.LookPath == nil {
		opts.LookPath = lookPath
	}
	return &Matcher{opts: opts}
}

func (m *Matcher) Name() string        { return m.opts.Name }
func (m *Matcher) Description() string { return m.opts.Binary + " matcher" }

// Disabled reports whether discovery failed.
func (m *Matcher) Disabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == stateDisabled
}

// Path returns the discovered executable, or "" before discovery succeeds.
func (m *Matcher) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bin
}

// Filter returns the candidates whose Word appears verbatim in fzf's output.
//
// A disabled matcher always returns an empty slice. Otherwise empty
// candidates or an empty query are returned unchanged without running
// anything. If the executable cannot be found, the matcher reports two
// diagnostics, disables itself and returns an empty slice with a nil error.
// Process failures are returned as *filter.DelegationError.
func (m *Matcher) Filter(ctx context.Context, candidates []filter.Candidate, fctx filter.Context) ([]filter.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateDisabled {
		return []filter.Candidate{}, nil
	}
	if len(candidates) == 0 || fctx.Input == "" {
		return candidates, nil
	}

	if m.state == stateUninitialized {
		bin, err := discover(m.opts.LookPath, m.opts.Binary, fctx.RuntimePath, fctx.IsWindows)
		if err != nil {
			m.state = stateDisabled
			log.Debug("%s: %v", m.opts.Name, err)
			m.opts.Diagnostics(fmt.Sprintf("%s: %s binary not found.", m.opts.Name, m.opts.Binary))
			m.opts.Diagnostics(fmt.Sprintf("%s: You must install/build %s.", m.opts.Name, m.opts.Binary))
			return []filter.Candidate{}, nil
		}
		m.state = stateReady
		m.bin = bin
		log.Debug("%s: using %s", m.opts.Name, bin)
	}

	matched, err := m.delegate(ctx, candidates, fctx)
	if err != nil {
		return nil, err
	}
	return filter.Intersect(candidates, matched), nil
}

// ConvertPattern returns the highlight regexp for input.
func (m *Matcher) ConvertPattern(input string) string {
	return filter.ConvertToFuzzyPattern(input)
}
