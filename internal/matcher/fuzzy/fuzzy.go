// ABOUTME: In-process matcher_fuzzy built on pkg/fuzzy (sahilm/fuzzy)
// ABOUTME: Keeps candidates in input order; words and query compared in NFC

package fuzzy

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
	fz "github.com/mauromedda/fzf-matcher-go/pkg/fuzzy"
)

// Name is the registry key of this matcher.
const Name = "matcher_fuzzy"

// Matcher filters candidates without spawning a process.
type Matcher struct{}

var (
	_ filter.Matcher          = (*Matcher)(nil)
	_ filter.PatternConverter = (*Matcher)(nil)
)

// New returns a matcher_fuzzy instance.
func New() *Matcher {
	return &Matcher{}
}

func (m *Matcher) Name() string        { return Name }
func (m *Matcher) Description() string { return "fuzzy matcher" }

// Filter keeps the candidates whose Word fuzzy-matches the query.
func (m *Matcher) Filter(ctx context.Context, candidates []filter.Candidate, fctx filter.Context) ([]filter.Candidate, error) {
	if len(candidates) == 0 || fctx.Input == "" {
		return candidates, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := fz.MatchingIndexes(norm.NFC.String(fctx.Input), nfcSource(candidates))
	out := make([]filter.Candidate, len(idx))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out, nil
}

// ConvertPattern returns the highlight regexp for input.
func (m *Matcher) ConvertPattern(input string) string {
	return filter.ConvertToFuzzyPattern(input)
}

type nfcSource []filter.Candidate

func (s nfcSource) String(i int) string { return norm.NFC.String(s[i].Word) }
func (s nfcSource) Len() int            { return len(s) }
