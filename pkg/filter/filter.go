// ABOUTME: Host contract for candidate matchers: Candidate, Context, Matcher
// ABOUTME: Matchers narrow an ordered candidate list against a user query

package filter

import "context"

// Candidate is one entry in the host's candidate list.
// Word is the text that matchers look at; Extra carries any other fields the
// host attached and is passed through untouched. Decoded JSON fields are
// held as json.RawMessage.
type Candidate struct {
	Word  string
	Extra map[string]any
}

// Context is the per-call bundle the host hands to a matcher.
type Context struct {
	Input       string   // Query typed by the user; "" means no filtering
	Encoding    string   // Codec used when talking to external processes
	IsWindows   bool     // Platform flag used for executable suffixes
	RuntimePath []string // Ordered runtime search roots
}

// Matcher narrows candidates for a query. Implementations must return a
// subsequence of the input: same order, nothing invented.
type Matcher interface {
	Name() string
	Description() string
	Filter(ctx context.Context, candidates []Candidate, fctx Context) ([]Candidate, error)
}

// PatternConverter is implemented by matchers that can turn a query into a
// highlight pattern.
type PatternConverter interface {
	ConvertPattern(input string) string
}

// Diagnostics receives one-line, user-visible notices from matchers.
type Diagnostics func(msg string)

// FromWords wraps plain strings as candidates without extra fields.
func FromWords(words []string) []Candidate {
	out := make([]Candidate, len(words))
	for i, w := range words {
		out[i] = Candidate{Word: w}
	}
	return out
}

// Words projects candidates to their Word fields.
func Words(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Word
	}
	return out
}

// Intersect returns the candidates whose Word is in matched, in input order.
func Intersect(candidates []Candidate, matched map[string]struct{}) []Candidate {
	out := make([]Candidate, 0, len(matched))
	for _, c := range candidates {
		if _, ok := matched[c.Word]; ok {
			out = append(out, c)
		}
	}
	return out
}
