// ABOUTME: Thin wrapper over sahilm/fuzzy for in-process fuzzy matching
// ABOUTME: Exposes ranked matches plus an order-preserving index filter

package fuzzy

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Source is any indexed list of strings.
type Source = fuzzy.Source

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// FindFrom performs fuzzy matching using a custom string source.
// Returns matches sorted by score (best first).
func FindFrom(pattern string, data Source) []Match {
	return convert(fuzzy.FindFrom(pattern, data))
}

// MatchingIndexes returns the source indexes that match pattern, in
// ascending order rather than by score.
func MatchingIndexes(pattern string, data Source) []int {
	results := FindFrom(pattern, data)
	idx := make([]int, len(results))
	for i, r := range results {
		idx[i] = r.Index
	}
	sort.Ints(idx)
	return idx
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
