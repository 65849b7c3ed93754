// ABOUTME: Query-to-regexp conversion used for highlighting fuzzy matches
// ABOUTME: "abc" becomes a[^a]*b[^b]*c; whitespace-separated words are OR-ed

package filter

import (
	"regexp"
	"strings"
)

// SplitInput splits a query on whitespace, dropping empty fields.
func SplitInput(text string) []string {
	return strings.Fields(text)
}

// ConvertToFuzzyPattern turns a literal query into a regexp that matches the
// query's characters in order with anything in between. Each word character
// except the last is followed by a negated class of itself; "/" is followed
// by [^/]* so path segments stay anchored. Words are joined with "|".
func ConvertToFuzzyPattern(text string) string {
	words := SplitInput(text)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, fuzzyWord(w))
	}
	return strings.Join(parts, "|")
}

func fuzzyWord(word string) string {
	runes := []rune(word)
	var b strings.Builder
	for i, r := range runes {
		last := i == len(runes)-1
		switch {
		case isWordRune(r):
			b.WriteRune(r)
			if !last {
				b.WriteString("[^")
				b.WriteRune(r)
				b.WriteString("]*")
			}
		case r == '/':
			b.WriteRune(r)
			if !last {
				b.WriteString("[^/]*")
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_' || r == '-'
}
