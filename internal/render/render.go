// ABOUTME: Text output for matched candidates: optional highlight and width fit
// ABOUTME: Highlights regions matched by the converted fuzzy pattern via lipgloss

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
	"github.com/mauromedda/fzf-matcher-go/pkg/width"
)

// DefaultMatchStyle is applied to highlighted regions.
var DefaultMatchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// Options controls how words are printed.
type Options struct {
	Pattern string              // highlight regexp; "" disables highlighting
	Width   int                 // maximum cells per line; 0 disables truncation
	Mark    func(string) string // wraps a matched region; defaults to DefaultMatchStyle
}

// Renderer formats candidate words as output lines.
type Renderer struct {
	re    *regexp.Regexp
	width int
	mark  func(string) string
}

// New compiles the highlight pattern. Patterns without upper-case letters
// match case-insensitively, mirroring fzf's smart case.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{width: opts.Width, mark: opts.Mark}
	if r.mark == nil {
		r.mark = func(s string) string { return DefaultMatchStyle.Render(s) }
	}
	if opts.Pattern != "" {
		expr := opts.Pattern
		if !hasUpper(expr) {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling highlight pattern: %w", err)
		}
		r.re = re
	}
	return r, nil
}

// Line formats a single word.
func (r *Renderer) Line(word string) string {
	s := word
	if r.re != nil {
		s = r.highlight(word)
	}
	if r.width > 0 {
		s = width.Truncate(s, r.width)
	}
	return s
}

// Write prints one line per candidate.
func (r *Renderer) Write(w io.Writer, candidates []filter.Candidate) error {
	bw := bufio.NewWriter(w)
	for _, c := range candidates {
		bw.WriteString(r.Line(c.Word))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (r *Renderer) highlight(s string) string {
	locs := r.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		b.WriteString(s[prev:loc[0]])
		b.WriteString(r.mark(s[loc[0]:loc[1]]))
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

// TerminalWidth returns f's column count, or 0 when f is not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
