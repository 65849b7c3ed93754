// ABOUTME: Tests for the text renderer: highlight regions and truncation
// ABOUTME: Uses a bracket marker instead of terminal styles for stable output

package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
	"github.com/mauromedda/fzf-matcher-go/pkg/width"
)

func bracket(s string) string { return "[" + s + "]" }

func TestLine_Highlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		word    string
		want    string
	}{
		{"plain", "", "apple", "apple"},
		{"fuzzy span", filter.ConvertToFuzzyPattern("ae"), "apple", "[apple]"},
		{"two words", filter.ConvertToFuzzyPattern("gr pe"), "grape", "[gr]a[pe]"},
		{"smart case", filter.ConvertToFuzzyPattern("ap"), "APPLE", "[APP]LE"},
		{"upper is exact", filter.ConvertToFuzzyPattern("Ap"), "apple", "apple"},
		{"no match", filter.ConvertToFuzzyPattern("zz"), "apple", "apple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := New(Options{Pattern: tt.pattern, Mark: bracket})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.Line(tt.word); got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestLine_DefaultStyleKeepsText(t *testing.T) {
	t.Parallel()

	r, err := New(Options{Pattern: filter.ConvertToFuzzyPattern("ap")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := width.StripANSI(r.Line("grape")); got != "grape" {
		t.Errorf("styled output lost text: %q", got)
	}
}

func TestLine_Truncates(t *testing.T) {
	t.Parallel()

	r, err := New(Options{Width: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Line("strawberry"); got != "straw…" {
		t.Errorf("got %q", got)
	}
}

func TestNew_BadPattern(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{Pattern: "a["}); err == nil {
		t.Error("expected compile error")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	r, _ := New(Options{})
	var buf bytes.Buffer
	if err := r.Write(&buf, filter.FromWords([]string{"a", "b"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "a\nb\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if w := TerminalWidth(f); w != 0 {
		t.Errorf("expected 0 for a regular file, got %d", w)
	}
}
