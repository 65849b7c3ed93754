// ABOUTME: Line-oriented candidate I/O: plain text lines and JSON lines
// ABOUTME: Used by hosts that feed candidates over pipes

package filter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// ReadLines reads one candidate per line. A trailing "\r" is stripped.
func ReadLines(r io.Reader) ([]Candidate, error) {
	var out []Candidate
	sc := newLineScanner(r)
	for sc.Scan() {
		out = append(out, Candidate{Word: strings.TrimSuffix(sc.Text(), "\r")})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return out, nil
}

// ReadJSONLines reads one JSON object per line. Blank lines are skipped.
func ReadJSONLines(r io.Reader) ([]Candidate, error) {
	var out []Candidate
	sc := newLineScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var c Candidate
		if err := c.UnmarshalJSON(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading json lines: %w", err)
	}
	return out, nil
}

// WriteJSONLines writes one JSON object per candidate.
func WriteJSONLines(w io.Writer, candidates []Candidate) error {
	bw := bufio.NewWriter(w)
	for _, c := range candidates {
		data, err := c.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding %q: %w", c.Word, err)
		}
		bw.Write(data)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
