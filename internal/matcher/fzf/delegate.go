// ABOUTME: Runs fzf as a child process: streams encoded words in, collects matches
// ABOUTME: Stdin feeding and output draining run concurrently to avoid pipe deadlock

package fzf

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"

	"github.com/mauromedda/fzf-matcher-go/internal/log"
	"github.com/mauromedda/fzf-matcher-go/internal/textenc"
	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
)

const (
	// fzf exits 1 when nothing matched; that is a result, not a failure.
	exitNoMatch = 1

	waitDelay = 2 * time.Second
)

// delegate runs the discovered binary and returns the set of output lines.
// The caller holds m.mu.
func (m *Matcher) delegate(ctx context.Context, candidates []filter.Candidate, fctx filter.Context) (map[string]struct{}, error) {
	enc, err := textenc.Lookup(fctx.Encoding)
	if err != nil {
		return nil, &filter.DelegationError{Op: "encoding", ExitCode: -1, Err: err}
	}

	if m.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(m.opts.Args)+1)
	args = append(args, m.opts.Args...)
	args = append(args, fctx.Input)

	pr, pw := io.Pipe()
	var stdout bytes.Buffer
	stderr := &limitedBuffer{limit: maxStderr}
	cmd := exec.CommandContext(ctx, m.bin, args...)
	cmd.Stdin = pr
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	var (
		g      errgroup.Group
		runErr error
	)
	g.Go(func() error {
		err := writeWords(pw, enc, candidates)
		pw.CloseWithError(err)
		// The child stopped reading; its exit status decides the outcome.
		if errors.Is(err, io.ErrClosedPipe) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		runErr = cmd.Run()
		pr.Close()
		return nil
	})
	writeErr := g.Wait()

	errText := decodeLossy(enc, stderr.Bytes())
	if stderr.truncated {
		errText += " [truncated]"
	}

	switch {
	case cmd.Process == nil:
		return nil, &filter.DelegationError{Op: "start", ExitCode: -1, Err: runErr}
	case writeErr != nil:
		return nil, &filter.DelegationError{Op: "encode", ExitCode: -1, Stderr: errText, Err: writeErr}
	case runErr != nil && ctx.Err() != nil:
		return nil, &filter.DelegationError{Op: "wait", ExitCode: -1, Stderr: errText, Err: ctx.Err()}
	case runErr != nil:
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, &filter.DelegationError{Op: "wait", ExitCode: -1, Stderr: errText, Err: runErr}
		}
		if code := exitErr.ExitCode(); code != exitNoMatch {
			return nil, &filter.DelegationError{Op: "exit", ExitCode: code, Stderr: errText, Err: runErr}
		}
		log.Debug("%s: no match for %q", m.opts.Name, fctx.Input)
	}

	if errText != "" {
		m.opts.Diagnostics("stderr: " + errText)
	}

	out, err := io.ReadAll(textenc.NewDecodeReader(&stdout, enc))
	if err != nil {
		return nil, &filter.DelegationError{Op: "decode", ExitCode: 0, Err: err}
	}
	return lineSet(string(out)), nil
}

// writeWords streams the words joined by "\n", encoded with enc.
func writeWords(w io.Writer, enc encoding.Encoding, candidates []filter.Candidate) error {
	ew := textenc.NewEncodeWriter(w, enc)
	bw := bufio.NewWriterSize(ew, 64*1024)
	for i, c := range candidates {
		if i > 0 {
			bw.WriteByte('\n')
		}
		if _, err := bw.WriteString(c.Word); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return ew.Close()
}

// lineSet splits newline-joined output into a membership set. The empty
// element produced by a trailing newline is not a line.
func lineSet(out string) map[string]struct{} {
	lines := strings.Split(out, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	set := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		set[l] = struct{}{}
	}
	return set
}

func decodeLossy(enc encoding.Encoding, b []byte) string {
	s, err := textenc.Decode(enc, b)
	if err != nil {
		s = string(b)
	}
	return strings.TrimRight(s, "\r\n")
}
