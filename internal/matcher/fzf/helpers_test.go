// ABOUTME: Shared test helpers: fake fzf scripts and a diagnostic recorder
// ABOUTME: Script-based tests are POSIX-only and skipped on Windows

package fzf

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// writeScript creates an executable /bin/sh script and returns its path.
// Tests that exec freshly written files do not call t.Parallel, which avoids
// ETXTBSY when a concurrent fork inherits the write descriptor.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake fzf scripts need a POSIX shell")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

type diagRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (d *diagRecorder) sink(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
}

func (d *diagRecorder) messages() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.msgs...)
}

// countingLookPath resolves to path (or fails when path is "") and counts calls.
type countingLookPath struct {
	path  string
	calls atomic.Int32
}

func (c *countingLookPath) look(string) (string, error) {
	c.calls.Add(1)
	if c.path == "" {
		return "", errors.New("not on PATH")
	}
	return c.path, nil
}

// newTestMatcher builds a matcher whose PATH lookup resolves to bin.
func newTestMatcher(bin string, diag *diagRecorder) (*Matcher, *countingLookPath) {
	lp := &countingLookPath{path: bin}
	m := New(Options{Diagnostics: diag.sink, LookPath: lp.look})
	return m, lp
}
