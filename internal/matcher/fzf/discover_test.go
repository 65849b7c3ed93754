// ABOUTME: Tests for executable discovery across PATH and runtime roots
// ABOUTME: Covers root order, glob roots, the .exe rule and non-executable files

package fzf

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
)

func notOnPath(string) (string, error) { return "", errors.New("not found") }

func TestDiscover_PrefersPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	got, err := discover(func(string) (string, error) { return "/usr/bin/fzf", nil }, "fzf", []string{root}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/usr/bin/fzf" {
		t.Errorf("got %q, want PATH hit", got)
	}
}

func TestDiscover_RuntimeRootsInOrder(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "a")
	second := filepath.Join(base, "b")
	third := filepath.Join(base, "c")
	if err := os.MkdirAll(first, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeScript(t, filepath.Join(second, "bin"), "fzf", "exit 0")
	writeScript(t, filepath.Join(third, "bin"), "fzf", "exit 0")

	got, err := discover(notOnPath, "fzf", []string{"", first, second, third}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiscover_GlobRoot(t *testing.T) {
	base := t.TempDir()
	want := writeScript(t, filepath.Join(base, "pack", "fzf.vim", "bin"), "fzf", "exit 0")

	got, err := discover(notOnPath, "fzf", []string{filepath.Join(base, "pack", "*")}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDiscover_WindowsSuffix(t *testing.T) {
	root := t.TempDir()
	plain := writeScript(t, filepath.Join(root, "bin"), "fzf", "exit 0")
	exe := writeScript(t, filepath.Join(root, "bin"), "fzf.exe", "exit 0")

	got, err := discover(notOnPath, "fzf", []string{root}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != exe {
		t.Errorf("got %q, want %q", got, exe)
	}

	got, err = discover(notOnPath, "fzf", []string{root}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != plain {
		t.Errorf("got %q, want %q", got, plain)
	}
}

func TestDiscover_SkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	t.Parallel()

	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	if err := os.MkdirAll(filepath.Join(bin, "fzf"), 0o755); err != nil {
		t.Fatal(err)
	}
	other := t.TempDir()
	if err := os.MkdirAll(filepath.Join(other, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(other, "bin", "fzf"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := discover(notOnPath, "fzf", []string{root, other}, false)
	if !errors.Is(err, filter.ErrDiscovery) {
		t.Errorf("expected ErrDiscovery, got %v", err)
	}
}

func TestDiscover_WindowsHintIgnoresPermissionBits(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}
	exe := filepath.Join(root, "bin", "fzf.exe")
	if err := os.WriteFile(exe, []byte("MZ"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := discover(notOnPath, "fzf", []string{root}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != exe {
		t.Errorf("got %q, want %q", got, exe)
	}
}

func TestDiscover_NothingFound(t *testing.T) {
	t.Parallel()

	_, err := discover(notOnPath, "fzf", nil, false)
	if !errors.Is(err, filter.ErrDiscovery) {
		t.Errorf("expected ErrDiscovery, got %v", err)
	}
}

func TestFilter_DiscoversFromRuntimePath(t *testing.T) {
	root := t.TempDir()
	want := writeScript(t, filepath.Join(root, "bin"), "fzf", `cat >/dev/null; printf 'grape\n'`)
	m := New(Options{Diagnostics: (&diagRecorder{}).sink, LookPath: notOnPath})

	got, err := m.Filter(t.Context(), fruit(), filter.Context{Input: "gr", RuntimePath: []string{root}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Word != "grape" {
		t.Errorf("got %v", filter.Words(got))
	}
	if m.Path() != want {
		t.Errorf("Path() = %q, want %q", m.Path(), want)
	}
}
