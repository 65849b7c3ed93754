// ABOUTME: Executable discovery: PATH first, then <root>/bin/<name> per runtime root
// ABOUTME: Roots may be glob patterns; the first executable match in order wins

package fzf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mauromedda/fzf-matcher-go/pkg/filter"
)

var lookPath = exec.LookPath

func discover(look func(string) (string, error), binary string, roots []string, isWindows bool) (string, error) {
	if path, err := look(binary); err == nil {
		return path, nil
	}

	name := binary
	if isWindows && !strings.EqualFold(filepath.Ext(name), ".exe") {
		name += ".exe"
	}
	for _, root := range roots {
		if root == "" {
			continue
		}
		for _, candidate := range globBin(root, name) {
			if isExecutable(candidate, isWindows) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s (searched PATH and %d runtime roots)", filter.ErrDiscovery, binary, len(roots))
}

// globBin expands <root>/bin/<name>, returning matches in sorted order.
func globBin(root, name string) []string {
	matches, err := filepath.Glob(filepath.Join(root, "bin", name))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// isExecutable requires a regular file; off Windows it also needs an execute bit.
func isExecutable(path string, isWindows bool) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if isWindows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
