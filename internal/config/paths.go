// ABOUTME: Standard filesystem paths for fzfmatch configuration
// ABOUTME: Resolves ~/.fzfmatch/ for global and .fzfmatch/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".fzfmatch"
	projectDirName = ".fzfmatch"
	configFileName = "config.yaml"

	// DirEnv overrides the global config directory.
	DirEnv = "FZFMATCH_CONFIG_DIR"
)

// GlobalDir returns the user-global config directory (~/.fzfmatch/), or
// $FZFMATCH_CONFIG_DIR when set.
func GlobalDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.fzfmatch/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
