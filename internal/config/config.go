// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Project values override global ones; runtime paths stack project-first

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	Matcher     string   `yaml:"matcher,omitempty"`
	Encoding    string   `yaml:"encoding,omitempty"`
	Binary      string   `yaml:"binary,omitempty"`
	Args        []string `yaml:"args,omitempty"`
	Timeout     Duration `yaml:"timeout,omitempty"`
	RuntimePath []string `yaml:"runtime_path,omitempty"`
	Fallback    bool     `yaml:"fallback,omitempty"`
	Highlight   bool     `yaml:"highlight,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
// Zero means unset; a negative value ("-1s") turns the delegation timeout off.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Load reads and merges global and project-local settings.
// Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles merges the settings at globalPath and projectPath, in that order,
// then expands ${VAR} references.
func LoadFiles(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Matcher != "" {
		result.Matcher = project.Matcher
	}
	if project.Encoding != "" {
		result.Encoding = project.Encoding
	}
	if project.Binary != "" {
		result.Binary = project.Binary
	}
	if len(project.Args) > 0 {
		result.Args = project.Args
	}
	if project.Timeout != 0 {
		result.Timeout = project.Timeout
	}
	if project.Fallback {
		result.Fallback = true
	}
	if project.Highlight {
		result.Highlight = true
	}

	// Project roots are searched before global ones.
	if len(project.RuntimePath) > 0 {
		paths := make([]string, 0, len(project.RuntimePath)+len(global.RuntimePath))
		paths = append(paths, project.RuntimePath...)
		paths = append(paths, global.RuntimePath...)
		result.RuntimePath = paths
	}

	return &result
}
