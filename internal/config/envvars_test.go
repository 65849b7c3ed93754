// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and nested patterns

package config

import (
	"testing"
)

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_FZF_BIN", "/opt/fzf/bin/fzf")
	result := expandEnv("${TEST_FZF_BIN}")
	if result != "/opt/fzf/bin/fzf" {
		t.Errorf("expandEnv = %q; want %q", result, "/opt/fzf/bin/fzf")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	result := expandEnv("${DEFINITELY_NOT_SET_12345}")
	if result != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", result)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("MY_VIM", "/home/u/.vim")
	result := expandEnv("${MY_VIM}/pack/*/start/*")
	if result != "/home/u/.vim/pack/*/start/*" {
		t.Errorf("expandEnv = %q", result)
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	result := expandEnv("plain string")
	if result != "plain string" {
		t.Errorf("expandEnv = %q; want %q", result, "plain string")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("TEST_ENC", "latin1")
	t.Setenv("TEST_ROOT", "/rt")

	s := &Settings{
		Encoding:    "${TEST_ENC}",
		Args:        []string{"+s", "${TEST_ENC}"},
		RuntimePath: []string{"${TEST_ROOT}/a"},
	}
	ResolveEnvVars(s)

	if s.Encoding != "latin1" || s.Args[1] != "latin1" || s.RuntimePath[0] != "/rt/a" {
		t.Errorf("unexpected settings %+v", s)
	}
}
