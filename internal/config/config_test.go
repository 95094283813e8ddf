package config

import (
	"path/filepath"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Run("unset returns fallback", func(t *testing.T) {
		if got := FromEnv("METATEX_TEST_UNSET", "fallback"); got != "fallback" {
			t.Errorf("FromEnv() = %q, want fallback", got)
		}
	})

	t.Run("set returns value", func(t *testing.T) {
		t.Setenv(EnvInput, "custom.yaml")
		if got := FromEnv(EnvInput, DefaultInput); got != "custom.yaml" {
			t.Errorf("FromEnv() = %q, want custom.yaml", got)
		}
	})

	t.Run("empty returns fallback", func(t *testing.T) {
		t.Setenv(EnvOutput, "")
		if got := FromEnv(EnvOutput, DefaultOutput); got != DefaultOutput {
			t.Errorf("FromEnv() = %q, want %q", got, DefaultOutput)
		}
	})
}

func TestExpandPath(t *testing.T) {
	t.Run("no tilde unchanged", func(t *testing.T) {
		if got := ExpandPath("metadata.yaml"); got != "metadata.yaml" {
			t.Errorf("ExpandPath() = %q", got)
		}
	})

	t.Run("empty unchanged", func(t *testing.T) {
		if got := ExpandPath(""); got != "" {
			t.Errorf("ExpandPath() = %q", got)
		}
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		t.Setenv("HOME", "/home/editor")
		want := filepath.Join("/home/editor", "articles", "metadata.yaml")
		if got := ExpandPath("~/articles/metadata.yaml"); got != want {
			t.Errorf("ExpandPath() = %q, want %q", got, want)
		}
	})
}
