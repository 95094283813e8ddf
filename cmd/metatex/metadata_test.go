package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/rescience/metatex/internal/config"
)

// newInputCmd builds a command with an input flag, optionally set
// explicitly as if given on the command line.
func newInputCmd(t *testing.T, explicit string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("input", config.DefaultInput, "")
	if explicit != "" {
		if err := cmd.Flags().Set("input", explicit); err != nil {
			t.Fatalf("setting flag: %v", err)
		}
	}
	return cmd
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		explicit string // flag value set on the command line, "" = unset
		env      string // METATEX_INPUT value, "" = unset
		want     string
	}{
		{
			name: "default when neither flag nor env set",
			want: config.DefaultInput,
		},
		{
			name: "env overrides default",
			env:  "env.yaml",
			want: "env.yaml",
		},
		{
			name:     "explicit flag wins over env",
			explicit: "explicit.yaml",
			env:      "env.yaml",
			want:     "explicit.yaml",
		},
		{
			name:     "explicit flag without env",
			explicit: "explicit.yaml",
			want:     "explicit.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvInput, tt.env)
			cmd := newInputCmd(t, tt.explicit)

			flagValue, err := cmd.Flags().GetString("input")
			if err != nil {
				t.Fatalf("reading flag: %v", err)
			}
			got := resolvePath(cmd, "input", flagValue, config.EnvInput)
			if got != tt.want {
				t.Errorf("resolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePathExpandsTilde(t *testing.T) {
	t.Setenv("HOME", "/home/editor")

	t.Run("from flag", func(t *testing.T) {
		cmd := newInputCmd(t, "~/articles/metadata.yaml")
		want := filepath.Join("/home/editor", "articles", "metadata.yaml")
		got := resolvePath(cmd, "input", "~/articles/metadata.yaml", config.EnvInput)
		if got != want {
			t.Errorf("resolvePath() = %q, want %q", got, want)
		}
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv(config.EnvInput, "~/articles/metadata.yaml")
		cmd := newInputCmd(t, "")
		want := filepath.Join("/home/editor", "articles", "metadata.yaml")
		got := resolvePath(cmd, "input", config.DefaultInput, config.EnvInput)
		if got != want {
			t.Errorf("resolvePath() = %q, want %q", got, want)
		}
	})
}
