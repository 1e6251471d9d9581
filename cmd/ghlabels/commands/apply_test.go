package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ghlabels/internal/config"
	"github.com/imamik/ghlabels/internal/orchestration"
)

// applySubcommand returns the apply command attached to a fresh root.
func applySubcommand(t *testing.T) *cobra.Command {
	t.Helper()
	for _, sub := range Root().Commands() {
		if sub.Name() == "apply" {
			return sub
		}
	}
	t.Fatal("apply command not registered")
	return nil
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GITHUB_TOKEN", "GHLABELS_TOKEN", "GHLABELS_OWNER", "GHLABELS_OWNERS", "GHLABELS_REPO", "GHLABELS_ENDPOINT"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestApply(t *testing.T) {
	cmd := Apply()

	require.NotNil(t, cmd)
	assert.Equal(t, "apply", cmd.Use)
	assert.Equal(t, "Create, update and delete labels to match a template", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Apply command should have RunE function")
}

func TestApply_Flags(t *testing.T) {
	cmd := Apply()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"file", "f", "labels.yml"},
		{"token", "t", ""},
		{"endpoint", "e", "https://api.github.com"},
		{"owner", "o", ""},
		{"owners", "", "[]"},
		{"repo", "r", ""},
		{"dry-run", "d", "false"},
		{"no-create", "", "false"},
		{"no-delete", "", "false"},
		{"yes", "y", "false"},
		{"output", "", "text"},
		{"metrics-file", "", ""},
		{"timeout", "", "30s"},
		{"s3-endpoint", "", ""},
		{"s3-region", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %s should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestApply_SettingsFromFlags(t *testing.T) {
	clearEnv(t)

	cmd := applySubcommand(t)
	require.NoError(t, cmd.ParseFlags([]string{
		"-t", "secret",
		"--owners", "octo,hubot",
		"-d", "--no-delete",
		"--output", "json",
		"--timeout", "5s",
		"-v",
	}))

	s, err := loadSettings(cmd)
	require.NoError(t, err)

	assert.Equal(t, "secret", s.Token)
	assert.Equal(t, []string{"octo", "hubot"}, s.Owners)
	assert.True(t, s.DryRun)
	assert.True(t, s.NoDelete)
	assert.False(t, s.NoCreate)
	assert.Equal(t, config.OutputJSON, s.Output)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.True(t, s.Verbose)
	assert.Equal(t, config.DefaultEndpoint, s.Endpoint)
	assert.Equal(t, config.DefaultFile, s.File)
}

func TestApply_SettingsFromConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("owner: octo\nno-create: true\n"), 0o600))

	cmd := applySubcommand(t)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "-r", "hello"}))

	s, err := loadSettings(cmd)
	require.NoError(t, err)

	assert.Equal(t, "octo", s.Owner)
	assert.Equal(t, "hello", s.Repo)
	assert.True(t, s.NoCreate)
}

func TestApply_MissingScopePrintsUsage(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"apply", "-t", "secret"})

	err := root.Execute()

	require.ErrorIs(t, err, orchestration.ErrNoScope)
	assert.Equal(t, "must provide one of: owner, owners", err.Error())
	assert.Contains(t, out.String(), "Usage:")
}

func TestApply_OwnersConflictsWithOwner(t *testing.T) {
	clearEnv(t)

	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"apply", "-t", "secret", "-o", "octo", "--owners", "hubot"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestApply_MissingTokenFailsWithoutUsage(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"apply", "-o", "octo"})

	err := root.Execute()

	require.ErrorIs(t, err, config.ErrMissingToken)
	assert.NotContains(t, out.String(), "Usage:")
}
