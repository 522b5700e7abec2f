package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styletools/cssprune"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.yaml")
	configContent := `
verbose: true
color: true

scan:
  format: json
  max-index-size: 1024
  respect-gitignore: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, "json", k.String("scan.format"))
	assert.Equal(t, int64(1024), k.Int64("scan.max-index-size"))
	assert.False(t, k.Bool("scan.respect-gitignore"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssprune.yaml"))

	config := buildConfig([]string{"a.css"}, []string{"b.html"})
	assert.Equal(t, []string{"a.css"}, config.Stylesheets)
	assert.Equal(t, []string{"b.html"}, config.SearchPaths)
	assert.Equal(t, cssprune.DefaultMaxIndexSize, config.MaxIndexSize)
	assert.True(t, config.RespectGitignore)
	assert.False(t, config.Verbose)
	assert.NotNil(t, config.Progress)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.yaml")
	configContent := `
verbose: false
scan:
  format: text
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSPRUNE_VERBOSE", "true")
	t.Setenv("CSSPRUNE_SCAN_FORMAT", "json")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "json", k.String("scan.format"))
}

func TestBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.yaml")
	configContent := `
quiet: true
scan:
  max-index-size: 2048
  respect-gitignore: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig([]string{"s.css"}, []string{"p.html"})
	assert.Equal(t, int64(2048), config.MaxIndexSize)
	assert.False(t, config.RespectGitignore)
	assert.Nil(t, config.Progress, "quiet disables the progress meter")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".cssprune.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan:")
	assert.Contains(t, string(data), "max-index-size:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".cssprune.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".cssprune.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssprune.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestRootWithoutSeparatorShowsHelp(t *testing.T) {
	resetKoanf()

	cmd := rootCmd
	cmd.SetArgs([]string{"styles.css"})
	// Misuse prints help and succeeds: help-on-misuse is not a failure.
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetInt64WithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, int64(42), getInt64WithFallback("flag-key", "config.key", 42))
}
