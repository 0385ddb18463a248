package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "full", cfg.Parse.Source)
	assert.Equal(t, "full", cfg.Parse.Structure)
	assert.Equal(t, "native", cfg.Parse.Context)
	assert.Equal(t, "auto", cfg.Parse.PeekMode)
	assert.Equal(t, 120, cfg.Parse.PeekSize)
	assert.NotEmpty(t, cfg.Exclude)
}

func TestParseKDL_ParseBlockOverridesDefaults(t *testing.T) {
	kdlContent := `
parse {
    source "path"
    structure "minimal"
    context "none"
    peek_mode "full"
    peek_size 256
    workers 4
    batch_size 512
    ignore_errors true
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "path", cfg.Parse.Source)
	assert.Equal(t, "minimal", cfg.Parse.Structure)
	assert.Equal(t, "none", cfg.Parse.Context)
	assert.Equal(t, "full", cfg.Parse.PeekMode)
	assert.Equal(t, 256, cfg.Parse.PeekSize)
	assert.Equal(t, 4, cfg.Parse.Workers)
	assert.Equal(t, 512, cfg.Parse.BatchSize)
	assert.True(t, cfg.Parse.IgnoreErrors)
}

func TestParseKDL_ProjectBlock(t *testing.T) {
	kdlContent := `
project {
    root "."
    name "test-project"
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-project", cfg.Project.Name)
}

func TestParseKDL_IncludeAndExclude(t *testing.T) {
	kdlContent := `
include "*.go" "*.py"
exclude "**/testdata/**" "**/fixtures/**"
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"*.go", "*.py"}, cfg.Include)
	assert.Contains(t, cfg.Exclude, "**/testdata/**")
	assert.Contains(t, cfg.Exclude, "**/fixtures/**")
	// Defaults are still present; exclude augments rather than replaces.
	assert.Contains(t, cfg.Exclude, "**/node_modules/**")
}

func TestParseKDL_LanguageExtensions(t *testing.T) {
	kdlContent := `
language_extensions {
    mjs "javascript"
    mts "typescript"
}
`
	cfg, err := parseKDL(kdlContent)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "javascript", cfg.LanguageExtensions["mjs"])
	assert.Equal(t, "typescript", cfg.LanguageExtensions["mts"])
}

func TestLoadKDL_AbsentFileReturnsNilWithoutError(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_ResolvesProjectRootToAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	content := `
project {
    name "rooted"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, filepath.IsAbs(cfg.Project.Root))
	assert.Equal(t, "rooted", cfg.Project.Name)
}
