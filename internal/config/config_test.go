package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtally/internal/files/filesystem"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `recursive: true
max_count: 500
max_depth: 12
follow_symlinks: true
other_entries: fail
exclude:
  - "*.tmp"
  - node_modules
output: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Recursive)
	assert.Equal(t, 500, cfg.MaxCount)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.True(t, cfg.FollowSymlinks)
	assert.Equal(t, "fail", cfg.OtherEntries)
	assert.Equal(t, []string{"*.tmp", "node_modules"}, cfg.Exclude)
	assert.Equal(t, OutputJSON, cfg.Output)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ScanOptions()
	require.NoError(t, err)
	assert.Equal(t, dirtally.ScanOptions{
		Recursive:      true,
		MaxDepth:       12,
		FollowSymlinks: true,
		OtherEntries:   dirtally.OtherFail,
		Exclude:        []string{"*.tmp", "node_modules"},
	}, opts)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("recursive: true\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	want := Default()
	want.Recursive = true
	assert.Equal(t, &want, cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, dirtally.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_count: 3\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxCount)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvMaxCount: "42",
		EnvMaxDepth: "8",
		EnvOutput:   "yaml",
	}))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.MaxCount)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, OutputYAML, cfg.Output)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvMaxCount: ""})))
	assert.Equal(t, dirtally.DefaultMaxCount, cfg.MaxCount)
}

func TestApplyEnv_InvalidIntegers(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvMaxCount: "lots",
		EnvMaxDepth: "deep",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, dirtally.ErrInvalidConfig)
	assert.Contains(t, err.Error(), EnvMaxCount)
	assert.Contains(t, err.Error(), EnvMaxDepth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ProjectConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *ProjectConfig) {}},
		{name: "zero max count", mutate: func(c *ProjectConfig) { c.MaxCount = 0 }},
		{name: "negative max count", mutate: func(c *ProjectConfig) { c.MaxCount = -1 }, wantErr: "max_count"},
		{name: "unknown output", mutate: func(c *ProjectConfig) { c.Output = "xml" }, wantErr: "output"},
		{name: "unknown policy", mutate: func(c *ProjectConfig) { c.OtherEntries = "maybe" }, wantErr: "policy"},
		{name: "zero depth", mutate: func(c *ProjectConfig) { c.MaxDepth = 0 }, wantErr: "max depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, dirtally.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileWithFS(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile(ConfigFileName, "max_depth: 4\noutput: yaml\n")

	cfg, err := LoadFileWithFS(mfs, ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, OutputYAML, cfg.Output)

	_, err = LoadFileWithFS(mfs, "missing.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
