package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dirtally/internal/files/filesystem"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "dirtally.yaml"

// Output formats accepted by the output key and --output flag.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var OutputFormats = []string{OutputText, OutputJSON, OutputYAML}

// Environment overrides, applied on top of the file.
const (
	EnvMaxCount = "DIRTALLY_MAX_COUNT"
	EnvMaxDepth = "DIRTALLY_MAX_DEPTH"
	EnvOutput   = "DIRTALLY_OUTPUT"
)

type ProjectConfig struct {
	Recursive      bool     `yaml:"recursive"`
	MaxCount       int      `yaml:"max_count"`
	MaxDepth       int      `yaml:"max_depth"`
	FollowSymlinks bool     `yaml:"follow_symlinks"`
	OtherEntries   string   `yaml:"other_entries"`
	Exclude        []string `yaml:"exclude"`
	Output         string   `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() ProjectConfig {
	return ProjectConfig{
		MaxCount:     dirtally.DefaultMaxCount,
		MaxDepth:     dirtally.DefaultMaxDepth,
		OtherEntries: dirtally.OtherSkip.String(),
		Output:       OutputText,
	}
}

// Load reads dirtally.yaml from dir. Keys absent from the file keep their
// Default values.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	return LoadFileWithFS(filesystem.NewOSFileSystem(), configPath)
}

// LoadFileWithFS reads a config file through a filesystem provider.
func LoadFileWithFS(fsProvider filesystem.FileSystemProvider, configPath string) (*ProjectConfig, error) {
	data, err := fsProvider.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", configPath, dirtally.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from DIRTALLY_* variables found by lookup
// (normally os.LookupEnv). Empty values are ignored.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	parseInt := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q is not an integer: %w", key, v, dirtally.ErrInvalidConfig))
			return
		}
		*dst = n
	}

	parseInt(EnvMaxCount, &c.MaxCount)
	parseInt(EnvMaxDepth, &c.MaxDepth)
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}

	return errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if c.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("max_count must not be negative, got %d: %w", c.MaxCount, dirtally.ErrInvalidConfig))
	}
	if !lo.Contains(OutputFormats, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of %v, got %q: %w", OutputFormats, c.Output, dirtally.ErrInvalidConfig))
	}
	if _, err := c.ScanOptions(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ScanOptions converts the traversal keys into engine options.
func (c *ProjectConfig) ScanOptions() (dirtally.ScanOptions, error) {
	policy, err := dirtally.ParseOtherEntryPolicy(c.OtherEntries)
	if err != nil {
		return dirtally.ScanOptions{}, err
	}

	opts := dirtally.ScanOptions{
		Recursive:      c.Recursive,
		MaxDepth:       c.MaxDepth,
		FollowSymlinks: c.FollowSymlinks,
		OtherEntries:   policy,
		Exclude:        c.Exclude,
	}
	if err := opts.Validate(); err != nil {
		return dirtally.ScanOptions{}, err
	}
	return opts, nil
}
