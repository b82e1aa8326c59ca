package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtally/internal/config"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

const configFileHint = config.ConfigFileName

// scanFlags are the traversal flags shared by count, list and scan.
type scanFlags struct {
	recursive      bool
	maxCount       int
	maxDepth       int
	followSymlinks bool
	other          string
	exclude        []string
	output         string
}

func addScanFlags(cmd *cobra.Command, f *scanFlags, withBudget bool) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.recursive, "recursive", "r", false, "Descend into subdirectories")
	flags.IntVar(&f.maxDepth, "max-depth", dirtally.DefaultMaxDepth, "Maximum directory nesting below the root")
	flags.BoolVar(&f.followSymlinks, "follow-symlinks", false, "Classify symlinks by their target (each directory is visited once)")
	flags.StringVar(&f.other, "other", "skip", "Entries that are neither files nor directories: skip or fail")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "Glob of root-relative paths to skip (repeatable)")
	flags.StringVarP(&f.output, "output", "o", config.OutputText, "Output format: text, json or yaml")
	if withBudget {
		flags.IntVarP(&f.maxCount, "max", "m", dirtally.DefaultMaxCount, "Fail when more than this many files are found")
	}
}

// loadProjectConfig loads godotenv and project configuration.
// A missing default config file is not an error; a missing explicit one is.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		cfg *config.ProjectConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(".")
	}

	switch {
	case err == nil:
	case errors.Is(err, config.ErrConfigNotFound) && configPath == "":
		defaults := config.Default()
		cfg = &defaults
	case errors.Is(err, config.ErrConfigNotFound):
		return nil, fmt.Errorf("config file %s: %w: %w", configPath, err, dirtally.ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSettings layers explicitly set flags over the file and environment.
func resolveSettings(cmd *cobra.Command, f *scanFlags) (*config.ProjectConfig, error) {
	cfg, err := loadProjectConfig(getConfigFlag(cmd))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("recursive") {
		cfg.Recursive = f.recursive
	}
	if flags.Changed("max") {
		cfg.MaxCount = f.maxCount
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if flags.Changed("follow-symlinks") {
		cfg.FollowSymlinks = f.followSymlinks
	}
	if flags.Changed("other") {
		cfg.OtherEntries = f.other
	}
	if flags.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
