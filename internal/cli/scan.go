package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtally/internal/config"
	"github.com/vvka-141/dirtally/internal/files/inventory"
	"github.com/vvka-141/dirtally/internal/logging"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

func newScanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Count within a budget, then list",
		Long: `Count the regular files under <path> against --max and, only when the
tree fits, list them.

This is the safe way to inventory a folder chosen by a user: a tree with
too many files fails fast with MAX_FILE_COUNT (exit code 20) before any
descriptors are built.

Examples:
  dirtally scan -r --max 1000 ./downloads
  dirtally scan -r -o yaml ./downloads`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &flags)
		},
	}

	addScanFlags(cmd, &flags, true)
	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	cfg, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	opts, err := cfg.ScanOptions()
	if err != nil {
		return err
	}
	logSettings(logger, args[0], cfg)

	inv, err := inventory.New(opts)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := inv.Scan(args[0], cfg.MaxCount)
	if err != nil {
		return fmt.Errorf("scan %s: %w", args[0], err)
	}
	logger.Verbose("Scanned %d files in %s", result.Count, time.Since(start))

	report, err := newReport("scan", args[0], cfg)
	if err != nil {
		return err
	}
	report.setFiles(result.Files)
	return renderReport(cmd.OutOrStdout(), cfg.Output, report)
}

func logSettings(logger dirtally.Logger, root string, cfg *config.ProjectConfig) {
	logger.Verbose("Root: %s", root)
	logger.Verbose("Recursive: %t, max count: %d, max depth: %d", cfg.Recursive, cfg.MaxCount, cfg.MaxDepth)
	logger.Verbose("Follow symlinks: %t, other entries: %s", cfg.FollowSymlinks, cfg.OtherEntries)
	if len(cfg.Exclude) > 0 {
		logger.Verbose("Exclude: %v", cfg.Exclude)
	}
}
