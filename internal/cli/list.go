package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtally/internal/files/inventory"
	"github.com/vvka-141/dirtally/internal/logging"
)

func newListCmd() *cobra.Command {
	var (
		flags scanFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List regular files under a directory",
		Long: `List every regular file under <path> with its name, stem, extension,
size and absolute path, in directory order (depth-first with -r).

Without --limit the listing is unbounded; use "dirtally scan" to refuse
oversized trees before any listing work happens.

Examples:
  # List a folder as JSON
  dirtally list -o json ./photos

  # List a tree, skipping temporary files
  dirtally list -r --exclude '*.tmp' ./photos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, &flags, limit)
		},
	}

	addScanFlags(cmd, &flags, false)
	cmd.Flags().IntVar(&limit, "limit", 0, "Fail instead of listing more than this many files (0 = no limit)")
	return cmd
}

func runList(cmd *cobra.Command, args []string, flags *scanFlags, limit int) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	cfg, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	opts, err := cfg.ScanOptions()
	if err != nil {
		return err
	}
	opts.MaxFiles = limit
	logSettings(logger, args[0], cfg)

	inv, err := inventory.New(opts)
	if err != nil {
		return err
	}

	start := time.Now()
	files, err := inv.List(args[0])
	if err != nil {
		return fmt.Errorf("list %s: %w", args[0], err)
	}
	logger.Verbose("Listed %d files in %s", len(files), time.Since(start))

	report, err := newReport("list", args[0], cfg)
	if err != nil {
		return err
	}
	report.Budget = nil
	report.setFiles(files)
	return renderReport(cmd.OutOrStdout(), cfg.Output, report)
}
