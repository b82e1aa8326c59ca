package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtally/internal/files/inventory"
	"github.com/vvka-141/dirtally/internal/logging"
)

func newCountCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "count <path>",
		Short: "Count regular files under a directory, within a budget",
		Long: `Count the regular files under <path>.

The count fails with MAX_FILE_COUNT (exit code 20) as soon as more than
--max files are found anywhere in the traversal. Symlinks, sockets, pipes
and devices are not counted.

Examples:
  # Count files directly in a folder
  dirtally count ~/Pictures

  # Count a whole tree, refusing anything above 5000 files
  dirtally count -r --max 5000 ~/Pictures`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args, &flags)
		},
	}

	addScanFlags(cmd, &flags, true)
	return cmd
}

func runCount(cmd *cobra.Command, args []string, flags *scanFlags) error {
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
	n, err := inv.Count(args[0], cfg.MaxCount)
	if err != nil {
		return fmt.Errorf("count %s: %w", args[0], err)
	}
	logger.Verbose("Counted %d files in %s", n, time.Since(start))

	report, err := newReport("count", args[0], cfg)
	if err != nil {
		return err
	}
	report.setCount(n)
	return renderReport(cmd.OutOrStdout(), cfg.Output, report)
}
