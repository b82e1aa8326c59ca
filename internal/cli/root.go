package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtally/internal/tui"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

const rootLong = `dirtally counts and lists the regular files under a directory.

Counting runs against a budget shared by the whole traversal: as soon as
more than --max files are found the command stops and fails, without
reporting a partial count. Listing produces one record per file with its
name, stem, extension, size and absolute path.

Configuration is read from dirtally.yaml in the working directory (or
--config), then DIRTALLY_* environment variables (a .env file is loaded
first), then command line flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or arguments
  20 - File count exceeds the budget (MAX_FILE_COUNT)
  21 - Filesystem error (missing path, permission denied, ...)
  22 - Directory nesting exceeds --max-depth
  23 - Unsupported entry found with --other=fail`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dirtally",
		Short:        "Bounded directory inventory",
		Long:         rootLong,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	cmd.PersistentFlags().String("config", "", "Path to a config file (default ./"+configFileHint+")")

	cmd.AddCommand(
		newCountCmd(),
		newListCmd(),
		newScanCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	cmd := newRootCmd()
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(tui.NewTheme(tui.DetectMode(os.Stderr)), err))
	}
	return err
}

// formatError prefixes the message with its machine-readable code, so
// scripts can match on MAX_FILE_COUNT and friends.
func formatError(theme tui.Theme, err error) string {
	code := dirtally.ErrorCode(err)
	return fmt.Sprintf("%s %s %s",
		theme.Error.Render(tui.SymbolCross),
		theme.Error.Render("["+code+"]"),
		err.Error())
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
