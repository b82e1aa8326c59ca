package dirtally

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or arguments
	ExitBudgetExceeded   = 20 // File count passed the budget
	ExitIOError          = 21 // Filesystem failure
	ExitDepthExceeded    = 22 // Directory nesting passed the depth cap
	ExitUnsupportedEntry = 23 // Special entry found under the fail policy
)

const (
	// DefaultMaxDepth bounds recursion so symlink loops and pathological
	// trees terminate even when cycle detection cannot see them.
	DefaultMaxDepth = 256

	// DefaultMaxCount is the budget used when none is configured.
	DefaultMaxCount = 10000

	// BudgetExceededCode is the machine-readable code reported for
	// ErrBudgetExceeded by ErrorCode.
	BudgetExceededCode = "MAX_FILE_COUNT"
)
