package dirtally

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for traversal failures.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	n, err := inv.Count(root, 500)
//	if errors.Is(err, dirtally.ErrBudgetExceeded) {
//	    // too many files, ask the user to narrow the selection
//	}
var (
	// ErrBudgetExceeded indicates the running file count passed the budget.
	// The partial count is discarded.
	ErrBudgetExceeded = errors.New(BudgetExceededCode + ": file count exceeds budget")

	// ErrUnsupportedEntry indicates a special entry under the fail policy.
	ErrUnsupportedEntry = errors.New("unsupported directory entry")

	// ErrDepthExceeded indicates the tree is nested deeper than the depth cap.
	ErrDepthExceeded = errors.New("maximum directory depth exceeded")

	// ErrInvalidArgument indicates a bad argument such as a negative budget.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIO matches any *IOError through errors.Is.
	ErrIO = errors.New("i/o error")
)

// IOError records an underlying filesystem failure and where it happened.
type IOError struct {
	Op   string // "readdir", "stat", "readlink", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports true for ErrIO so callers need not know the concrete type.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// NewIOError wraps err unless it already is an IOError.
func NewIOError(op, path string, err error) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// ErrorCode returns a short machine-readable code for err, or "" for nil.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBudgetExceeded):
		return BudgetExceededCode
	case errors.Is(err, ErrDepthExceeded):
		return "MAX_DEPTH"
	case errors.Is(err, ErrUnsupportedEntry):
		return "UNSUPPORTED_ENTRY"
	case errors.Is(err, ErrIO):
		return "IO_ERROR"
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrInvalidConfig):
		return "INVALID_ARGUMENT"
	default:
		return "ERROR"
	}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrBudgetExceeded):
		return ExitBudgetExceeded
	case errors.Is(err, ErrDepthExceeded):
		return ExitDepthExceeded
	case errors.Is(err, ErrUnsupportedEntry):
		return ExitUnsupportedEntry
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidArgument):
		return ExitConfigError
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "required flag", "invalid argument", "accepts ", "requires at least"} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
