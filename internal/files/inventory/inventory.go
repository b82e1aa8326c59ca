package inventory

import (
	"fmt"

	"github.com/vvka-141/dirtally/internal/files/filesystem"
	"github.com/vvka-141/dirtally/internal/files/filter"
	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// Inventory counts and lists regular files under a root directory.
// It holds only configuration, so one Inventory is safe for concurrent
// use by multiple goroutines as long as the provider is. Concurrent calls
// over a tree that is being modified may see inconsistent results.
type Inventory struct {
	fsProvider filesystem.FileSystemProvider
	opts       dirtally.ScanOptions
	exclude    *filter.Matcher
}

// New creates an inventory over the OS filesystem.
func New(opts dirtally.ScanOptions) (*Inventory, error) {
	return NewWithFS(filesystem.NewOSFileSystem(), opts)
}

// NewWithFS creates an inventory with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider, opts dirtally.ScanOptions) (*Inventory, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	exclude, err := filter.New(opts.Exclude)
	if err != nil {
		return nil, err
	}

	return &Inventory{
		fsProvider: fsProvider,
		opts:       opts,
		exclude:    exclude,
	}, nil
}

// Options returns the options the inventory was built with.
func (inv *Inventory) Options() dirtally.ScanOptions {
	return inv.opts
}

func (inv *Inventory) newWalker() *walker {
	return &walker{
		enum:      NewEnumerator(inv.fsProvider, inv.opts.FollowSymlinks),
		guard:     newGuard(inv.fsProvider, inv.opts.MaxDepth, inv.opts.FollowSymlinks),
		exclude:   inv.exclude,
		recursive: inv.opts.Recursive,
		others:    inv.opts.OtherEntries,
	}
}

func (inv *Inventory) resolveRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("root path is required: %w", dirtally.ErrInvalidArgument)
	}
	absRoot, err := inv.fsProvider.Abs(root)
	if err != nil {
		return "", dirtally.NewIOError("abs", root, err)
	}
	return absRoot, nil
}

// Count returns the number of regular files under root. It fails with
// dirtally.ErrBudgetExceeded as soon as the running total passes max,
// across the whole tree rather than per directory; the partial count is
// discarded.
func (inv *Inventory) Count(root string, max int) (int, error) {
	if max < 0 {
		return 0, fmt.Errorf("budget must not be negative, got %d: %w", max, dirtally.ErrInvalidArgument)
	}
	absRoot, err := inv.resolveRoot(root)
	if err != nil {
		return 0, err
	}

	b, err := inv.newWalker().count(absRoot, "", 0, newBudget(max))
	if err != nil {
		return 0, wrapBudget(err, absRoot, max)
	}
	return b.counted, nil
}

// List returns a descriptor for every regular file under root, in
// enumeration order. When ScanOptions.MaxFiles is positive the call fails
// with dirtally.ErrBudgetExceeded instead of growing past it.
func (inv *Inventory) List(root string) ([]dirtally.FileDescriptor, error) {
	b := unlimitedBudget()
	if inv.opts.MaxFiles > 0 {
		b = newBudget(inv.opts.MaxFiles)
	}
	return inv.list(root, b)
}

func (inv *Inventory) list(root string, b budget) ([]dirtally.FileDescriptor, error) {
	absRoot, err := inv.resolveRoot(root)
	if err != nil {
		return nil, err
	}

	files, _, err := inv.newWalker().build(absRoot, "", 0, b, []dirtally.FileDescriptor{})
	if err != nil {
		return nil, wrapBudget(err, absRoot, b.remaining)
	}
	return files, nil
}

// Scan counts under max and lists only when the count fits. The listing
// is capped at max as well, so a tree that grows between the two passes
// still cannot produce more than max descriptors.
func (inv *Inventory) Scan(root string, max int) (dirtally.ScanResult, error) {
	n, err := inv.Count(root, max)
	if err != nil {
		return dirtally.ScanResult{}, err
	}

	files, err := inv.list(root, newBudget(max))
	if err != nil {
		return dirtally.ScanResult{}, err
	}

	return dirtally.ScanResult{Count: n, Files: files}, nil
}

// wrapBudget adds the root and limit to a bare budget error.
func wrapBudget(err error, root string, max int) error {
	if err == dirtally.ErrBudgetExceeded {
		return fmt.Errorf("more than %d files under %s: %w", max, root, err)
	}
	return err
}

// Verify Inventory implements the interface at compile time
var _ dirtally.Inventory = (*Inventory)(nil)

// CountFiles counts regular files under path on the OS filesystem,
// failing with dirtally.ErrBudgetExceeded when there are more than max.
func CountFiles(path string, recursive bool, max int) (int, error) {
	opts := dirtally.DefaultScanOptions()
	opts.Recursive = recursive
	inv, err := New(opts)
	if err != nil {
		return 0, err
	}
	return inv.Count(path, max)
}

// ListFiles lists regular files under path on the OS filesystem.
func ListFiles(path string, recursive bool) ([]dirtally.FileDescriptor, error) {
	opts := dirtally.DefaultScanOptions()
	opts.Recursive = recursive
	inv, err := New(opts)
	if err != nil {
		return nil, err
	}
	return inv.List(path)
}
