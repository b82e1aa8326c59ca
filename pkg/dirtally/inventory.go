package dirtally

// Inventory defines the bounded directory inventory operations.
// Implementations hold no state between calls and are safe for
// concurrent use as long as the underlying filesystem provider is.
type Inventory interface {
	// Count returns the number of regular files under root, failing with
	// ErrBudgetExceeded as soon as the running total passes max.
	Count(root string, max int) (int, error)

	// List returns one descriptor per regular file under root, in
	// enumeration order, depth-first.
	List(root string) ([]FileDescriptor, error)

	// Scan counts under max first and only lists when the count fits.
	Scan(root string, max int) (ScanResult, error)
}

// ScanResult contains the results of a guarded scan.
type ScanResult struct {
	Count int
	Files []FileDescriptor
}
