package dirtally

import (
	"errors"
	"fmt"
	"io/fs"
)

// EntryKind classifies a directory entry as seen by the enumerator.
type EntryKind int

const (
	// KindRegularFile is a regular file.
	KindRegularFile EntryKind = iota
	// KindDirectory is a directory.
	KindDirectory
	// KindOther covers symlinks (unless followed), devices, sockets and pipes.
	KindOther
)

func (k EntryKind) String() string {
	switch k {
	case KindRegularFile:
		return "file"
	case KindDirectory:
		return "dir"
	default:
		return "other"
	}
}

// KindFromMode derives the EntryKind from a file mode.
func KindFromMode(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindRegularFile
	case mode.IsDir():
		return KindDirectory
	default:
		return KindOther
	}
}

// FileDescriptor describes one regular file discovered during a scan.
// Descriptors are immutable once built.
type FileDescriptor struct {
	// DisplayName is the entry name as stored by the filesystem, extension included.
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Stem is DisplayName without its final extension segment.
	Stem string `json:"stem" yaml:"stem"`

	// Extension is the final extension segment without the leading dot, or "".
	Extension string `json:"extension" yaml:"extension"`

	// SizeBytes is the byte length at scan time. Zero is a real size.
	SizeBytes int64 `json:"size_bytes" yaml:"size_bytes"`

	// AbsolutePath is the path used to reach the file from the scan root.
	AbsolutePath string `json:"absolute_path" yaml:"absolute_path"`
}

// OtherEntryPolicy decides what a traversal does with KindOther entries.
type OtherEntryPolicy int

const (
	// OtherSkip ignores the entry silently.
	OtherSkip OtherEntryPolicy = iota
	// OtherFail aborts the traversal with ErrUnsupportedEntry.
	OtherFail
)

func (p OtherEntryPolicy) String() string {
	if p == OtherFail {
		return "fail"
	}
	return "skip"
}

// ParseOtherEntryPolicy parses "skip" or "fail". An empty string means skip.
func ParseOtherEntryPolicy(s string) (OtherEntryPolicy, error) {
	switch s {
	case "", "skip":
		return OtherSkip, nil
	case "fail":
		return OtherFail, nil
	default:
		return OtherSkip, fmt.Errorf("unknown other-entry policy %q (expected skip or fail): %w", s, ErrInvalidConfig)
	}
}

// ScanOptions tunes a traversal. The zero value is not valid; start from
// DefaultScanOptions.
type ScanOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// MaxDepth caps the number of directory levels below the root.
	MaxDepth int

	// FollowSymlinks classifies symlinks by their target instead of as KindOther.
	FollowSymlinks bool

	// OtherEntries is the policy for entries that are neither files nor directories.
	OtherEntries OtherEntryPolicy

	// Exclude holds doublestar globs matched against root-relative slash paths.
	Exclude []string

	// MaxFiles caps the number of descriptors a listing may build. Zero
	// means no cap.
	MaxFiles int
}

// DefaultScanOptions returns the options used when nothing is configured.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Recursive:    false,
		MaxDepth:     DefaultMaxDepth,
		OtherEntries: OtherSkip,
	}
}

// Validate checks the options and joins every failure it finds.
func (o ScanOptions) Validate() error {
	var errs []error

	if o.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d: %w", o.MaxDepth, ErrInvalidConfig))
	}

	if o.MaxFiles < 0 {
		errs = append(errs, fmt.Errorf("max files must not be negative, got %d: %w", o.MaxFiles, ErrInvalidConfig))
	}

	if o.OtherEntries != OtherSkip && o.OtherEntries != OtherFail {
		errs = append(errs, fmt.Errorf("unknown other-entry policy %d: %w", o.OtherEntries, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
