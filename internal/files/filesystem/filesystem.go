package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry. Info on an entry may fail
// independently of the listing that produced it.
type DirEntry = fs.DirEntry

// FileSystemProvider is the filesystem surface used by the inventory engine.
type FileSystemProvider interface {
	// ReadDir lists the immediate entries of a directory in the order the
	// provider returns them. The directory handle is released before
	// ReadDir returns.
	ReadDir(path string) ([]DirEntry, error)

	// Stat returns file information, following symlinks.
	Stat(path string) (FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Abs resolves path against the provider's working root.
	Abs(path string) (string, error)

	// RealPath returns the canonical path with every symlink resolved.
	RealPath(path string) (string, error)

	// Join joins path elements with the provider's separator.
	Join(elem ...string) string
}
